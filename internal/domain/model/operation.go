package model

// Operation identifies what a single container engine invocation does.
type Operation int8

const (
	OperationUnknown Operation = iota
	OperationLogin
	OperationRemoveContainerByName
	OperationRun
	OperationLogout
)

// String returns the stable operation name used in logs and errors.
func (o Operation) String() string {
	switch o {
	case OperationLogin:
		return "login"
	case OperationRemoveContainerByName:
		return "removeContainerByName"
	case OperationRun:
		return "run"
	case OperationLogout:
		return "logout"
	default:
		return "unknown"
	}
}
