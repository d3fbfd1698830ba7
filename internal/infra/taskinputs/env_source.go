package taskinputs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"docker-run-task/internal/domain/model"
)

// Environment variable prefixes used by the pipeline agent.
const (
	inputPrefix        = "INPUT_"
	endpointURLPrefix  = "ENDPOINT_URL_"
	endpointAuthPrefix = "ENDPOINT_AUTH_"
)

var keyReplacer = strings.NewReplacer(".", "_", " ", "_")

// EnvSource reads inputs the way the pipeline agent publishes them:
// INPUT_<NAME>, ENDPOINT_URL_<ID> and ENDPOINT_AUTH_<ID> (JSON).
type EnvSource struct {
	lookup func(string) (string, bool)
}

// NewEnvSource reads from the process environment.
func NewEnvSource() *EnvSource {
	return &EnvSource{lookup: os.LookupEnv}
}

// NewMapEnvSource reads from a fixed set of variables.
func NewMapEnvSource(vars map[string]string) *EnvSource {
	return &EnvSource{lookup: func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}}
}

// variableName maps a name to the agent's variable form: upper-case with dots
// and spaces replaced by underscores.
func variableName(prefix, name string) string {
	return prefix + strings.ToUpper(keyReplacer.Replace(name))
}

// LookupInput reads INPUT_<NAME>.
func (s *EnvSource) LookupInput(name string) (string, bool) {
	return s.lookup(variableName(inputPrefix, name))
}

// LookupEndpointURL reads ENDPOINT_URL_<ID>.
func (s *EnvSource) LookupEndpointURL(id string) (string, bool) {
	return s.lookup(variableName(endpointURLPrefix, id))
}

// LookupEndpointAuthorization reads and decodes the JSON in ENDPOINT_AUTH_<ID>.
// An empty variable counts as absent.
func (s *EnvSource) LookupEndpointAuthorization(id string) (*model.EndpointAuthorization, bool, error) {
	raw, ok := s.lookup(variableName(endpointAuthPrefix, id))
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, false, nil
	}

	var auth model.EndpointAuthorization
	if err := json.Unmarshal([]byte(raw), &auth); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", variableName(endpointAuthPrefix, id), err)
	}
	return &auth, true, nil
}
