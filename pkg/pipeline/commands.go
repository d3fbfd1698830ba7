// Package pipeline writes logging commands understood by the pipeline agent
// that hosts the task. A logging command is a single stdout line of the form
//
//	##vso[area.action key=value;key=value]message
//
// Property values and messages are escaped so they cannot terminate the
// command early or inject a second one.
package pipeline

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// IssueType is the severity of a task.logissue command.
type IssueType string

const (
	IssueError   IssueType = "error"
	IssueWarning IssueType = "warning"
)

// Result is the final state reported by task.complete.
type Result string

const (
	Succeeded Result = "Succeeded"
	Failed    Result = "Failed"
)

var messageEscaper = strings.NewReplacer(
	"%", "%AZP25",
	"\r", "%0D",
	"\n", "%0A",
)

var propertyEscaper = strings.NewReplacer(
	"%", "%AZP25",
	";", "%3B",
	"\r", "%0D",
	"\n", "%0A",
	"]", "%5D",
)

// Writer serializes logging commands onto the agent-captured output.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter returns a Writer emitting to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// SetSecret asks the agent to mask value in every subsequent log line.
// Empty values are ignored.
func (w *Writer) SetSecret(value string) {
	if value == "" {
		return
	}
	w.emit("task.setsecret", nil, value)
}

// LogIssue records an error or warning against the task.
func (w *Writer) LogIssue(kind IssueType, message string) {
	w.emit("task.logissue", map[string]string{"type": string(kind)}, message)
}

// Complete sets the task result.
func (w *Writer) Complete(result Result, message string) {
	w.emit("task.complete", map[string]string{"result": string(result)}, message)
}

func (w *Writer) emit(command string, props map[string]string, message string) {
	if w == nil || w.out == nil {
		return
	}

	var b strings.Builder
	b.WriteString("##vso[")
	b.WriteString(command)

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i == 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%s;", k, propertyEscaper.Replace(props[k]))
	}

	b.WriteByte(']')
	b.WriteString(messageEscaper.Replace(message))
	b.WriteByte('\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = io.WriteString(w.out, b.String())
}
