// Package argv splits a user supplied argument string into process arguments
// without involving a shell.
package argv

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// Split breaks line into words using shell quoting rules. Environment
// variables and backticks are not expanded.
//
// An unquoted shell operator (; & | < >) is rejected: the string is never run
// by a shell, so the operator can only be meant literally and must be quoted.
func Split(line string) ([]string, error) {
	p := shellwords.NewParser()
	p.ParseEnv = false
	p.ParseBacktick = false

	words, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split %q: %w", line, err)
	}
	if p.Position >= 0 {
		// Position counts runes, not bytes.
		tail := string([]rune(line)[p.Position:])
		return nil, fmt.Errorf("unquoted shell operator in %q at %q; quote the value", line, tail)
	}
	return words, nil
}
