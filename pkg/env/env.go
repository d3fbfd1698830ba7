package env

import (
	"fmt"
	"sort"
	"strings"
)

// Merge returns base with vars applied on top, in KEY=VALUE form.
//
//   - base - the inherited environment (typically os.Environ()).
//   - vars - variables to set; an empty value removes the key from the result.
//
// Keys of base that are not overridden keep their original order. Overrides are
// appended in alphabetical order so the resulting environment is deterministic.
func Merge(base []string, vars map[string]string) []string {
	out := make([]string, 0, len(base)+len(vars))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, overridden := vars[key]; overridden {
			continue
		}
		out = append(out, kv)
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if vars[k] == "" {
			continue
		}
		out = append(out, fmt.Sprintf("%s=%s", k, vars[k]))
	}
	return out
}

// Lookup returns the value of key in an environment slice.
func Lookup(environ []string, key string) (string, bool) {
	for i := len(environ) - 1; i >= 0; i-- {
		k, v, ok := strings.Cut(environ[i], "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}
