package env

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	testCases := []struct {
		name     string
		base     []string
		vars     map[string]string
		expected []string
	}{
		{
			name:     "No overrides keeps base",
			base:     []string{"PATH=/bin", "HOME=/root"},
			vars:     nil,
			expected: []string{"PATH=/bin", "HOME=/root"},
		},
		{
			name:     "Overrides replace inherited values",
			base:     []string{"PATH=/bin", "DOCKER_HOST=unix:///old.sock", "HOME=/root"},
			vars:     map[string]string{"DOCKER_HOST": "tcp://build:2376"},
			expected: []string{"PATH=/bin", "HOME=/root", "DOCKER_HOST=tcp://build:2376"},
		},
		{
			name:     "New keys are appended sorted",
			base:     []string{"PATH=/bin"},
			vars:     map[string]string{"DOCKER_TLS_VERIFY": "1", "DOCKER_CERT_PATH": "/tmp/certs"},
			expected: []string{"PATH=/bin", "DOCKER_CERT_PATH=/tmp/certs", "DOCKER_TLS_VERIFY=1"},
		},
		{
			name:     "Empty value removes the key",
			base:     []string{"DOCKER_TLS_VERIFY=1", "PATH=/bin"},
			vars:     map[string]string{"DOCKER_TLS_VERIFY": ""},
			expected: []string{"PATH=/bin"},
		},
		{
			name:     "Values containing equals signs survive",
			base:     []string{"A=b=c"},
			vars:     map[string]string{"B": "x=y"},
			expected: []string{"A=b=c", "B=x=y"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Merge(tc.base, tc.vars)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Merge() = %q; want %q", got, tc.expected)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	environ := []string{"A=1", "B=2", "A=3"}

	if v, ok := Lookup(environ, "A"); !ok || v != "3" {
		t.Errorf("Lookup(A) = %q, %v; want last value 3", v, ok)
	}
	if _, ok := Lookup(environ, "C"); ok {
		t.Error("Lookup(C) should not be found")
	}
}
