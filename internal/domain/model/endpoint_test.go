package model

import (
	"errors"
	"strings"
	"testing"

	"docker-run-task/pkg/certs/certstest"
)

func TestRegistryCredentials(t *testing.T) {
	tests := []struct {
		name       string
		auth       *EndpointAuthorization
		url        string
		wantServer string
		wantErr    string
	}{
		{
			name: "registry parameter wins",
			auth: &EndpointAuthorization{Scheme: SchemeUsernamePassword, Parameters: map[string]string{
				"registry": "https://index.docker.io/v1/", "username": "me", "password": "pw",
			}},
			url:        "https://ignored.example.com",
			wantServer: "https://index.docker.io/v1/",
		},
		{
			name: "falls back to endpoint url",
			auth: &EndpointAuthorization{Parameters: map[string]string{"username": "me", "password": "pw"}},
			url:  "myregistry.azurecr.io", wantServer: "myregistry.azurecr.io",
		},
		{
			name:       "parameter names are case-insensitive",
			auth:       &EndpointAuthorization{Parameters: map[string]string{"Username": "me", "Password": "pw"}},
			wantServer: "",
		},
		{
			name:    "nil authorization",
			wantErr: "no authorization",
		},
		{
			name:    "missing password",
			auth:    &EndpointAuthorization{Parameters: map[string]string{"username": "me"}},
			wantErr: "missing password",
		},
		{
			name:    "missing both",
			auth:    &EndpointAuthorization{Parameters: map[string]string{}},
			wantErr: "missing username, password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := RegistryCredentials(tt.auth, tt.url)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v; want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if creds.ServerAddress != tt.wantServer || creds.Username != "me" || creds.Password != "pw" {
				t.Errorf("creds = %+v", creds)
			}
		})
	}
}

func TestTLSBundle(t *testing.T) {
	if !TLSBundle(nil).IsZero() {
		t.Error("nil authorization should yield an empty bundle")
	}

	b := TLSBundle(&EndpointAuthorization{Scheme: SchemeCertificate, Parameters: map[string]string{
		"cacert": "CA", "cert": "CERT", "key": "KEY",
	}})
	if b.CACertificate != "CA" || b.Certificate != "CERT" || b.PrivateKey != "KEY" {
		t.Errorf("bundle = %+v", b)
	}
}

func TestNewDockerConnection(t *testing.T) {
	if _, err := NewDockerConnection("tcp://build:2376", certstest.NewBundle(t)); err != nil {
		t.Errorf("valid tcp host with TLS rejected: %v", err)
	}
	if conn, err := NewDockerConnection("", TLSBundle(nil)); err != nil || conn.UsesTLS() {
		t.Errorf("empty host should be accepted without TLS, got %+v, %v", conn, err)
	}
	if _, err := NewDockerConnection("not a host", TLSBundle(nil)); err == nil {
		t.Error("expected invalid host to be rejected")
	}

	half := certstest.NewBundle(t)
	half.PrivateKey = ""
	if _, err := NewDockerConnection("tcp://build:2376", half); err == nil {
		t.Error("expected incomplete TLS bundle to be rejected")
	}
}

func TestErrorTypes(t *testing.T) {
	cause := errors.New("exit status 1")
	invErr := &InvocationError{Operation: OperationRun, ExitCode: 125, Output: "Unable to find image\n", Err: cause}
	if invErr.Error() != "docker run failed with exit code 125: Unable to find image" {
		t.Errorf("Error() = %q", invErr.Error())
	}
	if !errors.Is(invErr, cause) {
		t.Error("InvocationError should unwrap to its cause")
	}

	notStarted := &InvocationError{Operation: OperationLogin, ExitCode: -1, Err: errors.New("executable file not found")}
	if !strings.Contains(notStarted.Error(), "could not be started") {
		t.Errorf("Error() = %q", notStarted.Error())
	}

	cfgErr := &ConfigurationError{Err: cause}
	if !errors.Is(cfgErr, cause) || !strings.HasPrefix(cfgErr.Error(), "invalid task configuration") {
		t.Errorf("ConfigurationError = %v", cfgErr)
	}
}
