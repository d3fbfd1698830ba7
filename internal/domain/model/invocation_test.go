package model

import (
	"strings"
	"testing"

	"github.com/docker/docker/api/types/registry"
)

func TestInvocationConstructors(t *testing.T) {
	conn := DockerConnection{Host: "tcp://build:2376"}
	creds := registry.AuthConfig{Username: "me", Password: "s3cr3t", ServerAddress: "registry.example.com"}

	login := NewLoginInvocation(conn, creds)
	if login.Operation() != OperationLogin || login.ServerAddress() != "registry.example.com" {
		t.Errorf("login = %+v", login)
	}
	if login.Credentials().Password != "s3cr3t" || login.Connection().Host != conn.Host {
		t.Errorf("login lost credentials or connection")
	}

	remove := NewRemoveContainerInvocation(conn, "app-c")
	if remove.Operation() != OperationRemoveContainerByName || remove.ContainerName() != "app-c" {
		t.Errorf("remove = %+v", remove)
	}
	if remove.Credentials() != (registry.AuthConfig{}) {
		t.Errorf("remove must not carry credentials")
	}

	run := NewRunInvocation(conn, "app:1.0", "app-c", "-p 8080:80")
	if run.Operation() != OperationRun || run.ImageName() != "app:1.0" || run.ContainerName() != "app-c" || run.AdditionalArguments() != "-p 8080:80" {
		t.Errorf("run = %+v", run)
	}

	logout := NewLogoutInvocation(conn, "registry.example.com")
	if logout.Operation() != OperationLogout || logout.ServerAddress() != "registry.example.com" {
		t.Errorf("logout = %+v", logout)
	}
}

func TestInvocationStringHidesPassword(t *testing.T) {
	inv := NewLoginInvocation(DockerConnection{}, registry.AuthConfig{Username: "me", Password: "s3cr3t", ServerAddress: "r.io"})

	s := inv.String()
	if strings.Contains(s, "s3cr3t") {
		t.Fatalf("String() leaked the password: %s", s)
	}
	if s != "login(server=r.io, username=me)" {
		t.Errorf("String() = %q", s)
	}
}

func TestInvocationString(t *testing.T) {
	tests := []struct {
		inv  Invocation
		want string
	}{
		{NewRemoveContainerInvocation(DockerConnection{}, "app-c"), "removeContainerByName(name=app-c)"},
		{NewRunInvocation(DockerConnection{}, "app:1.0", "", ""), "run(image=app:1.0)"},
		{NewRunInvocation(DockerConnection{}, "app:1.0", "app-c", "-p 8080:80"), "run(image=app:1.0, name=app-c, args=-p 8080:80)"},
		{NewLogoutInvocation(DockerConnection{}, "r.io"), "logout(server=r.io)"},
	}

	for _, tt := range tests {
		if got := tt.inv.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestOperationString(t *testing.T) {
	if OperationUnknown.String() != "unknown" || Operation(42).String() != "unknown" {
		t.Error("unexpected name for unknown operation")
	}
	if OperationRemoveContainerByName.String() != "removeContainerByName" {
		t.Errorf("got %q", OperationRemoveContainerByName.String())
	}
}
