package model

import (
	"fmt"
	"strings"

	"docker-run-task/pkg/certs"

	"github.com/docker/docker/api/types/registry"
)

// Authorization schemes published by the pipeline agent.
const (
	SchemeUsernamePassword = "UsernamePassword"
	SchemeCertificate      = "Certificate"
	SchemeNone             = "None"
)

// Parameter names of docker registry and docker host endpoints.
const (
	ParamRegistry = "registry"
	ParamUsername = "username"
	ParamPassword = "password"
	ParamEmail    = "email"
	ParamCACert   = "cacert"
	ParamCert     = "cert"
	ParamKey      = "key"
)

// EndpointAuthorization is the authorization part of a service endpoint.
type EndpointAuthorization struct {
	Scheme     string            `json:"scheme" yaml:"scheme"`
	Parameters map[string]string `json:"parameters" yaml:"parameters"`
}

// Parameter returns a parameter by name, matching case-insensitively as the
// agent does not normalise parameter keys.
func (a *EndpointAuthorization) Parameter(name string) string {
	if a == nil {
		return ""
	}
	if v, ok := a.Parameters[name]; ok {
		return v
	}
	for k, v := range a.Parameters {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// RegistryCredentials maps a docker registry endpoint to docker's AuthConfig.
// The server address comes from the "registry" parameter and falls back to the
// endpoint URL. Username and password are mandatory.
func RegistryCredentials(auth *EndpointAuthorization, endpointURL string) (registry.AuthConfig, error) {
	if auth == nil {
		return registry.AuthConfig{}, fmt.Errorf("registry endpoint has no authorization")
	}

	creds := registry.AuthConfig{
		Username:      auth.Parameter(ParamUsername),
		Password:      auth.Parameter(ParamPassword),
		Email:         auth.Parameter(ParamEmail),
		ServerAddress: auth.Parameter(ParamRegistry),
	}
	if creds.ServerAddress == "" {
		creds.ServerAddress = endpointURL
	}

	var missing []string
	if creds.Username == "" {
		missing = append(missing, ParamUsername)
	}
	if creds.Password == "" {
		missing = append(missing, ParamPassword)
	}
	if len(missing) > 0 {
		return registry.AuthConfig{}, fmt.Errorf("registry endpoint authorization is missing %s", strings.Join(missing, ", "))
	}
	return creds, nil
}

// TLSBundle extracts client TLS material from a docker host endpoint.
// A nil authorization yields an empty bundle.
func TLSBundle(auth *EndpointAuthorization) certs.Bundle {
	return certs.Bundle{
		CACertificate: auth.Parameter(ParamCACert),
		Certificate:   auth.Parameter(ParamCert),
		PrivateKey:    auth.Parameter(ParamKey),
	}
}
