// Package taskinputs resolves task inputs and service endpoints from the
// sources a pipeline agent exposes to a task.
package taskinputs

import (
	"fmt"
	"strings"

	"docker-run-task/internal/domain/model"
	"docker-run-task/internal/domain/repository"
	"docker-run-task/pkg/log"
)

// Source looks up raw values. A missing value is reported with ok=false, never
// as an error; errors are reserved for values that exist but cannot be decoded.
type Source interface {
	LookupInput(name string) (value string, ok bool)
	LookupEndpointURL(id string) (url string, ok bool)
	LookupEndpointAuthorization(id string) (auth *model.EndpointAuthorization, ok bool, err error)
}

// Provider queries its sources in order; the first one holding a non-empty
// value wins.
type Provider struct {
	sources []Source
}

// Assert that *Provider implements repository.TaskInputs.
var _ repository.TaskInputs = (*Provider)(nil)

// NewProvider returns a provider over the given sources.
func NewProvider(sources ...Source) *Provider {
	return &Provider{sources: sources}
}

// GetInput returns the trimmed value of the named input.
func (p *Provider) GetInput(name string, required bool) (string, error) {
	for _, s := range p.sources {
		if v, ok := s.LookupInput(name); ok {
			if v = strings.TrimSpace(v); v != "" {
				log.Debug("[Inputs] resolved input", "name", name)
				return v, nil
			}
		}
	}
	if required {
		return "", fmt.Errorf("%w: %s", repository.ErrInputRequired, name)
	}
	return "", nil
}

// GetEndpointURL returns the URL of the endpoint with the given id.
func (p *Provider) GetEndpointURL(id string, required bool) (string, error) {
	for _, s := range p.sources {
		if v, ok := s.LookupEndpointURL(id); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v, nil
			}
		}
	}
	if required {
		return "", fmt.Errorf("%w: %s", repository.ErrEndpointURLRequired, id)
	}
	return "", nil
}

// GetEndpointAuthorization returns the authorization of the endpoint with the given id.
func (p *Provider) GetEndpointAuthorization(id string, required bool) (*model.EndpointAuthorization, error) {
	for _, s := range p.sources {
		auth, ok, err := s.LookupEndpointAuthorization(id)
		if err != nil {
			return nil, fmt.Errorf("endpoint %s: %w", id, err)
		}
		if ok && auth != nil {
			return auth, nil
		}
	}
	if required {
		return nil, fmt.Errorf("%w: %s", repository.ErrEndpointAuthorizationRequired, id)
	}
	return nil, nil
}
