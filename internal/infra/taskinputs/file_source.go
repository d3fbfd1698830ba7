package taskinputs

import (
	"fmt"

	"docker-run-task/internal/domain/model"
	"docker-run-task/pkg/yaml"
)

// Endpoint is a service endpoint declared in an inputs file.
type Endpoint struct {
	URL  string                       `yaml:"url"`
	Auth *model.EndpointAuthorization `yaml:"auth"`
}

// InputsFile is the YAML document accepted by FileSource. It lets the task run
// outside a pipeline agent, e.g. on a developer machine.
type InputsFile struct {
	Inputs    map[string]string   `yaml:"inputs"`
	Endpoints map[string]Endpoint `yaml:"endpoints"`
}

// FileSource serves values from a decoded InputsFile.
type FileSource struct {
	file InputsFile
}

// LoadFileSource reads and strictly decodes the YAML inputs file at path.
func LoadFileSource(path string) (*FileSource, error) {
	var f InputsFile
	if err := yaml.LoadFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to load inputs file: %w", err)
	}
	return &FileSource{file: f}, nil
}

// NewFileSource wraps an in-memory InputsFile.
func NewFileSource(f InputsFile) *FileSource {
	return &FileSource{file: f}
}

// LookupInput returns the named entry of the inputs section.
func (s *FileSource) LookupInput(name string) (string, bool) {
	v, ok := s.file.Inputs[name]
	return v, ok
}

// LookupEndpointURL returns the url of the endpoint declared under id.
func (s *FileSource) LookupEndpointURL(id string) (string, bool) {
	ep, ok := s.file.Endpoints[id]
	if !ok {
		return "", false
	}
	return ep.URL, true
}

// LookupEndpointAuthorization returns the auth block of the endpoint declared
// under id. It never fails since the file was decoded when loaded.
func (s *FileSource) LookupEndpointAuthorization(id string) (*model.EndpointAuthorization, bool, error) {
	ep, ok := s.file.Endpoints[id]
	if !ok || ep.Auth == nil {
		return nil, false, nil
	}
	return ep.Auth, true, nil
}
