package taskinputs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docker-run-task/internal/domain/model"
	"docker-run-task/internal/domain/repository"
)

func TestEnvSourceInputs(t *testing.T) {
	p := NewProvider(NewMapEnvSource(map[string]string{
		"INPUT_IMAGENAME":         "  app:1.0  ",
		"INPUT_CONTAINERNAME":     "",
		"INPUT_SOME_DOTTED_INPUT": "dots",
	}))

	v, err := p.GetInput("imageName", true)
	require.NoError(t, err)
	assert.Equal(t, "app:1.0", v)

	v, err = p.GetInput("containerName", false)
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = p.GetInput("some.dotted input", true)
	require.NoError(t, err)
	assert.Equal(t, "dots", v)

	_, err = p.GetInput("containerName", true)
	assert.ErrorIs(t, err, repository.ErrInputRequired)
	assert.Contains(t, err.Error(), "containerName")

	_, err = p.GetInput("additionalArgs", true)
	assert.ErrorIs(t, err, repository.ErrInputRequired)
}

func TestEnvSourceEndpoints(t *testing.T) {
	p := NewProvider(NewMapEnvSource(map[string]string{
		"ENDPOINT_URL_HUB":  "https://index.docker.io/v1/",
		"ENDPOINT_AUTH_HUB": `{"scheme":"UsernamePassword","parameters":{"username":"me","password":"pw"}}`,
		"ENDPOINT_AUTH_BAD": `{not json`,
	}))

	url, err := p.GetEndpointURL("hub", true)
	require.NoError(t, err)
	assert.Equal(t, "https://index.docker.io/v1/", url)

	auth, err := p.GetEndpointAuthorization("hub", true)
	require.NoError(t, err)
	assert.Equal(t, model.SchemeUsernamePassword, auth.Scheme)
	assert.Equal(t, "me", auth.Parameter(model.ParamUsername))

	_, err = p.GetEndpointAuthorization("bad", true)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrEndpointAuthorizationRequired)

	auth, err = p.GetEndpointAuthorization("missing", false)
	require.NoError(t, err)
	assert.Nil(t, auth)

	_, err = p.GetEndpointAuthorization("missing", true)
	assert.ErrorIs(t, err, repository.ErrEndpointAuthorizationRequired)

	_, err = p.GetEndpointURL("missing", true)
	assert.ErrorIs(t, err, repository.ErrEndpointURLRequired)
}

func TestProviderPrecedence(t *testing.T) {
	env := NewMapEnvSource(map[string]string{"INPUT_IMAGENAME": "from-env:1"})
	file := NewFileSource(InputsFile{
		Inputs: map[string]string{"imageName": "from-file:1", "containerName": "from-file"},
	})
	p := NewProvider(env, file)

	v, err := p.GetInput("imageName", true)
	require.NoError(t, err)
	assert.Equal(t, "from-env:1", v)

	v, err = p.GetInput("containerName", true)
	require.NoError(t, err)
	assert.Equal(t, "from-file", v)
}

func TestLoadFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.yaml")
	content := `inputs:
  dockerServiceEndpoint: build-host
  dockerRegistryServiceEndpoint: hub
  imageName: app:1.0
endpoints:
  build-host:
    url: tcp://build-host:2376
  hub:
    url: https://index.docker.io/v1/
    auth:
      scheme: UsernamePassword
      parameters:
        username: me
        password: secret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	src, err := LoadFileSource(path)
	require.NoError(t, err)
	p := NewProvider(src)

	v, err := p.GetInput("imageName", true)
	require.NoError(t, err)
	assert.Equal(t, "app:1.0", v)

	url, err := p.GetEndpointURL("build-host", true)
	require.NoError(t, err)
	assert.Equal(t, "tcp://build-host:2376", url)

	auth, err := p.GetEndpointAuthorization("build-host", false)
	require.NoError(t, err)
	assert.Nil(t, auth)

	auth, err = p.GetEndpointAuthorization("hub", true)
	require.NoError(t, err)
	assert.Equal(t, "secret", auth.Parameter(model.ParamPassword))
}

func TestLoadFileSourceRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inputs: {}\nsecrets: {}\n"), 0o600))

	_, err := LoadFileSource(path)
	assert.Error(t, err)
}
