package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"docker-run-task/pkg/yaml"
)

const (
	// DefaultDockerPath is the docker CLI resolved through PATH.
	DefaultDockerPath = "docker"
	// DefaultLogLevel is used when log_level is not set.
	DefaultLogLevel = "info"
	// DefaultLogFormat is used when log_format is not set.
	DefaultLogFormat = "text"

	// PipelineDebugVariable is set to true by the pipeline agent when the run
	// was queued with diagnostics enabled.
	PipelineDebugVariable = "SYSTEM_DEBUG"
)

// Config holds the task settings that are not pipeline inputs.
type Config struct {
	// DockerPath is the docker CLI executable, a name or an absolute path.
	DockerPath string `yaml:"docker_path"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
	// DockerConfigDir isolates registry sessions from the agent user's
	// ~/.docker when set. Empty inherits the agent's DOCKER_CONFIG.
	DockerConfigDir string `yaml:"docker_config_dir"`
	// InputsFile is an optional YAML file of inputs and endpoints consulted
	// after the environment.
	InputsFile string `yaml:"inputs_file"`
}

// prepareConfig fills in defaults for unset fields.
func prepareConfig(config *Config) {
	if config.DockerPath == "" {
		config.DockerPath = DefaultDockerPath
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.LogFormat == "" {
		config.LogFormat = DefaultLogFormat
	}
}

// normalize lower-cases the enumerated settings and maps "warning" to "warn",
// so the file accepts what the logger itself accepts.
func normalize(config *Config) {
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	config.LogFormat = strings.ToLower(strings.TrimSpace(config.LogFormat))
	if config.LogLevel == "warning" {
		config.LogLevel = "warn"
	}
}

// validate rejects values the task cannot act on.
func validate(config *Config) error {
	switch config.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log_format %q", config.LogFormat)
	}
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log_level %q", config.LogLevel)
	}
	return nil
}

// LoadConfig loads the configuration from a YAML file. An empty path yields
// the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if configPath != "" {
		if err := yaml.LoadFile(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	normalize(config)
	prepareConfig(config)
	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return config, nil
}

// ApplyPipelineVariables lets pipeline variables override the file settings.
// Currently only SYSTEM_DEBUG, which forces debug logging.
func (c *Config) ApplyPipelineVariables(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(PipelineDebugVariable); ok {
		if debug, err := strconv.ParseBool(v); err == nil && debug {
			c.LogLevel = "debug"
		}
	}
}
