// Package config handles run configuration for contextrag.
//
// The run config is a JSON document supplied per invocation (the binding
// contract): include patterns, exclude patterns, and the index storage
// path. A project may additionally carry a .contextrag.yaml file whose
// values are merged beneath the run config, and CONTEXTRAG_* environment
// variables override both.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	cerrors "github.com/context-rag/contextrag/internal/errors"
)

// IndexConfig is the per-run configuration. It is read once per invocation
// and immutable for the run's duration.
type IndexConfig struct {
	// Include lists patterns a path must match to be indexed.
	// An empty list admits nothing.
	Include []string `json:"include" yaml:"include"`

	// Exclude lists substring patterns that reject a path outright.
	Exclude []string `json:"exclude" yaml:"exclude"`

	// StoragePath is the index storage location on disk.
	StoragePath string `json:"storage_path" yaml:"storage_path"`
}

// FileConfig is the optional project-level configuration loaded from
// .contextrag.yaml. Its excludes are appended to every run's excludes; its
// log level applies when no flag overrides it.
type FileConfig struct {
	Exclude  []string `yaml:"exclude"`
	LogLevel string   `yaml:"log_level"`
}

// ProjectConfigName is the project configuration file name.
const ProjectConfigName = ".contextrag.yaml"

// ParseJSON parses and validates a run configuration.
//
// The include field must be present (an explicit empty list is valid and
// means reject-all), and storage_path must be non-empty. Malformed JSON or
// a failed validation is a configuration error; no partial run happens.
func ParseJSON(configJSON string) (*IndexConfig, error) {
	var cfg IndexConfig
	if err := json.Unmarshal([]byte(configJSON), &cfg); err != nil {
		return nil, cerrors.ConfigError("invalid config JSON: "+err.Error(), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is complete.
func (c *IndexConfig) Validate() error {
	if c.Include == nil {
		return cerrors.ConfigError("config missing required field: include", nil)
	}
	if strings.TrimSpace(c.StoragePath) == "" {
		return cerrors.ConfigError("config missing required field: storage_path", nil)
	}
	return nil
}

// LoadProject loads .contextrag.yaml from dir if present.
// A missing file is not an error; a malformed one is.
func LoadProject(dir string) (*FileConfig, error) {
	path := filepath.Join(dir, ProjectConfigName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &FileConfig{}, nil
	}
	if err != nil {
		return nil, cerrors.ConfigError("failed to read "+path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, cerrors.ConfigError("failed to parse "+path, err)
	}

	return &fc, nil
}

// ApplyProject merges project-level settings beneath the run config.
// Project excludes are appended (never replacing the run's own excludes).
func (c *IndexConfig) ApplyProject(fc *FileConfig) {
	if fc == nil {
		return
	}
	if len(fc.Exclude) > 0 {
		c.Exclude = append(c.Exclude, fc.Exclude...)
	}
}

// ApplyEnvOverrides applies CONTEXTRAG_* environment variables.
// CONTEXTRAG_EXCLUDE holds comma-separated extra exclude patterns.
func (c *IndexConfig) ApplyEnvOverrides() {
	if raw := os.Getenv("CONTEXTRAG_EXCLUDE"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.Exclude = append(c.Exclude, p)
			}
		}
	}
}

// LogLevel resolves the effective log level: CONTEXTRAG_LOG_LEVEL wins,
// then the project file, then the fallback.
func LogLevel(fc *FileConfig, fallback string) string {
	if lvl := os.Getenv("CONTEXTRAG_LOG_LEVEL"); lvl != "" {
		return lvl
	}
	if fc != nil && fc.LogLevel != "" {
		return fc.LogLevel
	}
	return fallback
}
