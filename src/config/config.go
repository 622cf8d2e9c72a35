// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/alpn"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/engine"
)

// EnvConfigFile names the environment variable holding the configuration
// file path used when none is given explicitly.
const EnvConfigFile = "TLS_ENGINE_UTILS_CONFIG"

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

const defaultTimeoutSeconds = 10

// ErrInvalidConfig is returned when a configuration does not validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed schema.json
var schema []byte

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config holds the settings shared by every command.
//
// It can be loaded from a JSON or YAML file given explicitly or through the
// TLS_ENGINE_UTILS_CONFIG environment variable, with defaults applied for
// any missing values.
type Config struct {
	// Engine: TLS engine name, "standard" or "fork"
	Engine string `json:"engine" yaml:"engine"`
	// ALPN: protocols offered during a probe handshake, in preference order
	ALPN []string `json:"alpn" yaml:"alpn"`
	// TimeoutSeconds: dial and handshake timeout of a probe
	TimeoutSeconds int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	// Proxy: optional SOCKS5 proxy URL for probes, e.g. socks5://127.0.0.1:1080
	Proxy string `json:"proxy,omitempty" yaml:"proxy,omitempty"`

	// Log: logger settings
	Log struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
		// Silent: suppress log output
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{
		Engine:         engine.NameStandard,
		ALPN:           []string{"h2", "http/1.1"},
		TimeoutSeconds: defaultTimeoutSeconds,
	}
	c.Log.Format = LogFormatText
	return c
}

// detectFormat determines the configuration file format based on file
// extension, case-insensitively. Anything but .yaml and .yml is JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// Load loads the configuration file at path over the defaults.
//
// Parameters:
//   - path: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config with defaults applied
//   - An error if the file cannot be read, parsed or validated
//
// Configuration Priority:
//  1. Default values are set
//  2. TLS_ENGINE_UTILS_CONFIG is checked if path is empty
//  3. Config file values override defaults
//
// The raw document is validated against the embedded JSON schema before it
// is decoded, so unknown keys and out of range enums are rejected.
func Load(path string) (*Config, error) {
	c := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := c.decode(data, detectFormat(path)); err != nil {
		return nil, err
	}

	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.Log.Format == "" {
		c.Log.Format = LogFormatText
	}
	if c.Engine == "" {
		c.Engine = engine.NameStandard
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// decode validates data against the schema and unmarshals it into c.
func (c *Config) decode(data []byte, f format) error {
	var doc any
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	if doc == nil {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	switch f {
	case formatYAML:
		return yaml.Unmarshal(data, c)
	default:
		return json.Unmarshal(data, c)
	}
}

// Validate checks the settings the schema cannot express.
func (c *Config) Validate() error {
	if _, err := engine.ByName(c.Engine); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := alpn.Encode(c.ALPN); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Timeout returns TimeoutSeconds as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
