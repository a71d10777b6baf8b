// Package config loads generator configuration from YAML files.
package config

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"roguelike3d/pkg/game/generator"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = generator.ErrInvalidConfig

// Load reads a YAML config over the defaults. An empty path returns the defaults.
func Load(path string) (generator.Config, error) {
	if path == "" {
		return generator.DefaultConfig(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return generator.Config{}, err
	}
	return Parse(raw)
}

// Parse decodes raw YAML over the defaults and validates the result. Unknown keys are rejected.
func Parse(raw []byte) (generator.Config, error) {
	cfg := generator.DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return generator.Config{}, fmt.Errorf("dungeon.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return generator.Config{}, fmt.Errorf("dungeon.yaml: %w", err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML
func Marshal(cfg generator.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Hash returns a stable digest of cfg used to group runs of the same configuration
func Hash(cfg generator.Config) (string, error) {
	raw, err := Marshal(cfg)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:8]), nil
}
