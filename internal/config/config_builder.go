package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers and merges them into a single
// [StructuredConfig]. Errors from individual layers are accumulated and
// reported by build.
type configBuilder struct {
	defaults *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		defaults: defaultConfig(),
	}
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv(nil)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flagsCfg
	return b
}

// jsonFilePath returns the JSON config path; flags win over env.
func (b *configBuilder) jsonFilePath() string {
	if b.flags != nil && b.flags.JSONFilePath != "" {
		return b.flags.JSONFilePath
	}
	if b.env != nil {
		return b.env.JSONFilePath
	}
	return ""
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	layers := []*StructuredConfig{b.defaults}

	if path := b.jsonFilePath(); path != "" {
		jsonCfg, err := parseJSON(path)
		if err != nil {
			return nil, fmt.Errorf("error occurred during building config: %w", err)
		}
		layers = append(layers, jsonCfg)
	}

	layers = append(layers, b.env, b.flags)

	config := new(StructuredConfig)
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(config, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}
