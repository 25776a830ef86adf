package slackify

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of the conversion and split options.
//
//	mentions:
//	  users: {jdoe: U123}
//	  channels: {general: C123}
//	detect_colors: true
//	prefer_section_blocks: false
//	split:
//	  max_blocks: 40
type Config struct {
	Mentions            Mentions     `yaml:"mentions"`
	DetectColors        *bool        `yaml:"detect_colors"`
	PreferSectionBlocks *bool        `yaml:"prefer_section_blocks"`
	Split               SplitOptions `yaml:"split"`
}

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		detect, prefer := true, true
		defaultConfig = &Config{
			DetectColors:        &detect,
			PreferSectionBlocks: &prefer,
			Split:               SplitOptions{}.withDefaults(),
		}
	})
	return defaultConfig
}

// LoadConfig decodes a YAML configuration from r. Unknown keys are rejected and the
// mention IDs are validated. An empty document yields the defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := ValidateMentions(cfg.Mentions); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ConvertOptions returns the conversion options described by c.
func (c *Config) ConvertOptions() []Option {
	opts := []Option{WithMentions(c.Mentions)}
	if c.DetectColors != nil {
		opts = append(opts, WithDetectColors(*c.DetectColors))
	}
	if c.PreferSectionBlocks != nil {
		opts = append(opts, WithPreferSectionBlocks(*c.PreferSectionBlocks))
	}
	return opts
}

// SplitOptions returns the split limits described by c.
func (c *Config) SplitOptions() []SplitOption {
	return []SplitOption{WithLimits(c.Split)}
}
