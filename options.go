package slackify

import "github.com/riverfjs/slackify-go/internal/converter"

// Options holds options for markdown conversion.
type Options struct {
	Mentions Mentions
	// DetectColors resolves #RRGGBB to color elements.
	DetectColors bool
	// PreferSectionBlocks renders paragraphs and H3+ headings as mrkdwn sections.
	PreferSectionBlocks bool
}

// Option is a function that configures Options.
type Option func(*Options)

// WithMentions sets all four mention tables at once.
func WithMentions(mentions Mentions) Option {
	return func(opts *Options) {
		opts.Mentions = mentions
	}
}

// WithUsers sets the name → user ID table used for bare @name.
func WithUsers(users map[string]string) Option {
	return func(opts *Options) {
		opts.Mentions.Users = users
	}
}

// WithChannels sets the name → channel ID table used for bare #name.
func WithChannels(channels map[string]string) Option {
	return func(opts *Options) {
		opts.Mentions.Channels = channels
	}
}

// WithUserGroups sets the name → user group ID table.
func WithUserGroups(groups map[string]string) Option {
	return func(opts *Options) {
		opts.Mentions.UserGroups = groups
	}
}

// WithTeams sets the name → team ID table.
func WithTeams(teams map[string]string) Option {
	return func(opts *Options) {
		opts.Mentions.Teams = teams
	}
}

// WithDetectColors sets whether hex color codes become color elements.
func WithDetectColors(enable bool) Option {
	return func(opts *Options) {
		opts.DetectColors = enable
	}
}

// WithPreferSectionBlocks sets whether paragraphs render as mrkdwn sections.
func WithPreferSectionBlocks(enable bool) Option {
	return func(opts *Options) {
		opts.PreferSectionBlocks = enable
	}
}

// WithOptions replaces every option with o.
func WithOptions(o Options) Option {
	return func(opts *Options) {
		*opts = o
	}
}

// defaultOptions returns the default conversion options.
func defaultOptions() *Options {
	return &Options{
		DetectColors:        true,
		PreferSectionBlocks: true,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *Options) renderConfig() *converter.RenderConfig {
	return &converter.RenderConfig{
		Mentions:            o.Mentions,
		DetectColors:        o.DetectColors,
		PreferSectionBlocks: o.PreferSectionBlocks,
	}
}

// Default Slack limits.
const (
	DefaultMaxBlocks     = 40
	DefaultMaxCharacters = 12000
	DefaultMaxTextLength = 3000
)

// SplitOptions holds the batch limits. Non-positive values mean the default.
type SplitOptions struct {
	// MaxBlocks is the block count limit per batch.
	MaxBlocks int `yaml:"max_blocks" json:"maxBlocks,omitempty"`
	// MaxCharacters limits the serialized JSON size of a batch, in UTF-16 units.
	MaxCharacters int `yaml:"max_characters" json:"maxCharacters,omitempty"`
	// MaxTextLength limits the text of a single section or header.
	MaxTextLength int `yaml:"max_text_length" json:"maxTextLength,omitempty"`
}

// SplitOption is a function that configures SplitOptions.
type SplitOption func(*SplitOptions)

// WithMaxBlocks sets the block count limit.
func WithMaxBlocks(n int) SplitOption {
	return func(opts *SplitOptions) {
		opts.MaxBlocks = n
	}
}

// WithMaxCharacters sets the serialized size limit.
func WithMaxCharacters(n int) SplitOption {
	return func(opts *SplitOptions) {
		opts.MaxCharacters = n
	}
}

// WithMaxTextLength sets the per-block text limit.
func WithMaxTextLength(n int) SplitOption {
	return func(opts *SplitOptions) {
		opts.MaxTextLength = n
	}
}

// WithLimits replaces every limit with limits.
func WithLimits(limits SplitOptions) SplitOption {
	return func(opts *SplitOptions) {
		*opts = limits
	}
}

func (s SplitOptions) withDefaults() SplitOptions {
	if s.MaxBlocks <= 0 {
		s.MaxBlocks = DefaultMaxBlocks
	}
	if s.MaxCharacters <= 0 {
		s.MaxCharacters = DefaultMaxCharacters
	}
	if s.MaxTextLength <= 0 {
		s.MaxTextLength = DefaultMaxTextLength
	}
	return s
}

func applySplitOptions(opts ...SplitOption) SplitOptions {
	var limits SplitOptions
	for _, opt := range opts {
		opt(&limits)
	}
	return limits.withDefaults()
}
