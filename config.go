package mdtabs

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultActiveTabClass marks the initially selected tab.
	DefaultActiveTabClass = "tab-active"
	// DefaultActiveCodeClass marks the initially visible block of a group.
	DefaultActiveCodeClass = "code-active"
	// DefaultCopyButtonTag is the element used for the copy affordance.
	DefaultCopyButtonTag = "i"
	// DefaultCopyButtonIconClasses are the icon classes of the copy affordance.
	DefaultCopyButtonIconClasses = "fa-solid fa-copy"
	// DefaultCopyButtonContainerClass positions the copy affordance.
	DefaultCopyButtonContainerClass = "code-block-copy"
)

// Config holds the class names and elements used in generated markup.
// Empty fields fall back to the package defaults.
type Config struct {
	ActiveTabClass           string `mapstructure:"active-tab-class"`
	ActiveCodeClass          string `mapstructure:"active-code-class"`
	CopyButtonTag            string `mapstructure:"copy-tag"`
	CopyButtonIconClasses    string `mapstructure:"copy-icon"`
	CopyButtonContainerClass string `mapstructure:"copy-class"`

	// Logger receives debug events. Nil discards them.
	Logger logrus.FieldLogger `mapstructure:"-"`
}

// Option configures rendering behavior.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		ActiveTabClass:           DefaultActiveTabClass,
		ActiveCodeClass:          DefaultActiveCodeClass,
		CopyButtonTag:            DefaultCopyButtonTag,
		CopyButtonIconClasses:    DefaultCopyButtonIconClasses,
		CopyButtonContainerClass: DefaultCopyButtonContainerClass,
	}
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg.withDefaults()
}

// WithConfig replaces every non-empty field of the current configuration.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		if c.ActiveTabClass != "" {
			cfg.ActiveTabClass = c.ActiveTabClass
		}
		if c.ActiveCodeClass != "" {
			cfg.ActiveCodeClass = c.ActiveCodeClass
		}
		if c.CopyButtonTag != "" {
			cfg.CopyButtonTag = c.CopyButtonTag
		}
		if c.CopyButtonIconClasses != "" {
			cfg.CopyButtonIconClasses = c.CopyButtonIconClasses
		}
		if c.CopyButtonContainerClass != "" {
			cfg.CopyButtonContainerClass = c.CopyButtonContainerClass
		}
		if c.Logger != nil {
			cfg.Logger = c.Logger
		}
	}
}

// WithActiveTabClass sets the class of the initially selected tab.
func WithActiveTabClass(class string) Option {
	return func(cfg *Config) {
		cfg.ActiveTabClass = class
	}
}

// WithActiveCodeClass sets the class of the first block in each group.
func WithActiveCodeClass(class string) Option {
	return func(cfg *Config) {
		cfg.ActiveCodeClass = class
	}
}

// WithCopyButton sets the element tag and icon classes of the copy affordance.
func WithCopyButton(tag, iconClasses string) Option {
	return func(cfg *Config) {
		cfg.CopyButtonTag = tag
		cfg.CopyButtonIconClasses = iconClasses
	}
}

// WithCopyButtonContainerClass sets the positioning class of the copy affordance.
func WithCopyButtonContainerClass(class string) Option {
	return func(cfg *Config) {
		cfg.CopyButtonContainerClass = class
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ActiveTabClass == "" {
		c.ActiveTabClass = def.ActiveTabClass
	}
	if c.ActiveCodeClass == "" {
		c.ActiveCodeClass = def.ActiveCodeClass
	}
	if c.CopyButtonTag == "" {
		c.CopyButtonTag = def.CopyButtonTag
	}
	if c.CopyButtonIconClasses == "" {
		c.CopyButtonIconClasses = def.CopyButtonIconClasses
	}
	if c.CopyButtonContainerClass == "" {
		c.CopyButtonContainerClass = def.CopyButtonContainerClass
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}
	return c
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
