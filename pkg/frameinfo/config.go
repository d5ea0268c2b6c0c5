package frameinfo

import "errors"

var (
	ErrNegativeDepth     = errors.New("max_depth must not be negative")
	ErrNegativeCacheSize = errors.New("name_cache_size must not be negative")
)

// Config is the yaml form of the locator options.
type Config struct {
	MaxDepth      int  `yaml:"max_depth"`      // 0 = unlimited
	RuntimeFrames bool `yaml:"runtime_frames"` // keep runtime.* frames
	NameCacheSize int  `yaml:"name_cache_size"`
}

func DefaultConfig() Config {
	return Config{
		NameCacheSize: DefaultNameCacheSize,
	}
}

func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return ErrNegativeDepth
	}
	if c.NameCacheSize < 0 {
		return ErrNegativeCacheSize
	}
	return nil
}

func (c *Config) Options() []Option {
	opts := []Option{
		WithMaxDepth(c.MaxDepth),
		WithNameCache(c.NameCacheSize),
	}
	if c.RuntimeFrames {
		opts = append(opts, WithRuntimeFrames())
	}
	return opts
}

// NewFromConfig validates cfg and builds a locator from it.
func NewFromConfig(cfg Config) (*Locator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(cfg.Options()...), nil
}
