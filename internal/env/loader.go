package env

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lattesec/frameinfo/internal/helpers/mirror"
	"github.com/lattesec/log"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfigFilename = errors.New("invalid config filename")
	validConfigExtensions    = []string{".yaml", ".yml"}
)

// Loader merges a named config file found in several directories.
type Loader struct {
	paths []string
}

// NewLoader searches the default config directories.
func NewLoader() *Loader {
	return NewLoaderWithPaths(resolvePaths()...)
}

// NewLoaderWithPaths searches paths in increasing priority order.
func NewLoaderWithPaths(paths ...string) *Loader {
	log.Debug().
		WithMeta("scope", "env").
		Msgf("using config paths: %s", strings.Join(paths, ", ")).Send()

	return &Loader{paths}
}

// Load merges config files into `out` (struct pointer). If out is
// Configurable the merged result is validated.
//
// Usage:
//
//	l := NewLoader()
//	l.Load("frameinfo", &config)
func (l *Loader) Load(filename string, out any) error {
	if err := mirror.IsStructPointer(out); err != nil {
		return err
	}

	filename = filepath.Base(filename)
	if filename == "." {
		return ErrInvalidConfigFilename
	}

	for _, dir := range l.paths {
		for _, ext := range validConfigExtensions {
			cfgPath := filepath.Join(dir, filename+ext)
			// fresh &struct{} of the same type per file
			if err := mergeFile(cfgPath, out, mirror.NewEmpty(out), yaml.Unmarshal); err != nil {
				return err
			}
		}
	}

	if c, ok := out.(Configurable); ok {
		if err := c.Validate(); err != nil {
			log.Warn().
				WithMeta("scope", "env").
				Msgf("invalid config: %v", err).Send()
			return fmt.Errorf("invalid config %s: %w", filename, err)
		}
	}

	log.Debug().WithMeta("scope", "env").Msgf("config loaded: %#v", out).Send()
	return nil
}
