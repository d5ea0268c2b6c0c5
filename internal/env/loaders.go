package env

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/lattesec/frameinfo/internal/helpers/mirror"
	"github.com/lattesec/log"
)

// MustFn unwraps a loader constructor, panicking on err.
func MustFn[T any](fn func(T) error, err error) func(T) error {
	if err != nil {
		panic(err)
	}
	return fn
}

// FromYAML returns a loader merging pth.yml and then pth.yaml into the config.
// A missing file is not an error.
func FromYAML[T Configurable](pth string) (func(T) error, error) {
	pth = filepath.Clean(pth)
	if pth == "." {
		return nil, ErrInvalidConfigFilename
	}

	if ext := filepath.Ext(pth); ext != "" {
		if ext == ".yaml" || ext == ".yml" {
			pth = strings.TrimSuffix(pth, ext)
		} else {
			log.Warn().
				WithMeta("scope", "env").
				WithMeta("path", pth).
				Msg("invalid config extension").Send()
			return nil, ErrInvalidConfigFilename
		}
	}

	return func(cfg T) error {
		for _, ext := range [2]string{".yml", ".yaml"} {
			cfgPath := pth + ext
			if err := mergeFile(cfgPath, cfg, mirror.Fresh[T](), yaml.Unmarshal); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

// FromYAMLConfigs returns a loader applying FromYAML to filename in every
// config directory, then validating the result.
func FromYAMLConfigs[T Configurable](filename string) (func(T) error, error) {
	filename = filepath.Clean(filename)
	if filename == "." {
		return nil, ErrInvalidConfigFilename
	}

	return func(cfg T) error {
		paths := resolvePaths()

		for _, dir := range paths {
			exec, err := FromYAML[T](filepath.Join(dir, filename))
			if err != nil {
				return err
			}

			if err := exec(cfg); err != nil {
				return err
			}
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", filename, err)
		}
		return nil
	}, nil
}
