package env

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/lattesec/log"
)

type unmarshalFunc func(data []byte, v any) error

// mergeFile decodes cfgPath into tmp and merges it over out. A missing file
// leaves out untouched.
func mergeFile(cfgPath string, out, tmp any, unmarshal unmarshalFunc) error {
	log.Debug().
		WithMeta("scope", "env").
		WithMeta("path", cfgPath).
		Msg("attempting to load config").Send()

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().
				WithMeta("scope", "env").
				WithMeta("path", cfgPath).
				Msg("not found").Send()
			return nil
		}

		log.Error().
			WithMeta("scope", "env").
			WithMeta("path", cfgPath).
			Msgf("failed to read config file: %v", err).Send()
		return err
	}

	if err := unmarshal(data, tmp); err != nil {
		log.Warn().
			WithMeta("scope", "env").
			WithMeta("path", cfgPath).
			Msgf("failed to parse: %v", err).Send()

		log.Debug().
			WithMeta("scope", "env").
			WithMeta("path", cfgPath).
			WithMeta("data", string(data)).
			Msgf("failed to parse: %v", err).Send()

		return fmt.Errorf("failed to parse config from %s: %v", cfgPath, err)
	}

	if err := mergo.Merge(out, tmp, mergo.WithOverride); err != nil {
		log.Warn().
			WithMeta("scope", "env").
			WithMeta("path", cfgPath).
			Msgf("failed to merge config: %v", err).Send()

		log.Debug().
			WithMeta("scope", "env").
			WithMeta("path", cfgPath).
			WithMeta("merge_with", out).
			Msgf("failed to merge config: %v", err).Send()

		return fmt.Errorf("failed to merge config from %s: %v", cfgPath, err)
	}

	log.Info().
		WithMeta("scope", "env").
		WithMeta("path", cfgPath).
		Msgf("loaded config from %s", cfgPath).Send()
	return nil
}
