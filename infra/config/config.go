package config

import (
	"fmt"
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

const path = "infra/config"

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) []byte {

	b, err := ioutil.ReadFile(fmt.Sprintf("%s/%s.toml", path, key))
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}

	err = toml.Unmarshal(b, v)
	if err != nil {
		panic(fmt.Sprintf("could not unmarshal the config for %s: %s", key, err.Error()))
	}

	log.Info().Str("config", key).Msg("loaded default config")

	return b

}

// Load loads the config from the given file path.
func Load(file string, v interface{}) error {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not load config '%s': %w", file, err)
	}
	if err := toml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("could not unmarshal config '%s': %w", file, err)
	}
	return nil
}
