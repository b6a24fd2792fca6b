package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/knadh/koanf/v2"
)

// EnvPrefix starts every environment variable the config reads.
const EnvPrefix = "ROBOFACTORY_"

// envMapping maps environment variables to config keys.
var envMapping = map[string]string{
	EnvPrefix + "TICK_RATE":     "input.tick_rate",
	EnvPrefix + "INITIAL_DELAY": "input.initial_delay",
	EnvPrefix + "REPEAT_GAP":    "input.repeat_gap",
	EnvPrefix + "BINDINGS":      "bindings.file",
	EnvPrefix + "WATCH":         "bindings.watch",
	EnvPrefix + "LOG_LEVEL":     "log.level",
	EnvPrefix + "LOG_FILE":      "log.file",
}

// EnvVars returns the supported environment variables, sorted.
func EnvVars() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadEnv sets every mapped variable present in the environment on k.
// Values stay strings; decoding converts them to the field types.
// An empty value is a value, not unset.
func loadEnv(k *koanf.Koanf) error {
	for _, name := range EnvVars() {
		val, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if err := k.Set(envMapping[name], val); err != nil {
			return fmt.Errorf("applying %s: %w", name, err)
		}
	}
	return nil
}
