package configloader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Validator interface {
	Validate() error
}

// Files read by Load, relative to the working directory. Variables for tests.
var (
	configFile = "config.yaml"
	envFile    = ".env"
)

// Load builds a T from defaults, config.yaml, .env and the process environment, later layers winning.
// Environment keys are <PREFIX>_SECTION_KEY, e.g. INVENTORY_LOG_LEVEL for log.level.
func Load[T Validator](appName string, defaults map[string]any) (T, error) {
	var cfg T
	// Create a new Koanf instance
	k := koanf.New(".")
	envPrefix := fmt.Sprintf("%s_", strings.ToUpper(appName))

	// 1. Built-in defaults, the lowest priority
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return cfg, fmt.Errorf("error loading defaults: %w", err)
	}

	// 2. Load configuration from yaml file
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config file '%s': %v", configFile, err)
		}
	}

	// Env keys arrive lower-cased, so map them back onto the camelCase keys known so far.
	known := make(map[string]string)
	for _, key := range k.Keys() {
		known[strings.ToLower(key)] = key
	}
	envTransformer := func(key string) string {
		key = strings.ToLower(key)
		key = strings.TrimPrefix(key, strings.ToLower(envPrefix))
		key = strings.ReplaceAll(key, "_", ".")
		if canonical, ok := known[key]; ok {
			return canonical
		}
		return key
	}

	// 3. Load environment variables from .env file
	if envFileMap, err := godotenv.Read(envFile); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			if !strings.HasPrefix(strings.ToUpper(key), envPrefix) {
				continue
			}
			envMap[envTransformer(key)] = value
		}
		// Load the envMap into Koanf
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			log.Printf("WARN: error loading .env config: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: error reading .env file: %v", err)
	}

	// 4. Load environment variables from the system, the highest priority
	if err := k.Load(env.Provider(envPrefix, ".", envTransformer), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	// 5. Unmarshal the configuration into the Config struct
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// 6. Validate the configuration
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
