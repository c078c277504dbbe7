package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// Config is the full application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Chat     ChatConfig     `mapstructure:"chat"`
}

type AppConfig struct {
	Port           int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	LogLevel       string   `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"min=1"`
}

// DatabaseConfig is optional: an empty URL disables the store entirely and
// the connectivity probe reports it as absent.
type DatabaseConfig struct {
	URL  string `mapstructure:"url"`
	Name string `mapstructure:"name"`
}

type ChatConfig struct {
	ThinkingDelayMS int `mapstructure:"thinking_delay_ms" validate:"min=0"`
}

// ArrayConfigFields are parsed from comma or space separated strings when
// provided through the environment.
var ArrayConfigFields = []string{
	"app.allowed_origins",
}

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"config/config.yaml",
}

func loadDefaults(k *koanf.Koanf) {
	defaults := map[string]interface{}{
		"app.port":               8080,
		"app.log_level":          "info",
		"app.allowed_origins":    []string{"*"},
		"chat.thinking_delay_ms": 400,
	}

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		zap.L().Fatal("Failed to load default configuration", zap.Error(err))
	}
}

func readFileConfig(k *koanf.Koanf) {
	filePath := os.Getenv("CONFIG_FILE_PATH")
	if filePath == "" {
		for _, path := range ConfigFileSearchPaths {
			if _, err := os.Stat(path); err == nil {
				filePath = path
				break
			}
		}
	}

	if filePath == "" {
		return
	}

	if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
		zap.L().Fatal("Fatal error loading config file", zap.String("path", filePath), zap.Error(err))
	}
	zap.L().Info("Read configuration from file", zap.String("path", filePath))
}

func parseArrayFields(k *koanf.Koanf) {
	for _, field := range ArrayConfigFields {
		stringVal := k.String(field)
		if stringVal == "" {
			continue
		}

		stringVal = strings.Trim(stringVal, "[]")
		var items []string
		if strings.Contains(stringVal, ",") {
			items = strings.Split(stringVal, ",")
		} else {
			items = strings.Fields(stringVal)
		}
		for i, item := range items {
			items[i] = strings.TrimSpace(item)
		}

		if err := k.Set(field, items); err != nil {
			zap.L().Error("Error parsing array field", zap.String("field", field), zap.Error(err))
		}
	}
}

func readEnvVars(k *koanf.Koanf) {
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil)
	if err != nil {
		zap.L().Warn("Error loading environment variables", zap.Error(err))
	}

	parseArrayFields(k)
}

// Read layers configuration from defaults, an optional YAML file and the
// environment (double-underscore nesting, e.g. APP__PORT), then validates
// the result. Invalid configuration is fatal.
func Read() Config {
	k := koanf.New(".")

	loadDefaults(k)
	readFileConfig(k)
	readEnvVars(k)

	var config Config
	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "mapstructure"}); err != nil {
		zap.L().Fatal("Unable to decode config into struct", zap.Error(err))
	}

	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		zap.L().Fatal("Invalid configuration", zap.Error(err))
	}

	return config
}
