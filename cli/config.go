package cli

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lukehollenback/bittrex/constants"
	"github.com/lukehollenback/bittrex/exchange/bittrex"
	"github.com/lukehollenback/bittrex/logger"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyAPIKey    = "api_key"
	keyAPISecret = "api_secret"
	keyHost      = "host"
	keyTimeout   = "timeout"
	keyLogLevel  = "log_level"
	keyLogFile   = "log_file"
	keyNoColor   = "no_color"
)

//
// Config is everything the CLI needs to build a client. Values come from (lowest precedence first)
// defaults, the config file, a .env file, the environment, and flags.
//
type Config struct {
	APIKey    string        `mapstructure:"api_key"`
	APISecret string        `mapstructure:"api_secret"`
	Host      string        `mapstructure:"host"`
	Timeout   time.Duration `mapstructure:"timeout"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFile   string        `mapstructure:"log_file"`
	NoColor   bool          `mapstructure:"no_color"`
}

func (o Config) loggerConfig() logger.Config {
	return logger.Config{
		Level:      o.LogLevel,
		OutputFile: o.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "path to a YAML config file (default ./bittrex.yaml if present)")
	flags.String("api-key", "", "API key (env "+constants.EnvPrefix+"_API_KEY)")
	flags.String("api-secret", "", "API secret (env "+constants.EnvPrefix+"_API_SECRET)")
	flags.String("host", bittrex.DefaultHost, "scheme and host of the exchange API")
	flags.Duration("timeout", 30*time.Second, "deadline for each command; 0 disables it")
	flags.String("log-level", "warn", "debug, info, warn, or error")
	flags.String("log-file", "", "also write logs to this (rotated) file")
	flags.Bool("no-color", false, "disable colored output")
}

//
// loadConfig resolves the configuration for a single invocation.
//
func loadConfig(flags *pflag.FlagSet) (Config, error) {
	var cfg Config

	//
	// Pull a .env file into the environment if there is one. Variables that are already set win.
	//
	if err := godotenv.Load(constants.DotEnvFile); err != nil && !os.IsNotExist(err) {
		return cfg, errors.Wrap(err, "failed to load "+constants.DotEnvFile)
	}

	v := viper.New()

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	//
	// Bind every flag to its config key so that explicitly set flags take precedence.
	//
	bindings := map[string]string{
		keyAPIKey:    "api-key",
		keyAPISecret: "api-secret",
		keyHost:      "host",
		keyTimeout:   "timeout",
		keyLogLevel:  "log-level",
		keyLogFile:   "log-file",
		keyNoColor:   "no-color",
	}

	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return cfg, errors.Wrapf(err, "failed to bind flag --%s", flag)
		}
	}

	//
	// Read the config file. An explicitly named file must exist; the default one is optional.
	//
	path, _ := flags.GetString("config")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(constants.DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "failed to read config file")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to decode configuration")
	}

	return cfg, nil
}
