package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
	// TimeZone overrides the process local zone used for display, e.g. "Asia/Jakarta".
	TimeZone string `mapstructure:"time_zone"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// Redis holds Redis configuration.
type Redis struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	StreamMaxLen int64  `mapstructure:"stream_max_len"`
}

// Option customises the viper instance before the file is read.
type Option func(v *viper.Viper) error

// WithDefaults registers default values keyed by their dotted config path.
func WithDefaults(defaults map[string]interface{}) Option {
	return func(v *viper.Viper) error {
		for key, value := range defaults {
			v.SetDefault(key, value)
		}
		return nil
	}
}

// WithEnvBinding binds a config key to one or more explicit environment variable names.
func WithEnvBinding(key string, envNames ...string) Option {
	return func(v *viper.Viper) error {
		return v.BindEnv(append([]string{key}, envNames...)...)
	}
}

// Load loads configuration from a file into the given config struct.
// A missing file is not an error: values then come from defaults and the environment.
func Load(path string, config interface{}, opts ...Option) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
	}

	return v.Unmarshal(config)
}
