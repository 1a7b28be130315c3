package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"record-merger/core/database"
	"record-merger/core/logger"
	"record-merger/core/reconcile"
	"record-merger/core/server"
	"record-merger/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration, one section per package.
type Config struct {
	Server    server.Config    `mapstructure:"server"`
	Storage   storage.Config   `mapstructure:"storage"`
	Log       logger.Config    `mapstructure:"log"`
	Database  database.Config  `mapstructure:"database"`
	Reconcile reconcile.Config `mapstructure:"reconcile"`
}

// LoadConfig resolves configuration from, lowest precedence first: the
// `default` struct tags, an optional config.yaml in dir, an optional .env in
// dir and the process environment. The result is validated.
func LoadConfig(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}

	// .env values win over the inherited environment, like a local override file
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	setDefaults(v, reflect.TypeOf(Config{}), "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values that would only fail later, at connect or run time.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains([]string{database.DriverMySQL, database.DriverSQLite}, c.Database.Driver) {
		errs = append(errs, fmt.Errorf("database.driver: unsupported %q", c.Database.Driver))
	}
	if c.Storage.Bucket == "" {
		errs = append(errs, errors.New("storage.bucket: required"))
	}
	if c.Reconcile.FeedObject == "" {
		errs = append(errs, errors.New("reconcile.feed_object: required"))
	}
	if c.Reconcile.Workers < 1 {
		errs = append(errs, fmt.Errorf("reconcile.workers: must be at least 1, got %d", c.Reconcile.Workers))
	}
	return errors.Join(errs...)
}

// setDefaults registers every `mapstructure` key with its `default` tag so
// AutomaticEnv can resolve keys no file mentions.
func setDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		if f.Type.Kind() == reflect.Struct {
			setDefaults(v, f.Type, key)
			continue
		}
		v.SetDefault(key, f.Tag.Get("default"))
	}
}
