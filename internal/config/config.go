package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Paths    PathsConfig  `mapstructure:"paths"`
	Fields   FieldsConfig `mapstructure:"fields"`
	Split    SplitConfig  `mapstructure:"split"`
	Server   ServerConfig `mapstructure:"server"`
	LogLevel string       `mapstructure:"log_level"`
}

type PathsConfig struct {
	InputDir       string `mapstructure:"input_dir"`
	OutputDir      string `mapstructure:"output_dir"`
	TrainOutputDir string `mapstructure:"train_output_dir"`
	TestOutputDir  string `mapstructure:"test_output_dir"`
}

type FieldsConfig struct {
	Ciphertext string `mapstructure:"ciphertext"`
	Plaintext  string `mapstructure:"plaintext"`
	TestPrefix string `mapstructure:"test_prefix"`
	Prefix     string `mapstructure:"prefix"`
}

type SplitConfig struct {
	Mode               string  `mapstructure:"mode"`
	ValidationFraction float64 `mapstructure:"validation_fraction"`
	Seed               int64   `mapstructure:"seed"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			InputDir:       "data/samples",
			OutputDir:      "data/prepared",
			TrainOutputDir: "data/prepared/train",
			TestOutputDir:  "data/prepared/test",
		},
		Fields: FieldsConfig{
			Ciphertext: "ciphertext",
			Plaintext:  "plaintext",
			TestPrefix: "test-cipher-",
			Prefix:     "data",
		},
		Split: SplitConfig{
			Mode:               ModePair,
			ValidationFraction: 0.1,
			Seed:               0,
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			MaxTextBytes:    1 << 20,
			ShutdownTimeout: 30,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("paths-input-dir", defaults.Paths.InputDir, "Directory of per-sample JSON records")
	fs.String("paths-output-dir", defaults.Paths.OutputDir, "Output directory for split-mode aggregates")
	fs.String("paths-train-output-dir", defaults.Paths.TrainOutputDir, "Training output directory for pair mode")
	fs.String("paths-test-output-dir", defaults.Paths.TestOutputDir, "Test output directory for pair mode")
	fs.String("fields-ciphertext", defaults.Fields.Ciphertext, "JSON field holding the ciphertext token string")
	fs.String("fields-plaintext", defaults.Fields.Plaintext, "JSON field holding the plaintext")
	fs.String("fields-test-prefix", defaults.Fields.TestPrefix, "Filename prefix routing samples to the test set")
	fs.String("fields-prefix", defaults.Fields.Prefix, "Basename for pair-mode aggregate artifacts")
	fs.String("split-mode", defaults.Split.Mode, "Pipeline variant (pair|split)")
	fs.Float64("split-validation-fraction", defaults.Split.ValidationFraction, "Share of training samples held out for validation in split mode")
	fs.Int64("split-seed", defaults.Split.Seed, "Seed for the validation shuffle (same seed, same split)")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum request text size for POST /encode")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown drain period in seconds")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("CIPHERPREP")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("cipherprep")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.input_dir", c.Paths.InputDir)
	v.SetDefault("paths.output_dir", c.Paths.OutputDir)
	v.SetDefault("paths.train_output_dir", c.Paths.TrainOutputDir)
	v.SetDefault("paths.test_output_dir", c.Paths.TestOutputDir)
	v.SetDefault("fields.ciphertext", c.Fields.Ciphertext)
	v.SetDefault("fields.plaintext", c.Fields.Plaintext)
	v.SetDefault("fields.test_prefix", c.Fields.TestPrefix)
	v.SetDefault("fields.prefix", c.Fields.Prefix)
	v.SetDefault("split.mode", c.Split.Mode)
	v.SetDefault("split.validation_fraction", c.Split.ValidationFraction)
	v.SetDefault("split.seed", c.Split.Seed)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("paths.input_dir", "paths-input-dir")
	v.RegisterAlias("paths.output_dir", "paths-output-dir")
	v.RegisterAlias("paths.train_output_dir", "paths-train-output-dir")
	v.RegisterAlias("paths.test_output_dir", "paths-test-output-dir")
	v.RegisterAlias("fields.ciphertext", "fields-ciphertext")
	v.RegisterAlias("fields.plaintext", "fields-plaintext")
	v.RegisterAlias("fields.test_prefix", "fields-test-prefix")
	v.RegisterAlias("fields.prefix", "fields-prefix")
	v.RegisterAlias("split.mode", "split-mode")
	v.RegisterAlias("split.validation_fraction", "split-validation-fraction")
	v.RegisterAlias("split.seed", "split-seed")
	v.RegisterAlias("server.listen_addr", "server-listen-addr")
	v.RegisterAlias("server.max_text_bytes", "server-max-text-bytes")
	v.RegisterAlias("server.shutdown_timeout", "server-shutdown-timeout")
	v.RegisterAlias("log_level", "log-level")
}
