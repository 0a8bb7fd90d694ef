package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lendctl", "config.yml")
}

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "lendctl")
}

// Load reads the config from disk (or env). Returns a config of defaults if
// no file exists yet — the init command creates it.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("library.data_dir", defaultDataDir())
	v.SetDefault("library.books_file", "database.csv")
	v.SetDefault("library.loans_file", "logfile.csv")
	v.SetDefault("library.loan_period_days", 60)
	v.SetDefault("library.member_id_length", 4)
	v.SetDefault("recommend.fallback_genres", []string{
		"Action", "Crime", "Fantasy", "Mystery", "Romance",
		"Sci-Fi", "Tragedy", "Drama", "Adventure", "Horror",
	})

	v.SetEnvPrefix("LENDCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("LENDCTL_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		// Not finding the config file is fine — the init command creates it.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Library.LoanPeriodDays <= 0 {
		return nil, fmt.Errorf("library.loan_period_days must be positive, got %d", cfg.Library.LoanPeriodDays)
	}
	if cfg.Library.MemberIDLength <= 0 {
		return nil, fmt.Errorf("library.member_id_length must be positive, got %d", cfg.Library.MemberIDLength)
	}

	return &cfg, nil
}

// Save writes the config to the given path, or the default path if empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
