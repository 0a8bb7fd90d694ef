package config

import "path/filepath"

// Config is the top-level lendctl configuration.
type Config struct {
	Library   LibraryConfig   `mapstructure:"library" yaml:"library"`
	Recommend RecommendConfig `mapstructure:"recommend" yaml:"recommend"`
}

// LibraryConfig locates the data files and sets circulation policy.
type LibraryConfig struct {
	DataDir        string `mapstructure:"data_dir" yaml:"data_dir"`
	BooksFile      string `mapstructure:"books_file" yaml:"books_file"`
	LoansFile      string `mapstructure:"loans_file" yaml:"loans_file"`
	LoanPeriodDays int    `mapstructure:"loan_period_days" yaml:"loan_period_days"`
	MemberIDLength int    `mapstructure:"member_id_length" yaml:"member_id_length"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	FallbackGenres []string `mapstructure:"fallback_genres" yaml:"fallback_genres"`
}

// BooksPath returns the resolved path of the catalog file.
func (c *Config) BooksPath() string {
	return filepath.Join(ExpandHome(c.Library.DataDir), c.Library.BooksFile)
}

// LoansPath returns the resolved path of the loan ledger file.
func (c *Config) LoansPath() string {
	return filepath.Join(ExpandHome(c.Library.DataDir), c.Library.LoansFile)
}
