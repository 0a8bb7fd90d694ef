package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/lendctl/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library.BooksFile != "database.csv" {
		t.Errorf("books_file = %q", cfg.Library.BooksFile)
	}
	if cfg.Library.LoansFile != "logfile.csv" {
		t.Errorf("loans_file = %q", cfg.Library.LoansFile)
	}
	if cfg.Library.LoanPeriodDays != 60 {
		t.Errorf("loan_period_days = %d", cfg.Library.LoanPeriodDays)
	}
	if cfg.Library.MemberIDLength != 4 {
		t.Errorf("member_id_length = %d", cfg.Library.MemberIDLength)
	}
	if len(cfg.Recommend.FallbackGenres) != 10 {
		t.Errorf("fallback_genres has %d entries", len(cfg.Recommend.FallbackGenres))
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := "library:\n  data_dir: /srv/lib\n  loan_period_days: 30\n  member_id_length: 6\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library.DataDir != "/srv/lib" {
		t.Errorf("data_dir = %q", cfg.Library.DataDir)
	}
	if cfg.Library.LoanPeriodDays != 30 {
		t.Errorf("loan_period_days = %d", cfg.Library.LoanPeriodDays)
	}
	if cfg.BooksPath() != "/srv/lib/database.csv" {
		t.Errorf("BooksPath = %q", cfg.BooksPath())
	}
	if cfg.LoansPath() != "/srv/lib/logfile.csv" {
		t.Errorf("LoansPath = %q", cfg.LoansPath())
	}
}

func TestLoadRejectsInvalidPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := "library:\n  loan_period_days: 0\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for zero loan period")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yml")

	cfg, err := config.Load(filepath.Join(dir, "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Library.DataDir = "/srv/lib"

	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Library.DataDir != "/srv/lib" {
		t.Errorf("data_dir = %q after round trip", got.Library.DataDir)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := config.ExpandHome("~/books"); got != filepath.Join(home, "books") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome left absolute path alone: %q", got)
	}
}
