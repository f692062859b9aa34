package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dailytrack/internal/domain"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	unsetEnv(t, "ADDR", "STORAGE", "SQLITE_PATH", "CONFIG_PATH", "SESSION_TTL", "OIDC_ISSUER", "OIDC_CLIENT_ID")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Storage != StorageSQLite {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if want := filepath.Join(dir, "data", "dailytrack", "dailytrack.db"); cfg.SQLitePath != want {
		t.Errorf("SQLitePath = %q; want %q", cfg.SQLitePath, want)
	}
	if cfg.Units.DefaultWeight != domain.Kilograms || cfg.Units.DefaultHeight != domain.Centimeters {
		t.Errorf("Units = %+v", cfg.Units)
	}
	if cfg.OIDCEnabled() {
		t.Error("OIDC should be disabled by default")
	}
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "none.toml"))

	t.Setenv("STORAGE", "postgres")
	unsetEnv(t, "DATABASE_URL")
	if _, err := Load(); err == nil {
		t.Error("expected error for postgres without DATABASE_URL")
	}

	t.Setenv("STORAGE", "floppy")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown storage")
	}
}

func TestLoadFile_Units(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[units]\nweight = \"lb\"\nheight = \"in\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	u := f.UnitOptions()
	if u.DefaultWeight != domain.Pounds || u.DefaultHeight != domain.Inches {
		t.Errorf("UnitOptions = %+v", u)
	}
}

func TestLoadFile_MissingAndBroken(t *testing.T) {
	dir := t.TempDir()
	f, err := LoadFile(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if u := f.UnitOptions(); u.DefaultWeight != domain.Kilograms {
		t.Errorf("UnitOptions = %+v", u)
	}

	broken := filepath.Join(dir, "broken.toml")
	_ = os.WriteFile(broken, []byte("[units\nweight="), 0o600)
	if _, err := LoadFile(broken); err == nil {
		t.Error("expected decode error")
	}
}
