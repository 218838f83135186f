package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("JUHANIFY_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDirHonorsHomeOverride(t *testing.T) {
	dir := setupHome(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestCurrentDefaults(t *testing.T) {
	setupHome(t)
	Load()

	s := Current()
	if s.PackageManager != "npm" {
		t.Errorf("PackageManager = %q, want npm", s.PackageManager)
	}
	if s.VCS != "git" {
		t.Errorf("VCS = %q, want git", s.VCS)
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", s.LogLevel)
	}
	if s.DefaultTemplate != "" {
		t.Errorf("DefaultTemplate = %q, want empty", s.DefaultTemplate)
	}
}

func TestSetPersistsAndReloads(t *testing.T) {
	dir := setupHome(t)
	Load()

	if err := Set(KeyPackageManager, "pnpm"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if !strings.Contains(string(data), "package_manager: pnpm") {
		t.Errorf("config file missing key, got:\n%s", data)
	}

	viper.Reset()
	Load()
	if got := Current().PackageManager; got != "pnpm" {
		t.Errorf("PackageManager after reload = %q, want pnpm", got)
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	setupHome(t)
	Load()

	if err := Set("colour", "blue"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	setupHome(t)
	t.Setenv("JUHANIFY_VCS", "/opt/bin/git")
	Load()

	if got := Current().VCS; got != "/opt/bin/git" {
		t.Errorf("VCS = %q, want env override", got)
	}
}
