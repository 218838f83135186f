package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "juhanify" {
		t.Errorf("CLIName() = %q, want %q", got, "juhanify")
	}
	if got := HomeDir(); got != ".juhanify" {
		t.Errorf("HomeDir() = %q, want %q", got, ".juhanify")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"home", "JUHANIFY_HOME"},
		{"package_manager", "JUHANIFY_PACKAGE_MANAGER"},
		{"LOG_LEVEL", "JUHANIFY_LOG_LEVEL"},
	}

	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
