//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // JUHANIFY_HOME, holds config.yaml
	BinDir  string // stub git and package managers, first on PATH
	WorkDir string // process working directory; projects are created here
	CallLog string // every stub appends "<program> <args>" here
}

// setupTestEnv creates isolated temp directories, points config and PATH at
// them, and changes into a fresh working directory. Everything is restored
// after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub executables require a POSIX shell")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.CallLog = filepath.Join(env.BinDir, "calls.log")

	t.Setenv("JUHANIFY_HOME", env.HomeDir)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Chdir(env.WorkDir)

	viper.Reset()
	t.Cleanup(viper.Reset)

	for _, name := range []string{"git", "npm", "yarn", "pnpm"} {
		env.stub(t, name, "exit 0")
	}
	return env
}

// stub installs an executable that logs its invocation and then runs body.
func (env *testEnv) stub(t *testing.T, name, body string) {
	t.Helper()
	script := "#!/bin/sh\necho \"" + name + " $*\" >> " + env.CallLog + "\n" + body + "\n"
	writeFile(t, filepath.Join(env.BinDir, name), script)
	if err := os.Chmod(filepath.Join(env.BinDir, name), 0755); err != nil {
		t.Fatalf("chmod %s: %v", name, err)
	}
}

// calls returns the logged stub invocations in order.
func (env *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(env.CallLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertCalls fails unless the stubs were invoked exactly as want.
func assertCalls(t *testing.T, env *testEnv, want ...string) {
	t.Helper()
	got := env.calls(t)
	if len(got) != len(want) {
		t.Fatalf("calls = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}
