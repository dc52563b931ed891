package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestOptionsFromEnv(t *testing.T) {
	tests := []struct {
		level, prefix string
		want          Options
	}{
		{"debug", "", Options{Level: log.DebugLevel, Prefix: DefaultPrefix}},
		{"warn", "refl", Options{Level: log.WarnLevel, Prefix: "refl"}},
		{"error", "", Options{Level: log.ErrorLevel, Prefix: DefaultPrefix}},
		{"", "", Options{Level: log.InfoLevel, Prefix: DefaultPrefix}},
		{"verbose", "", Options{Level: log.InfoLevel, Prefix: DefaultPrefix}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Setenv(EnvLevel, tt.level)
			t.Setenv(EnvPrefix, tt.prefix)
			t.Setenv(EnvToFile, "")
			if got := OptionsFromEnv(); got != tt.want {
				t.Errorf("OptionsFromEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(&buf, Options{Level: log.WarnLevel, Prefix: "refl"})
	lg.Info("quiet")
	lg.Warn("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info line below warn level: %q", out)
	}
	if !strings.Contains(out, "refl") || !strings.Contains(out, "loud") {
		t.Errorf("output = %q", out)
	}
}

func TestNewWritesFileInDir(t *testing.T) {
	dir := t.TempDir()
	lg := New(Options{Level: log.InfoLevel, Prefix: DefaultPrefix, ToFile: true, Dir: dir})
	if !strings.HasPrefix(lg.Path, dir) {
		t.Fatalf("path = %q, want it under %q", lg.Path, dir)
	}
	lg.Info("to file")
	if err := lg.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	b, err := os.ReadFile(lg.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "to file") {
		t.Errorf("file = %q", b)
	}
}

func TestNewFallsBackToStderr(t *testing.T) {
	lg := New(Options{ToFile: true, Dir: "/nonexistent/shaderrefl"})
	if lg.Path != "" || lg.closer != nil {
		t.Errorf("expected stderr fallback, got path %q", lg.Path)
	}
}

func TestCloseKeepsStandardStreams(t *testing.T) {
	lg := NewWithWriter(os.Stderr, Options{})
	if lg.closer != nil {
		t.Fatal("stderr must not be closed by the logger")
	}
	if err := lg.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatal(err)
	}
	lg = NewWithWriter(f, Options{})
	if err := lg.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := f.Write([]byte("x")); err == nil {
		t.Error("file should be closed")
	}
}

func TestOr(t *testing.T) {
	if Or(nil) == nil {
		t.Fatal("Or(nil) returned nil")
	}
	lg := log.New(&bytes.Buffer{})
	if Or(lg) != lg {
		t.Error("Or should return a non-nil logger unchanged")
	}
}
