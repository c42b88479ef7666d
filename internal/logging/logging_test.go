package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := New(tt.level, filepath.Join(t.TempDir(), "out.log"))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if !l.Core().Enabled(tt.want) {
				t.Errorf("level %s not enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && l.Core().Enabled(tt.want-1) {
				t.Errorf("level %s enabled below %s", tt.want-1, tt.want)
			}
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.log")
	l, err := New("info", p)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("snapshot saved")
	_ = l.Sync()

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "snapshot saved") {
		t.Errorf("log file = %q, want it to contain the message", b)
	}
	if !strings.Contains(string(b), "stockpile") {
		t.Errorf("log file = %q, want logger name", b)
	}
}
