package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLoggerSharedInstance(t *testing.T) {
	InitLogger()

	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil after InitLogger")
	}
	if l.Level != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", l.Level)
	}
	if l.Out != os.Stderr {
		t.Error("logger must write to stderr")
	}
	if Logger() != l {
		t.Error("Logger() must return the shared instance")
	}
}

func TestLoggerSelfInitializes(t *testing.T) {
	logger = nil
	if Logger() == nil {
		t.Fatal("Logger() must self-initialize when pre-run has not fired")
	}
}
