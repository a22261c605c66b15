package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLevelControlsDebugOutput(t *testing.T) {
	Init("test-service", false)

	if Logger.Debug().Enabled() {
		t.Error("debug enabled before SetLevel, default should be info")
	}

	SetLevel("debug")
	if !Logger.Debug().Enabled() {
		t.Error("SetLevel(debug) did not enable debug events")
	}

	SetLevel("info")
	if Logger.Debug().Enabled() {
		t.Error("SetLevel(info) did not disable debug events")
	}
}

func TestSetLevelFallsBackToInfo(t *testing.T) {
	Init("test-service", false)

	SetLevel("not-a-level")

	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("GlobalLevel() = %v, want info", got)
	}
}
