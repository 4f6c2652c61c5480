//go:build unix

package reforge

import (
	"testing"

	"github.com/zoobzio/clockz"
	"golang.org/x/sys/unix"
)

func TestLoadSettings_Signals(t *testing.T) {
	path := writeSettings(t, "signals: [SIGUSR1, SIGUSR2]\n")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	signals, err := signalsFromNames(s.Signals)
	if err != nil {
		t.Fatalf("signalsFromNames failed: %v", err)
	}
	if len(signals) != 2 || signals[0] != unix.SIGUSR1 || signals[1] != unix.SIGUSR2 {
		t.Errorf("expected SIGUSR1+SIGUSR2, got %v", signals)
	}
}

func TestReloader_ApplySignalSettings(t *testing.T) {
	builder := &stubBuilder{}
	reloader := newTestReloader(builder, clockz.NewFakeClock()).Apply(Settings{
		Signals: []string{"SIGHUP"},
	})

	if len(reloader.signals) != 1 || reloader.signals[0] != unix.SIGHUP {
		t.Errorf("expected SIGHUP reload signal, got %v", reloader.signals)
	}
}
