//go:build unix

package reforge

import (
	"context"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestSignalTrigger_EmptySetFailsInstall(t *testing.T) {
	trigger := NewSignalTrigger()

	var f Flag
	if err := trigger.Start(context.Background(), &f); err == nil {
		t.Error("expected installation failure for empty signal set")
	}
}

func TestSignalTrigger_MarksOnSignal(t *testing.T) {
	trigger := NewSignalTrigger(unix.SIGUSR1)

	var f Flag
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := trigger.Start(ctx, &f); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := unix.Kill(os.Getpid(), unix.SIGUSR1); err != nil {
		t.Fatalf("failed to signal self: %v", err)
	}

	waitForMark(t, &f, 2*time.Second)
}

func TestSignalTrigger_MarksOnRepeatedSignals(t *testing.T) {
	trigger := NewSignalTrigger(unix.SIGUSR2)

	var f Flag
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := trigger.Start(ctx, &f); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := unix.Kill(os.Getpid(), unix.SIGUSR2); err != nil {
			t.Fatalf("failed to signal self: %v", err)
		}
		waitForMark(t, &f, 2*time.Second)
	}
}

func TestDefaultSignals_Unix(t *testing.T) {
	signals := defaultSignals()
	if len(signals) != 1 || signals[0] != unix.SIGUSR1 {
		t.Errorf("expected SIGUSR1 default, got %v", signals)
	}
}

func TestLookupSignal(t *testing.T) {
	sig, ok := lookupSignal("SIGUSR1")
	if !ok || sig != unix.SIGUSR1 {
		t.Errorf("expected SIGUSR1, got %v (ok=%v)", sig, ok)
	}

	if _, ok := lookupSignal("SIGNOPE"); ok {
		t.Error("expected lookup failure for unknown signal name")
	}
}
