package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type pingMsg struct{}

func TestJobBusIDsAreSequential(t *testing.T) {
	bus := newJobBus(context.Background(), discardLogger())
	if id := bus.nextID(jobKindGenerate); id != "generate-1" {
		t.Fatalf("unexpected id %q", id)
	}
	if id := bus.nextID(jobKindExport); id != "export-2" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestJobBusRunReportsStatus(t *testing.T) {
	bus := newJobBus(context.Background(), discardLogger())
	started := time.Now()

	ok := bus.runCmd("copy-1", jobKindCopy, started, func(context.Context) (tea.Msg, error) {
		return pingMsg{}, nil
	})()
	env, isEnv := ok.(jobResultEnvelope)
	if !isEnv {
		t.Fatalf("expected envelope, got %T", ok)
	}
	if env.Snapshot.Status != jobStatusSucceeded || env.Snapshot.Err != "" {
		t.Fatalf("unexpected snapshot %#v", env.Snapshot)
	}
	if _, isPing := env.Payload.(pingMsg); !isPing {
		t.Fatalf("payload lost: %T", env.Payload)
	}

	failed := bus.runCmd("copy-2", jobKindCopy, started, func(context.Context) (tea.Msg, error) {
		return copyResultMsg{err: errors.New("no clipboard")}, errors.New("no clipboard")
	})().(jobResultEnvelope)
	if failed.Snapshot.Status != jobStatusFailed || failed.Snapshot.Err != "no clipboard" {
		t.Fatalf("unexpected failure snapshot %#v", failed.Snapshot)
	}
	if failed.Snapshot.Duration < 0 {
		t.Fatalf("negative duration")
	}
}

func TestJobBusPassesItsContextToRunners(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	bus := newJobBus(ctx, discardLogger())
	cancel()

	env := bus.runCmd("generate-1", jobKindGenerate, time.Now(), func(ctx context.Context) (tea.Msg, error) {
		return pingMsg{}, ctx.Err()
	})().(jobResultEnvelope)
	if env.Snapshot.Status != jobStatusFailed || env.Snapshot.Err != context.Canceled.Error() {
		t.Fatalf("runner did not observe the cancelled context: %#v", env.Snapshot)
	}
}
