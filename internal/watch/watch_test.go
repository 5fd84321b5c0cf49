package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"alnview/internal/logging"
	"alnview/internal/seq"
)

func writeFasta(t *testing.T, path, s1, s2 string) {
	t.Helper()
	content := ">a\n" + s1 + "\n>b\n" + s2 + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fasta: %v", err)
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestFileWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.fasta")
	writeFasta(t, path, "ACDE", "ACDF")

	var reloads atomic.Int32
	var last atomic.Value

	fw, err := New(path, 30*time.Millisecond, logging.NopLogger(),
		func(p seq.Pair) {
			last.Store(p)
			reloads.Add(1)
		}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	fw.Start()
	defer fw.Stop()

	writeFasta(t, path, "ACDE", "ACDE")

	if !waitFor(t, 2*time.Second, func() bool { return reloads.Load() >= 1 }) {
		t.Fatal("watcher never delivered a reload")
	}

	pair, ok := last.Load().(seq.Pair)
	if !ok {
		t.Fatal("no pair recorded")
	}
	if pair.Seq2 != "ACDE" {
		t.Errorf("reloaded Seq2 = %q, want ACDE", pair.Seq2)
	}
}

func TestFileWatcher_InvalidContentReportsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.fasta")
	writeFasta(t, path, "ACDE", "ACDF")

	var reloads, errs atomic.Int32

	fw, err := New(path, 30*time.Millisecond, logging.NopLogger(),
		func(seq.Pair) { reloads.Add(1) },
		func(error) { errs.Add(1) })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	fw.Start()
	defer fw.Stop()

	// Unequal lengths: parse succeeds, validation fails.
	writeFasta(t, path, "ACDE", "ACD")

	if !waitFor(t, 2*time.Second, func() bool { return errs.Load() >= 1 }) {
		t.Fatal("watcher never reported the validation error")
	}
	if reloads.Load() != 0 {
		t.Errorf("reloads = %d, want 0 for invalid content", reloads.Load())
	}
}

func TestFileWatcher_StopCancelsPendingReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.fasta")
	writeFasta(t, path, "ACDE", "ACDF")

	var reloads atomic.Int32

	fw, err := New(path, 200*time.Millisecond, logging.NopLogger(),
		func(seq.Pair) { reloads.Add(1) }, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	fw.Start()

	writeFasta(t, path, "ACDE", "ACDE")
	// Give the event time to reach the debouncer, then tear down before
	// the delay elapses.
	time.Sleep(50 * time.Millisecond)
	fw.Stop()

	time.Sleep(300 * time.Millisecond)
	if reloads.Load() != 0 {
		t.Errorf("reloads = %d, want 0 after Stop", reloads.Load())
	}
}

func TestFileWatcher_NoCallbackAfterStop(t *testing.T) {
	// Stress the teardown ordering: an event received by the loop just
	// before Stop must not re-arm the debouncer behind the cancel. A tiny
	// delay maximizes the chance of a timer firing late.
	for i := 0; i < 100; i++ {
		dir := t.TempDir()
		path := filepath.Join(dir, "pair.fasta")
		writeFasta(t, path, "ACDE", "ACDF")

		var stopped atomic.Bool
		var late atomic.Int32
		record := func() {
			if stopped.Load() {
				late.Add(1)
			}
		}

		fw, err := New(path, time.Microsecond, logging.NopLogger(),
			func(seq.Pair) { record() },
			func(error) { record() })
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		fw.Start()

		writeFasta(t, path, "ACDE", "ACDE")
		fw.Stop()
		stopped.Store(true)

		time.Sleep(time.Millisecond)
		if n := late.Load(); n != 0 {
			t.Fatalf("iteration %d: %d callback(s) fired after Stop returned", i, n)
		}
	}
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "pair.fasta")
	if _, err := New(missing, time.Millisecond, logging.NopLogger(), nil, nil); err == nil {
		t.Error("expected error for a missing directory")
	}
}
