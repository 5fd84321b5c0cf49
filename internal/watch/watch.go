// Package watch observes a FASTA input file and redelivers the reloaded
// pair when the file changes, so the alignment view follows edits made in
// another program.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"alnview/internal/debounce"
	"alnview/internal/fasta"
	"alnview/internal/logging"
	"alnview/internal/seq"
)

// FileWatcher watches one FASTA file and invokes onReload with the freshly
// parsed pair after changes settle. Parse and validation failures go to
// onError; the previous pair stays on screen.
type FileWatcher struct {
	path      string
	watcher   *fsnotify.Watcher
	debouncer *debounce.Debouncer
	log       *logging.Logger
	stopCh    chan struct{}
	done      chan struct{} // closed when loop exits
}

// New creates a watcher for path. Change events are coalesced with the
// given debounce delay before the file is re-read. Call Start to begin
// watching and Stop to release the watcher and any pending reload.
func New(path string, delay time.Duration, log *logging.Logger,
	onReload func(seq.Pair), onError func(error)) (*FileWatcher, error) {

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the file's directory (fsnotify works better with directories,
	// and editors often replace the file rather than write in place).
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	fw := &FileWatcher{
		path:    path,
		watcher: watcher,
		log:     log,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	fw.debouncer = debounce.New(delay, func() {
		pair, err := fasta.LoadPair(path)
		if err != nil {
			fw.log.Warn("reload failed", "path", path, "error", err)
			if onError != nil {
				onError(err)
			}
			return
		}
		fw.log.Debug("reloaded pair", "path", path, "length", pair.Len())
		if onReload != nil {
			onReload(pair)
		}
	})

	return fw, nil
}

// Start begins processing filesystem events.
func (fw *FileWatcher) Start() {
	go fw.loop()
}

// Stop releases the watcher, waits for the event loop to exit, and cancels
// any pending debounced reload. The loop must have drained before the cancel:
// an in-flight event could otherwise re-arm the debouncer behind it. No
// callback fires after Stop returns. Stop must follow Start.
func (fw *FileWatcher) Stop() {
	close(fw.stopCh)
	fw.watcher.Close()
	<-fw.done
	fw.debouncer.Cancel()
}

func (fw *FileWatcher) loop() {
	defer close(fw.done)

	target := filepath.Base(fw.path)

	for {
		select {
		case <-fw.stopCh:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fw.debouncer.Call()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Warn("watcher error", "error", err)
		}
	}
}
