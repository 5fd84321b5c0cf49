package tui

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"alnview/internal/logging"
	"alnview/internal/seq"
	"alnview/internal/watch"
)

// App wraps the Bubbletea program.
type App struct {
	program   *tea.Program
	model     Model
	watchPath string
	log       *logging.Logger
}

// New creates a new TUI application. If watchPath is non-empty, the file is
// observed while the program runs and edits redeliver a reloaded pair.
func New(model Model, watchPath string) *App {
	return &App{
		model:     model,
		watchPath: watchPath,
		log:       model.log,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Forward termination signals as a quit message so teardown runs.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	if a.watchPath != "" {
		delay := a.model.opts.Debounce
		if delay <= 0 {
			delay = 150 * time.Millisecond
		}
		fw, err := watch.New(a.watchPath, delay, a.log,
			func(p seq.Pair) {
				a.program.Send(pairReloadedMsg{pair: p})
			},
			func(err error) {
				a.program.Send(reloadFailedMsg{err: err})
			})
		if err != nil {
			return err
		}
		fw.Start()
		defer fw.Stop()
	}

	_, err := a.program.Run()
	return err
}
