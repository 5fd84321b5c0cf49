package tui

import "alnview/internal/seq"

// resizeSettledMsg fires when a resize burst has been quiet for the
// debounce delay. The sequence number identifies the burst; stale messages
// from superseded bursts are discarded.
type resizeSettledMsg struct {
	seq int
}

// noticeExpiredMsg dismisses the transient "copied" notice. The sequence
// number lets a re-armed notice outlive the expiry of the one it replaced.
type noticeExpiredMsg struct {
	seq int
}

// pairReloadedMsg delivers a freshly parsed pair from the file watcher.
type pairReloadedMsg struct {
	pair seq.Pair
}

// reloadFailedMsg reports a failed reload; the current pair stays on screen.
type reloadFailedMsg struct {
	err error
}
