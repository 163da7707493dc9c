package tui

// clearStatusMsg hides the status line set by the status change with the
// same sequence number.
type clearStatusMsg struct {
	seq int
}

type copiedMsg struct {
	err error
}
