package tui

type unlockDoneMsg struct {
	err error
}

type savedMsg struct {
	err error
}

type removedMsg struct {
	err error
}

type connectDoneMsg struct {
	err error
}

type importDoneMsg struct {
	count int
	err   error
}

type clearStatusMsg struct{}
