package eventlog

// Log is an append-only sequence of events. Each engine run owns exactly one
// Log instance; it is never a package-level variable, so two concurrent
// engine runs never share or contend on state.
type Log struct {
	events []Event
}

// Append records an event at the end of the log.
func (l *Log) Append(e Event) {
	l.events = append(l.events, e)
}

// Events returns the recorded events in emission order. The returned slice
// is owned by the caller's view only; callers must not mutate it.
func (l *Log) Events() []Event {
	return l.events
}

// Len reports how many events have been recorded.
func (l *Log) Len() int {
	return len(l.events)
}
