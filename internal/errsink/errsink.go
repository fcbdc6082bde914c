// Package errsink is the append-only diagnostic record shared by the
// scanner and parser during a single run.
//
// The teacher's diagnostics package keeps a single process-wide error
// list; spec.md's design notes call that out as a defect for an
// embeddable interpreter (it is not thread-safe and leaks across
// embedders). Sink is therefore constructed fresh per Run instead of
// living at package scope.
package errsink

import "fmt"

// Record is a single static diagnostic: the source position it was
// raised at, and a human-readable message.
type Record struct {
	Line    int
	Column  int
	Message string
}

func (r Record) String() string {
	return fmt.Sprintf("%d:%d: %s", r.Line, r.Column, r.Message)
}

// Sink collects Records raised during scanning and parsing.
type Sink struct {
	records []Record
}

// New returns an empty Sink.
func New() *Sink {
	return &Sink{}
}

// Report appends a diagnostic at the given position.
func (s *Sink) Report(line, column int, format string, args ...any) {
	s.records = append(s.records, Record{
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	})
}

// HadError reports whether any diagnostic has been recorded.
func (s *Sink) HadError() bool {
	return len(s.records) > 0
}

// Records returns the recorded diagnostics in the order they were raised.
func (s *Sink) Records() []Record {
	return s.records
}

// Error implements error, joining every recorded diagnostic into a
// single line separated by "; ", so a Sink can be surfaced directly as
// the failure a caller sees when a run does not execute.
func (s *Sink) Error() string {
	if len(s.records) == 0 {
		return ""
	}
	msg := s.records[0].String()
	for _, r := range s.records[1:] {
		msg += "; " + r.String()
	}
	return msg
}
