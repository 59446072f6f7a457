package analyzer

import "fmt"

// Severity classifies a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "note"
	}
}

// Diagnostic is one analysis finding, keyed by file and line.
type Diagnostic struct {
	Severity Severity
	File     string
	Line     int
	Message  string
}

// Sink accumulates diagnostics monotonically for one analysis run. It is
// exclusively owned by the running Engine during Pass 2; nothing removes or
// reorders entries once appended.
type Sink struct {
	file        string
	diagnostics []Diagnostic
}

func NewSink(file string) *Sink {
	return &Sink{file: file}
}

func (s *Sink) Errorf(line int, format string, args ...any) {
	s.add(Error, line, format, args...)
}

func (s *Sink) Warningf(line int, format string, args ...any) {
	s.add(Warning, line, format, args...)
}

func (s *Sink) Notef(line int, format string, args ...any) {
	s.add(Note, line, format, args...)
}

func (s *Sink) add(severity Severity, line int, format string, args ...any) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Severity: severity,
		File:     s.file,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (s *Sink) File() string { return s.file }

func (s *Sink) Diagnostics() []Diagnostic { return s.diagnostics }
