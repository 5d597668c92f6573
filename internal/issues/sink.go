package issues

import (
	"fmt"
	"strings"
)

// Subject is anything an issue can be attributed to. Graph nodes implement it.
type Subject interface {
	IssueID() int
	QualifiedName() string
	KindName() string
	Location() string
}

// Issue is a single compile diagnostic.
type Issue struct {
	NodeID   int    `json:"node_id" yaml:"node_id"`
	Node     string `json:"node" yaml:"node"`
	Kind     string `json:"kind" yaml:"kind"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Code     Code   `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
	Cause    error  `json:"-" yaml:"-"`
}

// String renders the issue on one line, e.g.
// `LK-005 web.handle.next (FunctionFlow) at main.hcl:12: flow is not linked`.
func (i Issue) String() string {
	var sb strings.Builder
	sb.WriteString(string(i.Code))
	if i.Node != "" {
		sb.WriteString(" " + i.Node)
	}
	if i.Kind != "" {
		sb.WriteString(" (" + i.Kind + ")")
	}
	if i.Location != "" {
		sb.WriteString(" at " + i.Location)
	}
	sb.WriteString(": " + i.Message)
	if i.Cause != nil {
		sb.WriteString(": " + i.Cause.Error())
	}
	return sb.String()
}

// Observer is notified of every issue as it is added.
type Observer func(Issue)

// Sink is an ordered, append-only issue collection. It is owned by a single
// compilation pass and is not safe for concurrent use.
type Sink struct {
	issues    []Issue
	observers []Observer
}

// NewSink creates an empty sink.
func NewSink(observers ...Observer) *Sink {
	return &Sink{observers: observers}
}

// Observe registers an additional observer.
func (s *Sink) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

// Add records an issue against subject. A nil subject attributes the issue
// to the floor as a whole.
func (s *Sink) Add(subject Subject, code Code, format string, args ...any) {
	s.AddCause(subject, code, nil, format, args...)
}

// AddCause records an issue that was triggered by cause.
func (s *Sink) AddCause(subject Subject, code Code, cause error, format string, args ...any) {
	issue := Issue{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
	if subject != nil {
		issue.NodeID = subject.IssueID()
		issue.Node = subject.QualifiedName()
		issue.Kind = subject.KindName()
		issue.Location = subject.Location()
	}
	s.issues = append(s.issues, issue)
	for _, o := range s.observers {
		o(issue)
	}
}

// Issues returns a copy of all issues in the order they were added.
func (s *Sink) Issues() []Issue {
	return append([]Issue(nil), s.issues...)
}

// Len returns the number of issues.
func (s *Sink) Len() int {
	return len(s.issues)
}

// Empty reports whether no issue has been recorded.
func (s *Sink) Empty() bool {
	return len(s.issues) == 0
}

// ByNode returns the issues attributed to the node with the given id.
func (s *Sink) ByNode(id int) []Issue {
	var out []Issue
	for _, i := range s.issues {
		if i.NodeID == id {
			out = append(out, i)
		}
	}
	return out
}

// ByCode returns the issues carrying code.
func (s *Sink) ByCode(code Code) []Issue {
	var out []Issue
	for _, i := range s.issues {
		if i.Code == code {
			out = append(out, i)
		}
	}
	return out
}

// Err returns nil for an empty sink and an *Error holding a snapshot of all
// issues otherwise.
func (s *Sink) Err() error {
	if s.Empty() {
		return nil
	}
	return &Error{Issues: s.Issues()}
}

// Error aggregates the issues of a failed compilation.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.String()
	}
	return fmt.Sprintf("compilation reported %d issue(s):\n- %s", len(e.Issues), strings.Join(lines, "\n- "))
}
