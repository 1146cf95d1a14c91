package errs

import (
	"strings"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Multi collects validation failures so that a config or schema check reports all of them at once.
type Multi struct {
	errors []error
}

func NewMulti() *Multi {
	return &Multi{
		errors: []error{},
	}
}

func (m *Multi) Add(err error) {
	if err == nil {
		return
	}

	m.errors = append(m.errors, err)
}

func (m *Multi) Err(format string, args ...interface{}) {
	var e error
	if len(args) == 0 {
		e = errors.New(format)
	} else {
		e = errors.Errorf(format, args...)
	}

	m.Add(e)
}

func (m *Multi) Error() string {
	if !m.HasErrors() {
		return ""
	}

	strErrs := make([]string, len(m.errors))

	for i := range m.errors {
		strErrs[i] = m.errors[i].Error()
	}

	return strings.Join(strErrs, "; ")
}

func (m *Multi) Errors() []error {
	if m == nil {
		return nil
	}

	return append([]error{}, m.errors...)
}

func (m *Multi) StackTrace() errors.StackTrace {
	if !m.HasErrors() {
		return nil
	}
	for _, curErr := range m.errors {
		var errWithStack stackTracer
		if errors.As(curErr, &errWithStack) {
			return errWithStack.StackTrace()
		}
	}

	return errors.StackTrace{}
}

func (m *Multi) HasErrors() bool {
	return m != nil && len(m.errors) > 0
}

// ErrOrNil returns nil for an empty collection so callers can return it as a plain error.
func (m *Multi) ErrOrNil() error {
	if !m.HasErrors() {
		return nil
	}

	return m
}
