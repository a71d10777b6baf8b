// Package assert raises fatal invariant violations.
//
// A violation indicates a logic bug in generation. It is raised as a panic
// carrying a *Violation so that the process entry point can log the failed
// condition with its source location and terminate.
package assert

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// Violation describes a failed invariant
type Violation struct {
	Condition string
	File      string
	Line      int
}

func (v *Violation) Error() string {
	return fmt.Sprintf("Assertion failed: (%s), file %s, line %d.", v.Condition, v.File, v.Line)
}

// That panics with a *Violation when cond is false.
func That(cond bool, condition string) {
	if cond {
		return
	}
	panic(newViolation(condition, 2))
}

// Failf panics with a *Violation unconditionally.
func Failf(format string, args ...any) {
	panic(newViolation(fmt.Sprintf(format, args...), 2))
}

func newViolation(condition string, skip int) *Violation {
	v := &Violation{Condition: condition, File: "unknown"}
	if _, file, line, ok := runtime.Caller(skip); ok {
		v.File = filepath.Base(file)
		v.Line = line
	}
	return v
}

// Recover converts a recovered panic value into a *Violation.
// Any other panic value is re-raised.
func Recover(r any) *Violation {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		var v *Violation
		if errors.As(err, &v) {
			return v
		}
	}
	panic(r)
}
