// Package contract contains the fatal assertions used by the ghost replay.
//
// A Violation signals a programming error (for example a desynchronized
// cursor and engine). It is raised with panic and is not meant to be recovered
// in production code.
package contract

import (
	"fmt"

	"github.com/mpapenbr/ghostreplay/log"
)

type Violation struct {
	Msg string
}

func (v Violation) Error() string {
	return "contract violation: " + v.Msg
}

// Fail logs the violation and panics with a Violation value
func Fail(format string, args ...any) {
	v := Violation{Msg: fmt.Sprintf(format, args...)}
	log.Error("Contract violated", log.String("msg", v.Msg))
	panic(v)
}

// Assert calls Fail if cond is false
func Assert(cond bool, format string, args ...any) {
	if !cond {
		Fail(format, args...)
	}
}
