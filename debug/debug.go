// Package debug gates internal consistency checks behind the "debug" build
// tag. Release builds compile the checks away.
package debug

// Assert panics if condition is false and the debug build tag is set. It is
// meant for internal invariants, not for validating caller input.
func Assert(condition bool, message ...string) {
	if !Debug {
		return
	}
	if !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
