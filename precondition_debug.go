//go:build vectordebug

package vector

const debugAssertions = true

// precondition panics with msg when cond is false.
func precondition(cond bool, msg string) {
	if !cond {
		panic("vector: precondition failed: " + msg)
	}
}
