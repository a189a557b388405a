//go:build !vectordebug

package vector

const debugAssertions = false

func precondition(bool, string) {}
