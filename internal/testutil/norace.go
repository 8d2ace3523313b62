//go:build !race

package testutil

// Race is true when the binary was built with -race.
const Race = false
