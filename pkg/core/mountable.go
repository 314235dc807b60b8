package core

import (
	"reflect"

	"github.com/go-drift/anchor/pkg/screen"
)

// Mountable is anything that can occupy a mounting point.
type Mountable interface {
	// RootNode returns the screen node owned by the instance.
	RootNode() *screen.Node
	// IsAttached reports whether the instance currently occupies a mounting point.
	IsAttached() bool
}

// sameInstance compares two Mountables by identity without panicking on
// non-comparable dynamic types.
func sameInstance(a, b Mountable) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
