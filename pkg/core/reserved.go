package core

import "sort"

// reserved holds the property names a component already uses for itself.
var reserved = map[string]struct{}{
	"$attached":    {},
	"$data":        {},
	"$element":     {},
	"$methods":     {},
	"$subscribe":   {},
	"$unsubscribe": {},
	"$update":      {},
}

// IsReserved reports whether name may not be used for a mounting point.
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

// ReservedNames returns the reserved names in sorted order.
func ReservedNames() []string {
	names := make([]string, 0, len(reserved))
	for name := range reserved {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
