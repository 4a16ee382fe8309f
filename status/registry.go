// Package status collects the run counters printed to the log on exit.
package status

import (
	"fmt"
	"strings"
)

// Registry is the metrics facade shared by the simulation components
// Components cache counter pointers at construction; tick code writes the atomics directly
type Registry struct {
	Ints *Counters
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{Ints: &Counters{}}
}

// String renders every counter as key=value in key order
func (r *Registry) String() string {
	var b strings.Builder
	r.Ints.Range(func(k string, v int64) {
		fmt.Fprintf(&b, "%s=%d ", k, v)
	})
	return strings.TrimSpace(b.String())
}
