// Package time wires the native time module into a PAL host.
package time

import (
	"github.com/flibitijibibo/corefx/pal"
	v1 "github.com/flibitijibibo/corefx/pal/time/v1"
)

// Module returns a configured corefx:native/time module option.
func Module(version string) pal.ModuleOption {
	return func(h *pal.Host) {
		switch version {
		case "1.0.0":
			h.AddImplementation(v1.New())
		}
	}
}
