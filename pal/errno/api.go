// Package errno exposes the last platform error code to the guest.
package errno

import (
	"github.com/flibitijibibo/corefx/pal"
	v1 "github.com/flibitijibibo/corefx/pal/errno/v1"
)

// Module returns a configured corefx:native/errno module option.
func Module(version string) pal.ModuleOption {
	return func(h *pal.Host) {
		switch version {
		case "1.0.0":
			h.AddImplementation(v1.New())
		}
	}
}
