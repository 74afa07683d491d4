// Package pal hosts the native platform-abstraction modules exposed to a
// managed guest runtime through wazero host modules.
package pal

import (
	"context"
	"sync/atomic"

	"github.com/tetratelabs/wazero"

	"github.com/flibitijibibo/corefx/internal/portability"
)

// Implementation is the interface every PAL module implements.
type Implementation interface {
	// Name returns the module name, e.g. "corefx:native/time".
	Name() string
	// Versions returns the surface versions this implementation serves.
	Versions() []string
	// Instantiate exports the module's functions into the wazero runtime.
	Instantiate(context.Context, *Host, wazero.HostModuleBuilder) error
}

// Host is the container for all PAL implementations. It carries the
// process-wide collaborators the modules share: the last-error slot the
// guest reads through the errno module, and the portability resolver
// consulted on "not found".
type Host struct {
	portability *portability.Resolver
	lastError   atomic.Int32

	implementations []Implementation
}

// ModuleOption configures a Host.
type ModuleOption func(*Host)

// WithPortability enables the legacy case/drive-insensitive path lookup
// with the given behaviors. Without this option "not found" is final.
func WithPortability(opts portability.Options) ModuleOption {
	return func(h *Host) {
		h.portability = portability.NewResolver(opts)
	}
}

// NewHost creates a Host and applies the given module options.
func NewHost(opts ...ModuleOption) *Host {
	h := &Host{
		portability: portability.NewResolver(portability.Options{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AddImplementation registers an implementation for instantiation.
func (h *Host) AddImplementation(impl Implementation) {
	h.implementations = append(h.implementations, impl)
}

// Instantiate exports every configured module, once per served version,
// into the wazero runtime.
func (h *Host) Instantiate(ctx context.Context, r wazero.Runtime) error {
	for _, impl := range h.implementations {
		for _, version := range impl.Versions() {
			moduleName := impl.Name() + "@" + version
			builder := r.NewHostModuleBuilder(moduleName)
			if err := impl.Instantiate(ctx, h, builder); err != nil {
				return err
			}

			if _, err := builder.Instantiate(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// Portability returns the configured path resolver.
func (h *Host) Portability() *portability.Resolver {
	return h.portability
}

// SetLastError records the platform error code of the most recent failed
// call so the guest can fetch it out of band.
func (h *Host) SetLastError(code int32) {
	h.lastError.Store(code)
}

// LastError returns the most recently recorded platform error code.
func (h *Host) LastError() int32 {
	return h.lastError.Load()
}
