package interop

import (
	"github.com/tetratelabs/wazero"
)

// Exporter provides a chainable API for exporting host functions to a guest.
// The PAL call surface is small and every function already has a
// wazero-compatible signature, so no wrapper generation is needed.
type Exporter struct {
	wazero.HostModuleBuilder
}

// NewExporter creates a new Exporter that wraps a wazero.HostModuleBuilder.
func NewExporter(builder wazero.HostModuleBuilder) *Exporter {
	return &Exporter{HostModuleBuilder: builder}
}

// Export registers goFunc as a host import for the guest module.
// goFunc must be a function whose parameters and results are types
// supported by wazero (context.Context, api.Module, and the numeric types).
func (e *Exporter) Export(funcName string, goFunc any) *Exporter {
	e.NewFunctionBuilder().WithFunc(goFunc).Export(funcName)
	return e
}
