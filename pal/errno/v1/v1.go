package v1

import (
	"context"

	"github.com/tetratelabs/wazero"

	"github.com/flibitijibibo/corefx/internal/interop"
	"github.com/flibitijibibo/corefx/pal"
)

// nativeErrno serves the out-of-band error channel: calls that return -1
// leave their platform error code in the host's last-error slot, and the
// guest reads it back through this module.
type nativeErrno struct{}

func New() pal.Implementation {
	return &nativeErrno{}
}

func (i *nativeErrno) Name() string { return "corefx:native/errno" }
func (i *nativeErrno) Versions() []string {
	return []string{"1.0.0"}
}

func (i *nativeErrno) Instantiate(_ context.Context, h *pal.Host, builder wazero.HostModuleBuilder) error {
	handler := &errnoImpl{host: h}
	exporter := interop.NewExporter(builder)
	exporter.Export("get-last-error", handler.GetLastError)
	return nil
}

type errnoImpl struct {
	host *pal.Host
}

// GetLastError returns the platform error code recorded by the most
// recent failed PAL call.
func (i *errnoImpl) GetLastError(_ context.Context) int32 {
	return i.host.LastError()
}
