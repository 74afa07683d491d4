package v1

import (
	"context"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/flibitijibibo/corefx/internal/clock"
	"github.com/flibitijibibo/corefx/internal/filetimes"
	"github.com/flibitijibibo/corefx/internal/interop"
	"github.com/flibitijibibo/corefx/pal"
)

type nativeTime struct{}

func New() pal.Implementation {
	return &nativeTime{}
}

func (i *nativeTime) Name() string { return "corefx:native/time" }
func (i *nativeTime) Versions() []string {
	return []string{"1.0.0"}
}

func (i *nativeTime) Instantiate(_ context.Context, h *pal.Host, builder wazero.HostModuleBuilder) error {
	// Capability detection runs once per process; every module instance
	// shares the same immutable source so all timestamps come from one
	// primitive.
	src := clock.Default()
	pal.Logger().Debug("selected timestamp source",
		zap.Stringer("kind", src.Kind()),
		zap.Uint64("ticks_per_second", src.TicksPerSecond()))

	handler := newTimeImpl(h, src, filetimes.NewSetter(h.Portability()))
	exporter := interop.NewExporter(builder)
	exporter.Export("get-timestamp-resolution", handler.GetTimestampResolution)
	exporter.Export("get-timestamp", handler.GetTimestamp)
	exporter.Export("get-absolute-time", handler.GetAbsoluteTime)
	exporter.Export("get-timebase-info", handler.GetTimebaseInfo)
	exporter.Export("set-file-times", handler.SetFileTimes)
	exporter.Export("set-file-times-legacy", handler.SetFileTimesLegacy)
	exporter.Export("set-file-times-posix", handler.SetFileTimesPosix)
	return nil
}
