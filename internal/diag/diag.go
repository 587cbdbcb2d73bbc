// Package diag provides structured-logging diagnostics around engine
// invocation. It is used only by the CLI, never by the core engine: the
// engine returns typed faults and nothing else, with no logging
// dependency of its own.
package diag

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ConsciousCode/cs454-warmup/internal/vm"
)

// NewLogger builds a console logger at the given level ("debug", "info",
// "warn", "error"; unrecognized levels fall back to "info").
func NewLogger(level string) *zap.Logger {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(os.Stderr), lvl)
	return zap.New(core)
}

// Snapshot is the read-only post-mortem view the CLI assembles from an
// Engine after a run ends, kept separate from package vm so the core
// never needs to import a logging library to produce one.
type Snapshot struct {
	PC         uint32
	Registers  [8]uint32
	LiveArrays int
	FreeArrays int
}

// FromEngine captures a Snapshot. It only reads engine state; it never
// mutates it and the engine never consults it.
func FromEngine(eng *vm.Engine) Snapshot {
	return Snapshot{
		PC:         eng.PC(),
		Registers:  eng.Registers(),
		LiveArrays: eng.LiveArrays(),
		FreeArrays: eng.FreeArrays(),
	}
}

// Dump logs one structured line describing a fault that ended a run: the
// kind and PC, plus the full register file and array-table occupancy when
// the logger is at debug level. The CLI never calls this on a clean HLT.
func Dump(log *zap.Logger, snap Snapshot, err error) {
	kind := "unknown"
	if f, ok := err.(*vm.Fault); ok {
		kind = f.Kind.String()
	}

	fields := []zap.Field{
		zap.String("kind", kind),
		zap.Uint32("pc", snap.PC),
	}
	if ce := log.Check(zapcore.DebugLevel, "fault"); ce != nil {
		fields = append(fields,
			zap.Uint32s("registers", snap.Registers[:]),
			zap.Int("live_arrays", snap.LiveArrays),
			zap.Int("free_arrays", snap.FreeArrays),
		)
	}
	log.Error("fault", fields...)
}
