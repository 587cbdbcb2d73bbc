// Package config resolves the engine's out-of-band tuning knobs from the
// environment: dispatch discipline and diagnostic toggles. None of this is
// required for correct operation; every knob has a documented default.
package config

import (
	"fmt"
	"strings"

	"gitlab.com/efronlicht/enve"

	"github.com/ConsciousCode/cs454-warmup/internal/vm"
)

// Config holds the resolved environment-driven settings for one run.
type Config struct {
	Dispatch  vm.DispatchMode
	Diag      bool
	DiagLevel string
}

func parseDispatch(s string) (vm.DispatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return vm.DispatchTable, nil
	case "switch":
		return vm.DispatchSwitch, nil
	default:
		return vm.DispatchTable, fmt.Errorf("unknown dispatch mode %q", s)
	}
}

// Load resolves Config from the process environment. Malformed or missing
// values fall back to documented defaults; Load never fails.
func Load() Config {
	return Config{
		Dispatch:  enve.Or(parseDispatch, "UM_DISPATCH", vm.DispatchTable),
		Diag:      enve.BoolOr("UM_DIAG", false),
		DiagLevel: enve.StringOr("UM_DIAG_LEVEL", "info"),
	}
}
