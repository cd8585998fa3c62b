//go:build linux

package cmd

import (
	"fmt"
	"time"

	perf "github.com/hodgesds/perf-utils"
)

// measureInstructions runs f under a hardware instruction counter. Without access to the
// counter f still runs once and the count is skipped.
func measureInstructions(f func() error) (err error) {
	var ran bool
	pv, perr := perf.CPUInstructions(func() error {
		ran = true
		err = f()
		return err
	})
	if !ran {
		fmt.Printf("instruction counter unavailable: %s\n", perr)
		return f()
	}
	if err != nil {
		return
	}
	if perr != nil {
		fmt.Printf("instruction counter unavailable: %s\n", perr)
		return
	}
	fmt.Printf("CPU instructions: %d in %v\n", pv.Value, time.Duration(pv.TimeRunning))
	return
}
