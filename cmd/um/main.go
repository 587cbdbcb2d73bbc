// Command um runs a Universal Machine program image read from a file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/ConsciousCode/cs454-warmup/internal/config"
	"github.com/ConsciousCode/cs454-warmup/internal/diag"
	"github.com/ConsciousCode/cs454-warmup/internal/loader"
	"github.com/ConsciousCode/cs454-warmup/internal/vm"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <prog.bin>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(flag.Args()) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(flag.Arg(0)))
}

// run executes one program and returns the process exit status: 0 on a
// clean HLT, a distinct non-zero status per fault kind on a fault, and 1
// if the program cannot be opened or read.
func run(path string) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed opening program:", err)
		return 1
	}
	defer f.Close()

	words, err := loader.Load(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed reading program:", err)
		return 1
	}

	cfg := config.Load()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	eng := vm.New(words)
	eng.SetDispatchMode(cfg.Dispatch)
	eng.SetInput(bufio.NewReader(os.Stdin))
	eng.SetOutput(out)

	runErr := eng.Run()
	out.Flush()

	if cfg.Diag && runErr != nil {
		log := diag.NewLogger(cfg.DiagLevel)
		diag.Dump(log, diag.FromEngine(eng), runErr)
		_ = log.Sync()
	}

	if runErr == nil {
		return 0
	}
	fault, ok := runErr.(*vm.Fault)
	if !ok {
		fmt.Fprintln(os.Stderr, "execution failed:", runErr)
		return 1
	}
	fmt.Fprintln(os.Stderr, fault)
	return exitCode(fault.Kind)
}

// exitCode assigns a distinct non-zero status per fault kind, so scripts
// invoking um can distinguish failure modes without parsing stderr.
func exitCode(k vm.Kind) int {
	switch k {
	case vm.INV:
		return 10
	case vm.ARR:
		return 11
	case vm.DEL:
		return 12
	case vm.DIV:
		return 13
	case vm.PRG:
		return 14
	case vm.CHR:
		return 15
	case vm.EOF:
		return 16
	default:
		return 1
	}
}
