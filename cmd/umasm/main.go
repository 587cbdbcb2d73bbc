// Command umasm assembles and disassembles the line-oriented mnemonic
// syntax (UMS) the original prototype used to author Universal Machine
// programs. It is a companion tool, not part of the core: the engine only
// ever consumes the binary word format UMS compiles to.
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/ConsciousCode/cs454-warmup/internal/loader"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "asm":
		if len(os.Args) != 4 {
			usage()
			os.Exit(2)
		}
		err = runAsm(os.Args[2], os.Args[3])
	case "dis":
		if len(os.Args) != 3 {
			usage()
			os.Exit(2)
		}
		err = runDis(os.Args[2])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s asm <in.ums> <out.bin>\n       %s dis <in.bin>\n", os.Args[0], os.Args[0])
}

func runAsm(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	words, err := Assemble(in)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	for _, word := range words {
		if err := binary.Write(bw, binary.BigEndian, word); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func runDis(inPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	words, err := loader.Load(in)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	if err := Disassemble(out, words); err != nil {
		return err
	}
	return out.Flush()
}
