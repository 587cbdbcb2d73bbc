package main

import (
	"fmt"
	"io"

	"github.com/ConsciousCode/cs454-warmup/internal/vm"
)

// Disassemble writes one line per word in words: `mnemonic operands`, or
// for an LDI immediate in the printable ASCII range, that plus a trailing
// comment with the literal character. Words that decode to one of the two
// reserved opcodes print as a bare hex literal with an "invalid" comment,
// round-tripping through Assemble as a RawWord.
func Disassemble(w io.Writer, words []uint32) error {
	for _, word := range words {
		op := vm.Op(word >> 28)
		name, ok := mnemonicOf[op]
		if !ok {
			if _, err := fmt.Fprintf(w, "0x%08x ; invalid opcode\n", word); err != nil {
				return err
			}
			continue
		}

		if op == vm.OpLdi {
			reg := (word >> 25) & 7
			imm := word & (1<<25 - 1)
			if imm >= 0x20 && imm < 0x7f {
				if _, err := fmt.Fprintf(w, "ldi %d, 0x%x ; '%c'\n", reg, imm, rune(imm)); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintf(w, "ldi %d, 0x%x\n", reg, imm); err != nil {
				return err
			}
			continue
		}

		argc := mnemonics[name].argc
		a, b, c := (word>>6)&7, (word>>3)&7, word&7
		regs := []uint32{a, b, c}[3-argc:]
		if _, err := fmt.Fprintf(w, "%s%s\n", name, formatOperands(regs)); err != nil {
			return err
		}
	}
	return nil
}

func formatOperands(regs []uint32) string {
	if len(regs) == 0 {
		return ""
	}
	out := " "
	for i, r := range regs {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", r)
	}
	return out
}
