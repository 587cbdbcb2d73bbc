package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ConsciousCode/cs454-warmup/internal/vm"
)

// maxImmediate is the largest value LDI's 25-bit immediate field can hold.
const maxImmediate = 1<<25 - 1

// Assemble reads UMS source and returns the assembled word stream. It is a
// two-pass assembler: labels may be referenced before they're declared,
// so every @label use is recorded as a patch and resolved once the whole
// file has been scanned.
func Assemble(r io.Reader) ([]uint32, error) {
	var words []uint32
	symtab := map[string]int{}
	patches := map[string][]int{} // label -> word indices needing patching

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := stripComment(scanner.Text())
		if strings.TrimSpace(raw) == "" {
			continue
		}

		line, err := lineParser.ParseString("", raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		switch {
		case line.Label != nil:
			if _, dup := symtab[line.Label.Name]; dup {
				return nil, fmt.Errorf("line %d: duplicate label @%s", lineNo, line.Label.Name)
			}
			symtab[line.Label.Name] = len(words)

		case line.Str != nil:
			words = append(words, packString(unquote(line.Str.Value))...)

		case line.Raw != nil:
			v, err := strconv.ParseUint(line.Raw.Value, 0, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			words = append(words, uint32(v))

		case line.Instr != nil:
			word, label, err := encode(line.Instr)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if label != "" {
				patches[label] = append(patches[label], len(words))
			}
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for label, at := range patches {
		addr, ok := symtab[label]
		if !ok {
			return nil, fmt.Errorf("undefined label @%s", label)
		}
		for _, idx := range at {
			words[idx] |= uint32(addr) & maxImmediate
		}
	}

	return words, nil
}

// encode turns one parsed instruction into its word. If the instruction
// has exactly one unresolved @label operand, encode leaves that operand's
// bits zeroed and returns the label name. Once the symbol table is
// complete, the caller ORs the label's address, masked to 25 bits, into
// bits 0-24 of the word (LDI's immediate field), whichever operand the
// label was written in.
func encode(instr *Instruction) (word uint32, label string, err error) {
	def, ok := mnemonics[strings.ToLower(instr.Mnemonic)]
	if !ok {
		return 0, "", fmt.Errorf("unknown mnemonic %q", instr.Mnemonic)
	}
	if len(instr.Operands) != def.argc {
		return 0, "", fmt.Errorf("%s expects %d operand(s), got %d", instr.Mnemonic, def.argc, len(instr.Operands))
	}

	word = uint32(def.code) << 28

	if def.code == vm.OpLdi {
		reg, err := operandValue(instr.Operands[0], &label, 7)
		if err != nil {
			return 0, "", err
		}
		imm, err := operandValue(instr.Operands[1], &label, maxImmediate)
		if err != nil {
			return 0, "", err
		}
		word |= (reg & 7) << 25
		word |= imm & maxImmediate
		return word, label, nil
	}

	// Standard encoding: operands fill A, B, C from most to least
	// significant as they're written, e.g. a 3-operand instruction's
	// first operand is A (bits 6-8), matching §4.1.
	n := len(instr.Operands)
	for i, operand := range instr.Operands {
		v, err := operandValue(operand, &label, 7)
		if err != nil {
			return 0, "", err
		}
		shift := uint(3 * (n - i - 1))
		word |= (v & 7) << shift
	}
	return word, label, nil
}

// operandValue resolves a numeric literal or char literal immediately
// (masked to mask), or records an @label reference via *label and returns
// 0, leaving the caller's patch list to fill in the real value later.
func operandValue(op *Operand, label *string, mask uint32) (uint32, error) {
	switch {
	case op.Num != nil:
		v, err := strconv.ParseInt(*op.Num, 0, 64)
		if err != nil {
			return 0, err
		}
		return uint32(v) & mask, nil
	case op.Char != nil:
		ch := unquoteChar(*op.Char)
		return uint32(ch) & mask, nil
	case op.Label != nil:
		*label = *op.Label
		return 0, nil
	default:
		return 0, fmt.Errorf("empty operand")
	}
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.ReplaceAll(s, `\"`, `"`)
}

func unquoteChar(s string) byte {
	s = strings.TrimPrefix(s, `'`)
	s = strings.TrimSuffix(s, `'`)
	if strings.HasPrefix(s, `\`) && len(s) == 2 {
		return s[1]
	}
	return s[0]
}

// packString packs s into big-endian words, four bytes each, NUL-padding
// the final word so the string always occupies a whole number of words.
func packString(s string) []uint32 {
	b := []byte(s)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4])<<24 | uint32(b[i*4+1])<<16 | uint32(b[i*4+2])<<8 | uint32(b[i*4+3])
	}
	return words
}
