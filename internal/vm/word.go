// Package vm implements the Universal Machine: a 32-bit word-addressable
// register machine with dynamically allocated arrays and fourteen
// primitive instructions.
package vm

// Word is the machine's universal value type: an unsigned 32-bit integer.
// All arithmetic on it is modulo 2^32, which Go's uint32 gives for free.
type Word = uint32

// immMask isolates LDI's 25-bit immediate field.
const immMask Word = 1<<25 - 1

// opcode extracts the top 4 bits of an instruction word.
func opcode(w Word) Word { return w >> 28 }

// regA extracts the "A" register field (bits 6-8), used by every standard
// instruction that names a destination register.
func regA(w Word) Word { return (w >> 6) & 7 }

// regB extracts the "B" register field (bits 3-5).
func regB(w Word) Word { return (w >> 3) & 7 }

// regC extracts the "C" register field (bits 0-2).
func regC(w Word) Word { return w & 7 }

// regImm extracts LDI's destination register field (bits 25-27). It is
// encoded differently from regA because LDI spends bits 0-24 on its
// immediate operand instead.
func regImm(w Word) Word { return (w >> 25) & 7 }

// immediate extracts LDI's 25-bit unsigned immediate operand (bits 0-24).
func immediate(w Word) Word { return w & immMask }
