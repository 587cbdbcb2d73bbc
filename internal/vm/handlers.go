package vm

// Each handler follows the prescribed ordering from §4.5: decode operands,
// check preconditions, then commit the side effect. None mutates state
// before every precondition for that instruction has passed.

// opMov: if R[C] != 0 then R[A] := R[B], else R[A] is unchanged.
func (e *Engine) opMov(w Word) *Fault {
	a, b, c := regA(w), regB(w), regC(w)
	if e.regs[c] != 0 {
		e.regs[a] = e.regs[b]
	}
	return nil
}

// opLda: R[A] := array[R[B]][R[C]].
func (e *Engine) opLda(w Word) *Fault {
	a, b, c := regA(w), regB(w), regC(w)
	val, f := e.arrays.read(e.regs[b], e.regs[c])
	if f != nil {
		return e.stamp(f)
	}
	e.regs[a] = val
	return nil
}

// opSta: array[R[A]][R[B]] := R[C].
func (e *Engine) opSta(w Word) *Fault {
	a, b, c := regA(w), regB(w), regC(w)
	if f := e.arrays.write(e.regs[a], e.regs[b], e.regs[c]); f != nil {
		return e.stamp(f)
	}
	return nil
}

// opAdd: R[A] := (R[B] + R[C]) mod 2^32.
func (e *Engine) opAdd(w Word) *Fault {
	a, b, c := regA(w), regB(w), regC(w)
	e.regs[a] = e.regs[b] + e.regs[c]
	return nil
}

// opMul: R[A] := (R[B] * R[C]) mod 2^32.
func (e *Engine) opMul(w Word) *Fault {
	a, b, c := regA(w), regB(w), regC(w)
	e.regs[a] = e.regs[b] * e.regs[c]
	return nil
}

// opDiv: R[A] := R[B] div R[C]; faults DIV on a zero divisor.
func (e *Engine) opDiv(w Word) *Fault {
	a, b, c := regA(w), regB(w), regC(w)
	divisor := e.regs[c]
	if divisor == 0 {
		return fault(DIV, e.pc)
	}
	e.regs[a] = e.regs[b] / divisor
	return nil
}

// opNand: R[A] := NOT (R[B] AND R[C]).
func (e *Engine) opNand(w Word) *Fault {
	a, b, c := regA(w), regB(w), regC(w)
	e.regs[a] = ^(e.regs[b] & e.regs[c])
	return nil
}

// opHlt: terminate execution cleanly.
func (e *Engine) opHlt(w Word) *Fault {
	e.halted = true
	return nil
}

// opNew: allocate an array of R[C] zero-words; its ID goes in R[B]. A size
// of zero is legal and yields an addressable-by-ID, unreadable array.
func (e *Engine) opNew(w Word) *Fault {
	b, c := regB(w), regC(w)
	id := e.arrays.allocate(e.regs[c])
	e.regs[b] = id
	return nil
}

// opDel: free array R[C]; faults DEL if the ID is 0, out of range, or
// already inactive.
func (e *Engine) opDel(w Word) *Fault {
	c := regC(w)
	if f := e.arrays.freeID(e.regs[c]); f != nil {
		return e.stamp(f)
	}
	return nil
}

// opOut: emit byte R[C]; faults CHR if R[C] exceeds 255.
func (e *Engine) opOut(w Word) *Fault {
	c := regC(w)
	val := e.regs[c]
	if val > 0xff {
		return fault(CHR, e.pc)
	}
	_ = e.out.WriteByte(byte(val))
	return nil
}

// opInp: read a byte into R[C]; on end-of-input R[C] becomes all-ones.
func (e *Engine) opInp(w Word) *Fault {
	c := regC(w)
	b, err := e.in.ReadByte()
	if err != nil {
		// The channel only distinguishes a byte from EOF; any read error
		// is treated as end-of-input.
		e.regs[c] = 0xFFFF_FFFF
		return nil
	}
	e.regs[c] = Word(b)
	return nil
}

// opPrg: if R[B] != 0, replace the program image with a copy of array
// R[B]; then PC := R[C] regardless.
func (e *Engine) opPrg(w Word) *Fault {
	b, c := regB(w), regC(w)
	src := e.regs[b]
	if src != 0 {
		buf, f := e.arrays.snapshot(src)
		if f != nil {
			return e.stamp(f)
		}
		e.prog.replace(buf)
	}
	e.pc = e.regs[c]
	return nil
}

// opLdi: R[imm] := immediate. The destination register field is encoded
// differently from the other instructions (bits 25-27, not bits 6-8).
func (e *Engine) opLdi(w Word) *Fault {
	e.regs[regImm(w)] = immediate(w)
	return nil
}
