package vm

import "testing"

func TestDecodeStandard(t *testing.T) {
	// opcode 3 (ADD), A=5, B=2, C=1 -> bits 6-8=5, 3-5=2, 0-2=1
	w := Word(3)<<28 | 5<<6 | 2<<3 | 1
	if got := opcode(w); got != 3 {
		t.Errorf("opcode = %d, want 3", got)
	}
	if got := regA(w); got != 5 {
		t.Errorf("regA = %d, want 5", got)
	}
	if got := regB(w); got != 2 {
		t.Errorf("regB = %d, want 2", got)
	}
	if got := regC(w); got != 1 {
		t.Errorf("regC = %d, want 1", got)
	}
}

func TestDecodeImmediate(t *testing.T) {
	w := Word(13)<<28 | 4<<25 | 0x41
	if got := opcode(w); got != 13 {
		t.Errorf("opcode = %d, want 13", got)
	}
	if got := regImm(w); got != 4 {
		t.Errorf("regImm = %d, want 4", got)
	}
	if got := immediate(w); got != 0x41 {
		t.Errorf("immediate = %#x, want 0x41", got)
	}
}

func TestImmediateMax(t *testing.T) {
	w := Word(13)<<28 | maxImmediateWord()
	if got := immediate(w); got != 1<<25-1 {
		t.Errorf("immediate = %#x, want %#x", got, 1<<25-1)
	}
	// bits 25-31 of the decoded immediate must be zero, per the boundary
	// behavior in the spec: LDI's immediate never sets them.
	if got := immediate(w) &^ (1<<25 - 1); got != 0 {
		t.Errorf("immediate leaked high bits: %#x", got)
	}
}

func maxImmediateWord() Word { return 1<<25 - 1 }

func TestReservedBitsIgnored(t *testing.T) {
	// Standard encoding reserves bits 9-27; decode must ignore whatever
	// garbage sits there.
	base := Word(3)<<28 | 5<<6 | 2<<3 | 1
	garbage := base | 0x0FFF_FE00 // bits 9-27 set
	if opcode(garbage) != opcode(base) || regA(garbage) != regA(base) ||
		regB(garbage) != regB(base) || regC(garbage) != regC(base) {
		t.Errorf("decode affected by reserved bits: base=%#x garbage=%#x", base, garbage)
	}
}
