package main

import (
	"strings"
	"testing"

	"github.com/ConsciousCode/cs454-warmup/internal/vm"
)

func TestAssembleBasicInstruction(t *testing.T) {
	words, err := Assemble(strings.NewReader("add 0, 1, 2\n"))
	if err != nil {
		t.Fatalf("Assemble faulted: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1", len(words))
	}
	want := uint32(vm.OpAdd)<<28 | 0<<6 | 1<<3 | 2
	if words[0] != want {
		t.Errorf("got %#08x, want %#08x", words[0], want)
	}
}

func TestAssembleLdiWithCharLiteral(t *testing.T) {
	words, err := Assemble(strings.NewReader("ldi 0, 'A'\n"))
	if err != nil {
		t.Fatalf("Assemble faulted: %v", err)
	}
	want := uint32(vm.OpLdi)<<28 | 0<<25 | 'A'
	if words[0] != want {
		t.Errorf("got %#08x, want %#08x", words[0], want)
	}
}

func TestAssembleLabelForwardReference(t *testing.T) {
	src := `ldi 1, @done
prg 0, 1
label @done
hlt
`
	words, err := Assemble(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble faulted: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("got %d words, want 3", len(words))
	}
	// @done resolves to word index 2, the hlt.
	if imm := words[0] & maxImmediate; imm != 2 {
		t.Errorf("resolved label = %d, want 2", imm)
	}
}

func TestAssembleUndefinedLabelFails(t *testing.T) {
	_, err := Assemble(strings.NewReader("ldi 1, @nowhere\n"))
	if err == nil {
		t.Errorf("Assemble with undefined label succeeded, want error")
	}
}

func TestAssembleStringLiteral(t *testing.T) {
	words, err := Assemble(strings.NewReader(`"AB"` + "\n"))
	if err != nil {
		t.Fatalf("Assemble faulted: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1", len(words))
	}
	want := uint32('A')<<24 | uint32('B')<<16
	if words[0] != want {
		t.Errorf("got %#08x, want %#08x", words[0], want)
	}
}

func TestAssembleWrongOperandCountFails(t *testing.T) {
	_, err := Assemble(strings.NewReader("add 0, 1\n"))
	if err == nil {
		t.Errorf("Assemble with wrong operand count succeeded, want error")
	}
}

func TestAssembleSkipsCommentsAndBlankLines(t *testing.T) {
	src := "; a comment\n\nhlt ; trailing comment\n"
	words, err := Assemble(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble faulted: %v", err)
	}
	if len(words) != 1 || words[0] != uint32(vm.OpHlt)<<28 {
		t.Errorf("got %#08x, want bare hlt", words)
	}
}
