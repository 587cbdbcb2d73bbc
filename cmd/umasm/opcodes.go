package main

import "github.com/ConsciousCode/cs454-warmup/internal/vm"

// opDef names a mnemonic's opcode and fixed register-operand count. ldi is
// handled separately (its second operand is a 25-bit immediate, not a
// register).
type opDef struct {
	code  vm.Op
	argc  int
}

var mnemonics = map[string]opDef{
	"mov":  {vm.OpMov, 3},
	"lda":  {vm.OpLda, 3},
	"sta":  {vm.OpSta, 3},
	"add":  {vm.OpAdd, 3},
	"mul":  {vm.OpMul, 3},
	"div":  {vm.OpDiv, 3},
	"nand": {vm.OpNand, 3},
	"hlt":  {vm.OpHlt, 0},
	"new":  {vm.OpNew, 2},
	"del":  {vm.OpDel, 1},
	"out":  {vm.OpOut, 1},
	"inp":  {vm.OpInp, 1},
	"prg":  {vm.OpPrg, 2},
	"ldi":  {vm.OpLdi, 2},
}

// mnemonicOf inverts mnemonics for disassembly.
var mnemonicOf = func() map[vm.Op]string {
	m := make(map[vm.Op]string, len(mnemonics))
	for name, def := range mnemonics {
		m[def.code] = name
	}
	return m
}()
