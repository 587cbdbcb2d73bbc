package main

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Operand is one instruction argument: a bare decimal or 0x-prefixed hex
// literal, a quoted char literal, or a forward/backward @label reference
// resolved in the assembler's second pass.
type Operand struct {
	Label *string `  "@" @Ident`
	Char  *string `| @Char`
	Num   *string `| @(Number | Hex)`
}

// Instruction is a mnemonic followed by its (possibly empty,
// comma-separated) operand list.
type Instruction struct {
	Mnemonic string     `@Ident`
	Operands []*Operand `(@@ (","? @@)*)?`
}

// LabelDecl binds the current word offset to a name: `label @name`.
type LabelDecl struct {
	Name string `"label" "@" @Ident`
}

// StringLit packs a quoted string into big-endian, NUL-padded words, four
// characters each.
type StringLit struct {
	Value string `@String`
}

// RawWord embeds a literal 32-bit word, bypassing the mnemonic grammar
// entirely (the escape hatch the original prototype's assembler used for
// anything opasm's grammar couldn't express).
type RawWord struct {
	Value string `@Hex`
}

// Line is one line of Universal Machine assembly: a label declaration, an
// inline string, a raw word, or an instruction. Blank and comment-only
// lines never reach the parser (the driver filters them first).
type Line struct {
	Label *LabelDecl   `  @@`
	Str   *StringLit   `| @@`
	Raw   *RawWord     `| @@`
	Instr *Instruction `| @@`
}

var umsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Hex", Pattern: `0[xX][0-9a-fA-F]+`},
	{Name: "Number", Pattern: `-?[0-9]+`},
	{Name: "Char", Pattern: `'(\\.|[^'\\])'`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "LabelKW", Pattern: `label\b`},
	{Name: "At", Pattern: `@`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
})

// lineParser parses a single non-blank, comment-stripped line of UMS
// source into a Line AST node.
var lineParser = participle.MustBuild[Line](
	participle.Lexer(umsLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(3),
)
