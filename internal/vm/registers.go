package vm

// numRegs is the size of the register file.
const numRegs = 8

// registers is the ordered sequence of eight general-purpose registers,
// zero-initialized at construction.
type registers [numRegs]Word
