package vm

// DispatchMode selects which of the two dispatch disciplines drives the
// main loop. Both run the same per-opcode handlers, so the choice has no
// observable effect beyond speed.
type DispatchMode int

const (
	// DispatchTable indexes a fixed-size array of handlers directly by
	// opcode: Go's nearest equivalent to a label-indexed computed-goto
	// jump table. This is the default, accelerated discipline.
	DispatchTable DispatchMode = iota
	// DispatchSwitch dispatches through a switch statement over the
	// opcode: the portable discipline.
	DispatchSwitch
)

// Engine is the execution core: registers, array table, program image, and
// the byte channels INP/OUT consume. It is single-threaded and
// non-suspending; Run drives it to completion without yielding.
type Engine struct {
	regs     registers
	arrays   *arrayTable
	prog     *image
	pc       Word
	halted   bool
	in       ByteReader
	out      ByteWriter
	dispatch DispatchMode
}

// New constructs an engine with the given initial program, zeroed
// registers, an empty array table (array 0 reserved, unbacked), and
// discard byte channels. Use SetInput/SetOutput/SetDispatchMode before
// Run to customize.
func New(program []Word) *Engine {
	return &Engine{
		arrays: newArrayTable(),
		prog:   newImage(program),
		in:     discardReader{},
		out:    discardWriter{},
	}
}

// SetInput wires the channel INP reads from.
func (e *Engine) SetInput(r ByteReader) { e.in = r }

// SetOutput wires the channel OUT writes to.
func (e *Engine) SetOutput(w ByteWriter) { e.out = w }

// SetDispatchMode selects the dispatch discipline for subsequent Run calls.
func (e *Engine) SetDispatchMode(m DispatchMode) { e.dispatch = m }

// PC returns the current program counter, useful for diagnostics after a
// fault.
func (e *Engine) PC() Word { return e.pc }

// Registers returns a copy of the register file, useful for diagnostics.
func (e *Engine) Registers() [numRegs]Word { return e.regs }

// LiveArrays and FreeArrays report array-table occupancy for diagnostics.
// The engine never consults them itself.
func (e *Engine) LiveArrays() int { return e.arrays.liveCount() }
func (e *Engine) FreeArrays() int { return e.arrays.freeCount() }

// Run executes until HLT (returns nil) or a fault (returns *Fault).
func (e *Engine) Run() error {
	for {
		if e.pc >= e.prog.size() {
			return fault(EOF, e.pc)
		}
		w := e.prog.fetch(e.pc)
		e.pc++

		op := Op(opcode(w))

		var f *Fault
		if e.dispatch == DispatchTable {
			if h := opTable[op]; h != nil {
				f = h(e, w)
			} else {
				f = fault(INV, e.pc)
			}
		} else {
			f = e.dispatchSwitch(op, w)
		}

		if f != nil {
			return f
		}
		if e.halted {
			return nil
		}
	}
}

// dispatchSwitch is the portable dispatch discipline: a dense switch over
// the opcode, calling the exact same handlers as the table discipline.
func (e *Engine) dispatchSwitch(op Op, w Word) *Fault {
	switch op {
	case OpMov:
		return e.opMov(w)
	case OpLda:
		return e.opLda(w)
	case OpSta:
		return e.opSta(w)
	case OpAdd:
		return e.opAdd(w)
	case OpMul:
		return e.opMul(w)
	case OpDiv:
		return e.opDiv(w)
	case OpNand:
		return e.opNand(w)
	case OpHlt:
		return e.opHlt(w)
	case OpNew:
		return e.opNew(w)
	case OpDel:
		return e.opDel(w)
	case OpOut:
		return e.opOut(w)
	case OpInp:
		return e.opInp(w)
	case OpPrg:
		return e.opPrg(w)
	case OpLdi:
		return e.opLdi(w)
	default:
		return fault(INV, e.pc)
	}
}

// opTable is the accelerated dispatch discipline's jump table, indexed
// directly by opcode. Entries 14 and 15 are left nil, which Run treats as
// INV.
var opTable [numOps]func(*Engine, Word) *Fault

func init() {
	opTable[OpMov] = (*Engine).opMov
	opTable[OpLda] = (*Engine).opLda
	opTable[OpSta] = (*Engine).opSta
	opTable[OpAdd] = (*Engine).opAdd
	opTable[OpMul] = (*Engine).opMul
	opTable[OpDiv] = (*Engine).opDiv
	opTable[OpNand] = (*Engine).opNand
	opTable[OpHlt] = (*Engine).opHlt
	opTable[OpNew] = (*Engine).opNew
	opTable[OpDel] = (*Engine).opDel
	opTable[OpOut] = (*Engine).opOut
	opTable[OpInp] = (*Engine).opInp
	opTable[OpPrg] = (*Engine).opPrg
	opTable[OpLdi] = (*Engine).opLdi
}

// stamp fills in the PC of a fault raised by a collaborator that doesn't
// know the current PC (the array table), using the post-fetch PC (the
// same residual state every other fault leaves behind).
func (e *Engine) stamp(f *Fault) *Fault {
	if f != nil {
		f.PC = e.pc
	}
	return f
}
