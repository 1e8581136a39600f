package cpu

// Instruction is a single entry of an instruction table.
type Instruction struct {
	name   string
	length uint8
	cycles uint8
	fn     func(*CPU)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Length returns the encoded length of the instruction in bytes, including
// the opcode and, for CB instructions, the prefix.
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the number of machine cycles the instruction takes. For
// conditional instructions this is the cost when the condition is not met.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// InstructionOption configures an Instruction being defined.
type InstructionOption func(*Instruction)

// Length sets the encoded length of an instruction. Defaults to 1.
func Length(length uint8) InstructionOption {
	return func(i *Instruction) {
		i.length = length
	}
}

// Cycles sets the machine cycles of an instruction. Defaults to 1.
func Cycles(cycles uint8) InstructionOption {
	return func(i *Instruction) {
		i.cycles = cycles
	}
}

// InstructionSet is the primary instruction table, indexed by opcode.
var InstructionSet [256]Instruction

// InstructionSetCB is the table of instructions following the 0xCB prefix.
var InstructionSetCB [256]Instruction

func newInstruction(name string, fn func(*CPU), opts []InstructionOption) Instruction {
	instruction := Instruction{
		name:   name,
		length: 1,
		cycles: 1,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&instruction)
	}
	return instruction
}

// DefineInstruction defines the instruction for the given opcode in the
// InstructionSet.
func DefineInstruction(opcode uint8, name string, fn func(*CPU), opts ...InstructionOption) {
	InstructionSet[opcode] = newInstruction(name, fn, opts)
}

// DefineInstructionCB defines the instruction for the given opcode in the
// InstructionSetCB. CB instructions are two bytes long.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU), opts ...InstructionOption) {
	InstructionSetCB[opcode] = newInstruction(name, fn, append([]InstructionOption{Length(2)}, opts...))
}

// reservedOpcodes are not wired to anything on the real hardware. They are
// decoded as no-ops.
var reservedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
	DefineInstruction(0x10, "STOP", func(c *CPU) {
		c.readOperand() // padding byte
		c.mode = ModeStop
	}, Length(2))
	DefineInstruction(0x76, "HALT", func(c *CPU) { c.mode = ModeHalt })
	DefineInstruction(0xCB, "PREFIX CB", func(c *CPU) {
		instruction := InstructionSetCB[c.readOperand()]
		c.cycles = instruction.cycles
		instruction.fn(c)
	})
	DefineInstruction(0xF3, "DI", func(c *CPU) { c.irq.IME = false })
	DefineInstruction(0xFB, "EI", func(c *CPU) { c.irq.IME = true })

	for _, opcode := range reservedOpcodes {
		DefineInstruction(opcode, "-", func(c *CPU) {})
	}
}
