package cpu

import "fmt"

// condition is one of the four branch conditions addressed by bits 3-4 of
// the conditional jump, call and return opcodes.
type condition uint8

const (
	conditionNZ condition = iota
	conditionZ
	conditionNC
	conditionC
)

func (cc condition) String() string {
	return [...]string{"NZ", "Z", "NC", "C"}[cc&3]
}

// met reports whether the condition holds for the current flags.
func (c *CPU) met(cc condition) bool {
	switch cc {
	case conditionNZ:
		return !c.isFlagSet(FlagZero)
	case conditionZ:
		return c.isFlagSet(FlagZero)
	case conditionNC:
		return !c.isFlagSet(FlagCarry)
	case conditionC:
		return c.isFlagSet(FlagCarry)
	}
	panic(fmt.Sprintf("invalid condition %d", cc))
}

// push decrements SP by two and stores value at the new top of the stack.
func (c *CPU) push(value uint16) {
	c.SP -= 2
	c.bus.WriteWord(c.SP, value)
}

// pop loads the value at the top of the stack and increments SP by two.
func (c *CPU) pop() uint16 {
	value := c.bus.ReadWord(c.SP)
	c.SP += 2
	return value
}

// jumpRelative reads a signed offset and adds it to PC, which already points
// past the offset.
//
//	JR r8
//	JR cc, r8
func (c *CPU) jumpRelative(taken bool) {
	offset := int8(c.readOperand())
	if taken {
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
}

// jumpAbsolute reads a 16-bit address and jumps to it.
//
//	JP a16
//	JP cc, a16
func (c *CPU) jumpAbsolute(taken bool) {
	address := c.readOperand16()
	if taken {
		c.PC = address
	}
}

// call reads a 16-bit address, pushes the address of the next instruction
// and jumps.
//
//	CALL a16
//	CALL cc, a16
func (c *CPU) call(taken bool) {
	address := c.readOperand16()
	if taken {
		c.push(c.PC)
		c.PC = address
	}
}

// ret pops PC from the stack.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.pop()
}

// restart pushes PC and jumps to one of the eight restart vectors.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) restart(vector uint16) {
	c.push(c.PC)
	c.PC = vector
}

// stackPairs is the register pair column of PUSH and POP, where SP is
// replaced by AF.
var stackPairs = [4]Pair{PairBC, PairDE, PairHL, PairAF}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) { c.jumpRelative(true) }, Length(2), Cycles(3))
	DefineInstruction(0xC3, "JP a16", func(c *CPU) { c.jumpAbsolute(true) }, Length(3), Cycles(4))
	DefineInstruction(0xE9, "JP HL", func(c *CPU) { c.PC = c.HL.Uint16() })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) { c.call(true) }, Length(3), Cycles(6))
	DefineInstruction(0xC9, "RET", func(c *CPU) { c.ret() }, Cycles(4))
	DefineInstruction(0xD9, "RETI", func(c *CPU) {
		c.ret()
		c.irq.IME = true
	}, Cycles(4))

	for i := uint8(0); i < 4; i++ {
		cc := condition(i)
		DefineInstruction(0x20+i<<3, fmt.Sprintf("JR %s, r8", cc), func(c *CPU) {
			taken := c.met(cc)
			c.jumpRelative(taken)
			if taken {
				c.tick(1)
			}
		}, Length(2), Cycles(2))
		DefineInstruction(0xC2+i<<3, fmt.Sprintf("JP %s, a16", cc), func(c *CPU) {
			taken := c.met(cc)
			c.jumpAbsolute(taken)
			if taken {
				c.tick(1)
			}
		}, Length(3), Cycles(3))
		DefineInstruction(0xC4+i<<3, fmt.Sprintf("CALL %s, a16", cc), func(c *CPU) {
			taken := c.met(cc)
			c.call(taken)
			if taken {
				c.tick(3)
			}
		}, Length(3), Cycles(3))
		DefineInstruction(0xC0+i<<3, fmt.Sprintf("RET %s", cc), func(c *CPU) {
			if c.met(cc) {
				c.ret()
				c.tick(3)
			}
		}, Cycles(2))
	}

	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) << 3
		DefineInstruction(0xC7+i<<3, fmt.Sprintf("RST %02XH", vector), func(c *CPU) {
			c.restart(vector)
		}, Cycles(4))
	}

	for i, pair := range stackPairs {
		pair := pair
		DefineInstruction(0xC5+uint8(i)<<4, fmt.Sprintf("PUSH %s", pair), func(c *CPU) {
			c.push(c.Read16(pair))
		}, Cycles(4))
		DefineInstruction(0xC1+uint8(i)<<4, fmt.Sprintf("POP %s", pair), func(c *CPU) {
			c.Write16(pair, c.pop())
		}, Cycles(3))
	}
}
