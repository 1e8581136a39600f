package cpu

import (
	"fmt"
	"strings"
)

// Disassemble decodes the instruction at addr without executing it,
// returning its mnemonic with the immediate operands filled in and its
// length in bytes.
func Disassemble(bus Bus, addr uint16) (string, uint8) {
	opcode := bus.Read(addr)
	if opcode == 0xCB {
		instruction := InstructionSetCB[bus.Read(addr+1)]
		return instruction.name, instruction.length
	}

	instruction := InstructionSet[opcode]
	text := instruction.name
	switch {
	case strings.Contains(text, "d16"), strings.Contains(text, "a16"):
		value := fmt.Sprintf("$%04X", bus.ReadWord(addr+1))
		text = strings.NewReplacer("d16", value, "a16", value).Replace(text)
	case strings.Contains(text, "r8"):
		offset := int8(bus.Read(addr + 1))
		if strings.HasPrefix(text, "JR") {
			// relative jumps are shown by their target
			target := uint16(int32(addr) + int32(instruction.length) + int32(offset))
			text = strings.Replace(text, "r8", fmt.Sprintf("$%04X", target), 1)
		} else {
			text = strings.NewReplacer("+r8", fmt.Sprintf("%+d", offset), "r8", fmt.Sprintf("%+d", offset)).Replace(text)
		}
	case strings.Contains(text, "d8"), strings.Contains(text, "a8"):
		value := fmt.Sprintf("$%02X", bus.Read(addr+1))
		text = strings.NewReplacer("d8", value, "a8", value).Replace(text)
	}

	return text, instruction.length
}
