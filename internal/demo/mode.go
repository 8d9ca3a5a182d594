// Package demo is a small peripheral driven through generated bit field
// accessors: a control and a status register on a 32-bit register bus.
package demo

import "github.com/zeebo/errs"

//go:generate go run github.com/zeebo/bitfield/cmd/bitfieldgen gen -i demo.yaml -q

// Mode is the transfer mode held in bits 1..=2 of Ctrl. The fourth encoding
// is reserved.
type Mode uint8

const (
	ModeOff Mode = iota
	ModePoll
	ModeIRQ
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModePoll:
		return "poll"
	case ModeIRQ:
		return "irq"
	default:
		return "reserved"
	}
}

// ParseMode decodes the raw bits of a Mode, rejecting the reserved encoding.
func ParseMode(raw uint32) (Mode, error) {
	if raw <= uint32(ModeIRQ) {
		return Mode(raw), nil
	}
	return 0, errs.New("reserved mode encoding %#x", raw)
}
