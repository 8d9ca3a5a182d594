package demo

import (
	"github.com/zeebo/bitfield"
	"github.com/zeebo/bitfield/field"
)

// Slot is one slot of a quotient filter table: three metadata bits followed
// by the remainder stored in the slot.
//
//	| remainder ... | shifted | continuation | occupied |
//	  63          3     2           1             0
type Slot struct {
	Raw uint64
}

func slotRaw(s *Slot) *uint64 { return &s.Raw }

var (
	SlotOccupied     = field.Flag(slotRaw, 0)
	SlotContinuation = field.Flag(slotRaw, 1)
	SlotShifted      = field.Flag(slotRaw, 2)
	SlotRemainder    = field.NewRW[Slot, uint64, uint64](slotRaw, bitfield.From(3))

	slotMeta = bitfield.Through(2)
)

// NewSlot returns an empty slot holding rem.
func NewSlot(rem uint64) Slot {
	var s Slot
	SlotRemainder.Write(&s, rem)
	return s
}

// Empty reports whether none of the metadata bits are set.
func (s Slot) Empty() bool { return bitfield.IsClear(s.Raw, slotMeta) }

func (s Slot) Remainder() uint64  { return SlotRemainder.Read(&s) }
func (s Slot) Occupied() bool     { return SlotOccupied.Read(&s) }
func (s Slot) Continuation() bool { return SlotContinuation.Read(&s) }
func (s Slot) Shifted() bool      { return SlotShifted.Read(&s) }

// With returns a copy of the slot with the field f set to v.
func (s Slot) With(f field.Writer[Slot, bool], v bool) Slot {
	f.Write(&s, v)
	return s
}

// WithRemainder returns a copy of the slot holding rem, keeping the
// metadata bits.
func (s Slot) WithRemainder(rem uint64) Slot {
	SlotRemainder.Write(&s, rem)
	return s
}

// ClusterStart reports whether the slot starts a cluster: its quotient is
// occupied and its run sits in its canonical slot.
func (s Slot) ClusterStart() bool { return s.Occupied() && !s.Continuation() && !s.Shifted() }

// RunStart reports whether the slot starts a run.
func (s Slot) RunStart() bool { return !s.Continuation() && (s.Occupied() || s.Shifted()) }
