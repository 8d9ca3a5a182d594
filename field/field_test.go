package field

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/bitfield"
	"github.com/zeebo/errs"
	"github.com/zeebo/pcg"
)

type ctrl struct {
	Raw  uint8
	Wide uint32
}

func raw(c *ctrl) *uint8   { return &c.Raw }
func wide(c *ctrl) *uint32 { return &c.Wide }

type mode uint8

const (
	modeOff mode = iota
	modeSlow
	modeFast
)

var (
	enable  = Flag(raw, 0)
	ready   = FlagRO(raw, 3)
	speed   = NewRW[ctrl, uint8, mode](raw, bitfield.Inclusive(1, 2))
	level   = NewRO[ctrl, uint8, uint8](raw, bitfield.Inclusive(4, 7))
	counter = NewRW[ctrl, uint32, uint16](wide, bitfield.Between(8, 24))
	scaled  = NewRWWith(wide, bitfield.From(24), Numeric[uint32, int]().
		WithDecode(func(raw uint32) int { return int(raw) * 10 }).
		WithEncode(func(v int) uint32 { return uint32(v / 10) }))

	checkedSpeed = NewCheckedRW(raw, bitfield.Inclusive(1, 2), TryConverter[uint8, mode]{
		Decode: func(raw uint8) (mode, error) {
			if raw > uint8(modeFast) {
				return 0, errs.New("invalid mode %d", raw)
			}
			return mode(raw), nil
		},
		Encode: func(v mode) uint8 { return uint8(v) },
	})
)

// compile time capability checks
var (
	_ Writer[ctrl, bool]    = enable
	_ Reader[ctrl, bool]    = ready
	_ Writer[ctrl, mode]    = speed
	_ Reader[ctrl, uint8]   = level
	_ TryReader[ctrl, mode] = checkedSpeed
	_ Writer[ctrl, mode]    = checkedSpeed
)

func TestField(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		var c ctrl
		Write(&c, enable, true)
		assert.Equal(t, c.Raw, uint8(0x01))
		Write(&c, speed, modeFast)
		assert.Equal(t, c.Raw, uint8(0x05))
		assert.That(t, Read(&c, enable))
		assert.Equal(t, Read(&c, speed), modeFast)
		assert.That(t, !Read(&c, ready))
		assert.Equal(t, Read(&c, level), uint8(0))

		c.Raw = 0x12
		assert.Equal(t, Read(&c, level), uint8(0x1))
	})

	t.Run("Capabilities", func(t *testing.T) {
		_, ok := any(level).(Writer[ctrl, uint8])
		assert.That(t, !ok)
		_, ok = any(ready).(Writer[ctrl, bool])
		assert.That(t, !ok)
		_, ok = any(enable.ReadOnly()).(Writer[ctrl, bool])
		assert.That(t, !ok)
	})

	t.Run("Boolean", func(t *testing.T) {
		c := ctrl{Raw: 0x08}
		assert.That(t, ready.Read(&c))
		c.Raw = 0xf7
		assert.That(t, !ready.Read(&c))

		conv := Boolean[uint8]()
		assert.That(t, conv.Decode(1))
		assert.That(t, !conv.Decode(0))
		assert.That(t, !conv.Decode(2))
		assert.Equal(t, conv.Encode(true), uint8(1))
		assert.Equal(t, conv.Encode(false), uint8(0))
	})

	t.Run("PreservesOtherBits", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			before := ctrl{Raw: uint8(pcg.Uint32()), Wide: pcg.Uint32()}
			c := before
			v := uint16(pcg.Uint32())
			counter.Write(&c, v)

			m := bitfield.Mask[uint32](counter.Span())
			assert.Equal(t, c.Raw, before.Raw)
			assert.Equal(t, c.Wide&^m, before.Wide&^m)
			assert.Equal(t, counter.Read(&c), v)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		var c ctrl
		for x := 0; x <= 0xffff; x++ {
			counter.Write(&c, uint16(x))
			assert.Equal(t, counter.Read(&c), uint16(x))
		}
		for _, m := range []mode{modeOff, modeSlow, modeFast, 3} {
			speed.Write(&c, m)
			assert.Equal(t, speed.Read(&c), m)
		}
	})

	t.Run("Truncates", func(t *testing.T) {
		var c ctrl
		speed.Write(&c, 0xff)
		assert.Equal(t, c.Raw, uint8(0x06))
		assert.Equal(t, speed.Read(&c), mode(3))
	})

	t.Run("Converters", func(t *testing.T) {
		var c ctrl
		scaled.Write(&c, 120)
		assert.Equal(t, c.Wide, uint32(12)<<24)
		assert.Equal(t, scaled.Read(&c), 120)
		assert.Equal(t, scaled.Raw(&c), uint32(12))
	})

	t.Run("Overflow", func(t *testing.T) {
		defer func() {
			err, ok := recover().(error)
			assert.That(t, ok)
			assert.That(t, bitfield.OverflowError.Has(err))
		}()
		NewRO[ctrl, uint8, uint8](raw, bitfield.Inclusive(0, 8))
	})
}

func TestChecked(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		var c ctrl
		checkedSpeed.Write(&c, modeSlow)
		v, err := TryRead(&c, checkedSpeed)
		assert.NoError(t, err)
		assert.Equal(t, v, modeSlow)
		assert.Equal(t, checkedSpeed.Read(&c), modeSlow)
	})

	t.Run("Invalid", func(t *testing.T) {
		c := ctrl{Raw: 0x06}
		_, err := TryRead(&c, checkedSpeed)
		assert.Error(t, err)
		assert.That(t, ConversionError.Has(err))
		assert.Equal(t, checkedSpeed.Raw(&c), uint8(3))
	})

	t.Run("ReadPanics", func(t *testing.T) {
		defer func() {
			err, ok := recover().(error)
			assert.That(t, ok)
			assert.That(t, ConversionError.Has(err))
		}()
		c := ctrl{Raw: 0x06}
		checkedSpeed.Read(&c)
	})
}

func TestAccessor(t *testing.T) {
	t.Run("Chain", func(t *testing.T) {
		var c ctrl
		Write(Write(&c, enable, true), speed, modeSlow)
		assert.Equal(t, c.Raw, uint8(0x03))

		var on bool
		var m mode
		Output(Output(&c, enable, &on), speed, &m)
		assert.That(t, on)
		assert.Equal(t, m, modeSlow)
	})

	t.Run("Apply", func(t *testing.T) {
		c := ctrl{Raw: 0xf0}
		Apply(&c,
			Set(enable, true),
			Set(speed, modeFast),
			Set(counter, uint16(0xbeef)),
		)
		assert.Equal(t, c.Raw, uint8(0xf5))
		assert.Equal(t, c.Wide, uint32(0xbeef00))
		assert.Equal(t, Read(&c, level), uint8(0xf))
	})
}
