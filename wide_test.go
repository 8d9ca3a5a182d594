package bitfield

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
	"lukechampine.com/uint128"
)

func TestBits128(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		v := Of128(uint128.Zero, Inclusive(60, 67)).Write(uint128.From64(0xff))
		assert.Equal(t, v, uint128.New(0xf<<60, 0xf))
		assert.Equal(t, Of128(v, Inclusive(60, 67)).Read(), uint128.From64(0xff))
		assert.Equal(t, Of128(uint128.Zero, Full()).Set(), uint128.Max)
		assert.Equal(t, Of128(uint128.Max, From(64)).Clear(), uint128.New(^uint64(0), 0))
		assert.That(t, Of128(uint128.Max, Bit(127)).IsSet())
		assert.That(t, Of128(uint128.Zero, Bit(127)).IsClear())
		assert.Equal(t, Mask128(Span{0, 128}), uint128.Max)
		assert.Equal(t, Ones128(0), uint128.Zero)
	})

	t.Run("Overflow", func(t *testing.T) {
		assertOverflow(t, func() { Of128(uint128.Zero, Inclusive(0, 128)) })
		assertOverflow(t, func() { Mask128(Span{Offset: 127, Length: 2}) })
	})

	t.Run("Properties", func(t *testing.T) {
		for i := 0; i < 10000; i++ {
			v := uint128.New(pcg.Uint64(), pcg.Uint64())
			x := uint128.New(pcg.Uint64(), pcg.Uint64())
			r, s := randomRange(128)
			m := Mask128(s)
			b := Of128(v, r)

			w := b.Write(x)
			assert.That(t, w.Xor(v).And(m.Xor(uint128.Max)).IsZero())
			assert.Equal(t, Of128(w, r).Read(), x.And(Ones128(s.Length)))
			assert.That(t, Of128(b.Set(), r).IsSet())
			assert.That(t, Of128(b.Clear(), r).IsClear())
			assert.Equal(t, Of128(b.Revert(), r).Revert(), v)
		}
	})
}
