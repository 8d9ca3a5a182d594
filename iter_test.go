package bitfield

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
	"lukechampine.com/uint128"
)

func iterFlags(v uint64, out *[64]bool) (n int) {
	for it := Of(v, Inclusive(0, 63)).Iter(); it.Next(); n++ {
		out[it.Index()] = it.Bit().IsSet()
	}
	return n
}

func loopFlags(v uint64, out *[64]bool) {
	mask := uint64(1)
	for idx := 0; idx < 64; idx++ {
		out[idx] = v&mask != 0
		mask <<= 1
	}
}

func TestIter(t *testing.T) {
	t.Run("Exhaustive16", func(t *testing.T) {
		var got, exp [64]bool
		for x := uint64(0); x <= 0xffff; x++ {
			assert.Equal(t, iterFlags(x, &got), 64)
			loopFlags(x, &exp)
			assert.Equal(t, got, exp)
		}
	})

	t.Run("Order", func(t *testing.T) {
		var idx []uint
		var set []bool
		for it := Of(uint16(0b1010_0000), Inclusive(4, 7)).Iter(); it.Next(); {
			idx = append(idx, it.Index())
			set = append(set, it.Bit().IsSet())
		}
		assert.DeepEqual(t, idx, []uint{4, 5, 6, 7})
		assert.DeepEqual(t, set, []bool{false, true, false, true})
	})

	t.Run("Exhausted", func(t *testing.T) {
		it := Of(uint8(0xff), Bit(3)).Iter()
		assert.That(t, it.Next())
		assert.That(t, it.Bit().IsSet())
		assert.That(t, !it.Bit().IsClear())
		assert.That(t, !it.Next())
		assert.That(t, !it.Next())
	})

	t.Run("Wide", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			v := uint128.New(pcg.Uint64(), pcg.Uint64())
			n := uint(0)
			for it := Of128(v, Full()).Iter(); it.Next(); n++ {
				assert.Equal(t, it.Index(), n)
				assert.Equal(t, it.Bit().IsSet(), v.Rsh(n).Lo&1 == 1)
			}
			assert.Equal(t, n, uint(128))
		}
	})
}

func BenchmarkIter(b *testing.B) {
	var out [64]bool

	b.Run("Iter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			iterFlags(uint64(i), &out)
		}
	})

	b.Run("Loop", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			loopFlags(uint64(i), &out)
		}
	})
}
