package bitfield

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
	"lukechampine.com/uint128"
)

// ones lists the indexes of the one bits of v in order.
func ones[T Word](v T) (idx []uint) {
	for it := Of(v, Full()).Iter(); it.Next(); {
		if it.Bit().IsSet() {
			idx = append(idx, it.Index())
		}
	}
	return idx
}

func testSelect[T Word](t *testing.T, v T) {
	t.Helper()
	idx := ones(v)
	for n, want := range idx {
		got, ok := Select(v, uint(n))
		assert.That(t, ok)
		assert.Equal(t, got, want)
		assert.Equal(t, CountRange(v, Through(got)), uint(n+1))
	}
	_, ok := Select(v, uint(len(idx)))
	assert.That(t, !ok)
}

func TestSelect(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		i, ok := Select(uint8(0b1010_0100), 0)
		assert.That(t, ok)
		assert.Equal(t, i, uint(2))

		i, ok = Select(uint8(0b1010_0100), 2)
		assert.That(t, ok)
		assert.Equal(t, i, uint(7))

		_, ok = Select(uint8(0b1010_0100), 3)
		assert.That(t, !ok)

		_, ok = Select(uint64(0), 0)
		assert.That(t, !ok)

		i, ok = Select(^uint64(0), 63)
		assert.That(t, ok)
		assert.Equal(t, i, uint(63))

		// a miss in the high word reports the same index as any other miss
		i, ok = Select128(uint128.From64(1), 1)
		assert.That(t, !ok)
		assert.Equal(t, i, uint(0))

		i, ok = Select128(uint128.New(1, 1), 1)
		assert.That(t, ok)
		assert.Equal(t, i, uint(64))
	})

	t.Run("Exhaustive16", func(t *testing.T) {
		for x := 0; x <= 0xffff; x++ {
			testSelect(t, uint16(x))
		}
	})

	t.Run("Sampled", func(t *testing.T) {
		for i := 0; i < 10000; i++ {
			testSelect(t, pcg.Uint32())
			testSelect(t, pcg.Uint64())
			// sparse values exercise the half popping
			testSelect(t, pcg.Uint64()&pcg.Uint64()&pcg.Uint64())
		}
	})

	t.Run("Wide", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v := uint128.New(pcg.Uint64()&pcg.Uint64(), pcg.Uint64())
			n := uint(0)
			for it := Of128(v, Full()).Iter(); it.Next(); {
				if !it.Bit().IsSet() {
					continue
				}
				got, ok := Select128(v, n)
				assert.That(t, ok)
				assert.Equal(t, got, it.Index())
				n++
			}
			i, ok := Select128(v, n)
			assert.That(t, !ok)
			assert.Equal(t, i, uint(0))
			assert.Equal(t, n, CountOnes128(v))
		}
	})
}

func BenchmarkSelect(b *testing.B) {
	v := pcg.Uint64()
	n := CountOnes(v) / 2

	for i := 0; i < b.N; i++ {
		Select(v, n)
	}
}
