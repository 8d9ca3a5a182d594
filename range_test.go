package bitfield

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestRange(t *testing.T) {
	t.Run("Span", func(t *testing.T) {
		cases := []struct {
			r   Range
			exp Span
		}{
			{Bit(3), Span{3, 1}},
			{Between(1, 2), Span{1, 1}},
			{Inclusive(4, 7), Span{4, 4}},
			{From(1), Span{1, 7}},
			{To(1), Span{0, 1}},
			{Through(2), Span{0, 3}},
			{Full(), Span{0, 8}},
			{At(2, 3), Span{2, 3}},
			{Range{Bound{Excluded, 1}, Bound{Included, 3}}, Span{2, 2}},
		}
		for _, c := range cases {
			assert.Equal(t, c.r.Span(8), c.exp)
			assert.Equal(t, c.exp.Range().Span(8), c.exp)
		}
	})

	t.Run("Check", func(t *testing.T) {
		_, err := Inclusive(0, 8).Check(8)
		assert.Error(t, err)
		assert.That(t, OverflowError.Has(err))

		_, err = To(0).Check(8)
		assert.Error(t, err)

		s, err := Inclusive(0, 127).Check(128)
		assert.NoError(t, err)
		assert.Equal(t, s, Span{0, 128})
	})

	t.Run("Parse", func(t *testing.T) {
		cases := []struct {
			in  string
			exp Range
		}{
			{"5", Bit(5)},
			{"4..=7", Inclusive(4, 7)},
			{"1..3", Between(1, 3)},
			{"2..", From(2)},
			{"..4", To(4)},
			{"..=4", Through(4)},
			{"..", Full()},
			{" 0x4 ..= 0x7 ", Inclusive(4, 7)},
		}
		for _, c := range cases {
			r, err := ParseRange(c.in)
			assert.NoError(t, err)
			assert.Equal(t, r, c.exp)
		}

		for _, in := range []string{"", "x", "1..=", "4..=y", "300"} {
			_, err := ParseRange(in)
			assert.Error(t, err)
			assert.That(t, Error.Has(err))
		}
	})

	t.Run("String", func(t *testing.T) {
		for _, r := range []Range{Bit(5), Inclusive(4, 7), Between(1, 3), From(2), To(4), Through(4), Full()} {
			p, err := ParseRange(r.String())
			assert.NoError(t, err)
			assert.Equal(t, p, r)
		}
	})
}
