package main

import (
	"flag"
	"fmt"
	"log"
	"math/bits"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/zeebo/bitfield"
	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
	"github.com/zeebo/mon/monhandler"
	"github.com/zeebo/pcg"
	"lukechampine.com/uint128"
)

var (
	samples = flag.Int("samples", 1000000, "number of random values per check")
	addr    = flag.String("addr", "", "address to serve timing stats on, e.g. :8080")

	rng pcg.T
)

func stats() {
	defer fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	mon.Times(func(name string, state *mon.State) bool {
		sum, avg := state.Average()
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\n",
			name, state.Total(), time.Duration(sum), time.Duration(avg))
		return true
	})
}

func main() {
	flag.Parse()

	defer stats()
	if *addr != "" {
		go http.ListenAndServe(*addr, monhandler.Handler{})
	}

	if err := run(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run() error {
	checks := []struct {
		name string
		fn   func(n int) error
	}{
		{"uint8", checkWidth(func() uint8 { return uint8(rng.Uint32()) }, popcount8)},
		{"uint16", checkWidth(func() uint16 { return uint16(rng.Uint32()) }, popcount16)},
		{"uint32", checkWidth(rng.Uint32, popcount32)},
		{"uint64", checkWidth(rng.Uint64, bits.OnesCount64)},
		{"uint128", checkWide},
	}

	for _, c := range checks {
		fmt.Printf("checking %s with %d samples\n", c.name, *samples)
		if err := c.fn(*samples); err != nil {
			return errs.New("%s: %v", c.name, err)
		}
	}

	fmt.Println("done.")
	return nil
}

func popcount8(v uint8) int   { return bits.OnesCount8(v) }
func popcount16(v uint16) int { return bits.OnesCount16(v) }
func popcount32(v uint32) int { return bits.OnesCount32(v) }

// randomRange returns a random range that fits width along with its span.
func randomRange(width uint) (bitfield.Range, bitfield.Span) {
	off := uint(rng.Uint32n(uint32(width)))
	length := 1 + uint(rng.Uint32n(uint32(width-off)))
	return bitfield.At(off, length), bitfield.Span{Offset: off, Length: length}
}

func checkWidth[T bitfield.Word](gen func() T, popcount func(T) int) func(n int) error {
	return func(n int) error {
		for i := 0; i < n; i++ {
			if err := checkBits(gen(), gen()); err != nil {
				return err
			}
			if err := checkCount(gen(), popcount); err != nil {
				return err
			}
		}
		return nil
	}
}

// checkBits checks that a write round trips and leaves the rest of the value
// alone, and that set, clear and revert agree with each other.
func checkBits[T bitfield.Word](v, x T) (err error) {
	defer mon.Start().Stop(&err)

	r, s := randomRange(bitfield.Width[T]())
	m := bitfield.Mask[T](s)
	b := bitfield.Of(v, r)

	w := b.Write(x)
	if (w^v)&^m != 0 {
		return errs.New("write %#x to %s of %#x touched outside bits: %#x", x, r, v, w)
	}
	if got := bitfield.Of(w, r).Read(); got != x&bitfield.Ones[T](s.Length) {
		return errs.New("write %#x to %s of %#x read back %#x", x, r, v, got)
	}
	if set := b.Set(); !bitfield.Of(set, r).IsSet() || bitfield.Of(set, r).Clear() != b.Clear() {
		return errs.New("set/clear of %s of %#x disagree", r, v)
	}
	if bitfield.Of(b.Revert(), r).Revert() != v {
		return errs.New("double revert of %s of %#x changed it", r, v)
	}
	return nil
}

// checkCount checks the popcount and that selecting every one bit finds the
// bits the iterator reports.
func checkCount[T bitfield.Word](v T, popcount func(T) int) (err error) {
	defer mon.Start().Stop(&err)

	if got, want := bitfield.CountOnes(v), uint(popcount(v)); got != want {
		return errs.New("popcount of %#x: got %d want %d", v, got, want)
	}

	var n uint
	for it := bitfield.Of(v, bitfield.Full()).Iter(); it.Next(); {
		if !it.Bit().IsSet() {
			continue
		}
		if got, ok := bitfield.Select(v, n); !ok || got != it.Index() {
			return errs.New("select %d of %#x: got %d want %d", n, v, got, it.Index())
		}
		n++
	}
	return nil
}

func checkWide(n int) (err error) {
	defer mon.Start().Stop(&err)

	for i := 0; i < n; i++ {
		v := uint128.New(rng.Uint64(), rng.Uint64())
		x := uint128.New(rng.Uint64(), rng.Uint64())
		r, s := randomRange(128)
		m := bitfield.Mask128(s)

		w := bitfield.Of128(v, r).Write(x)
		if !w.Xor(v).And(m.Xor(uint128.Max)).IsZero() {
			return errs.New("write %s to %s of %s touched outside bits: %s", x, r, v, w)
		}
		if got := bitfield.Of128(w, r).Read(); !got.Equals(x.And(bitfield.Ones128(s.Length))) {
			return errs.New("write %s to %s of %s read back %s", x, r, v, got)
		}
		if got, want := bitfield.CountOnes128(v), uint(v.OnesCount()); got != want {
			return errs.New("popcount of %s: got %d want %d", v, got, want)
		}
	}
	return nil
}
