package sample

import "github.com/boljen/go-bitmap"

// bit positions within a Point's Flags bitmap.
const (
	bitMoved = iota
	bitPermanent
)

// Flags packs the small set of per-point booleans align cares about (has
// this point been moved at least once, is it exempt from future moves) into a single byte instead of one bool field per flag —
// the same compaction the teacher used for per-pixel road/wall/gate/tower
// bits in citymap.go, repurposed here for per-point state.
type Flags struct {
	bm bitmap.Bitmap
}

func newFlags() Flags {
	return Flags{bm: bitmap.New(2)}
}

// MarkMoved records that align has relocated this point at least once.
func (f *Flags) MarkMoved() { f.bm.Set(bitMoved, true) }

// WasMoved reports whether MarkMoved has been called.
func (f Flags) WasMoved() bool { return f.bm.Get(bitMoved) }

// MarkPermanent records that this point must not be moved again even if
// its concrete type would otherwise allow it (§9 permanent-point
// injection overriding a type's default movability).
func (f *Flags) MarkPermanent() { f.bm.Set(bitPermanent, true) }

// IsPermanent reports whether MarkPermanent has been called.
func (f Flags) IsPermanent() bool { return f.bm.Get(bitPermanent) }
