package bricklayer

// unfilled marks a PartialPose slot that has not yet been assigned a
// Position. Input coordinates are bounded to [0, 2^15), so -1 is never a
// legitimate coordinate. The fingerprint below does not use this value: it
// records each slot's state with a flag byte of its own.
const unfilled = -1

// PartialPose is an N-slot pose under construction: each slot is either
// unfilled or holds a Position. It is consistent iff, for every figure edge
// whose endpoints are both filled, the admissible-offset test passes (this
// package only ever constructs consistent PartialPoses — see Figure 4.5).
type PartialPose struct {
	slots     []Position
	isFilled  []bool
	nUnfilled int
}

// newPartialPose returns an all-unfilled PartialPose for a figure of n
// vertices.
func newPartialPose(n int) PartialPose {
	return PartialPose{
		slots:     make([]Position, n),
		isFilled:  make([]bool, n),
		nUnfilled: n,
	}
}

// clone returns a deep, independently-mutable copy. PartialPoses are cheap
// to clone and are never shared mutably between branches of the search.
func (pp PartialPose) clone() PartialPose {
	slots := make([]Position, len(pp.slots))
	copy(slots, pp.slots)
	isFilled := make([]bool, len(pp.isFilled))
	copy(isFilled, pp.isFilled)
	return PartialPose{slots: slots, isFilled: isFilled, nUnfilled: pp.nUnfilled}
}

// set assigns p to slot i, returning a new PartialPose (the receiver is
// unmodified) with one fewer unfilled slot.
func (pp PartialPose) set(i int, p Position) PartialPose {
	next := pp.clone()
	if !next.isFilled[i] {
		next.nUnfilled--
	}
	next.isFilled[i] = true
	next.slots[i] = p
	return next
}

// at returns the position at slot i and whether it is filled.
func (pp PartialPose) at(i int) (Position, bool) {
	return pp.slots[i], pp.isFilled[i]
}

// complete reports whether every slot is filled.
func (pp PartialPose) complete() bool { return pp.nUnfilled == 0 }

// solution materializes a complete PartialPose into a Solution. Callers
// must check complete() first.
func (pp PartialPose) solution() Solution {
	verts := make([]Position, len(pp.slots))
	copy(verts, pp.slots)
	return Solution{Vertices: verts}
}

// fingerprint is a compact, comparable encoding of a PartialPose's slot
// state, used as the visited-set key. A systems-language implementation
// hashes this instead of cloning full PartialPose values into a set, per
// the design note on duplicate detection.
type fingerprint string

func (pp PartialPose) fingerprint() fingerprint {
	buf := make([]byte, 0, len(pp.slots)*9)
	for i, p := range pp.slots {
		if !pp.isFilled[i] {
			buf = append(buf, 0)
			continue
		}
		buf = append(buf, 1)
		buf = appendInt32(buf, p.X)
		buf = appendInt32(buf, p.Y)
	}
	return fingerprint(buf)
}

func appendInt32(buf []byte, v int32) []byte {
	u := uint32(v)
	return append(buf, byte(u>>24), byte(u>>16), byte(u>>8), byte(u))
}
