// Package polyline: merging — the copy merge and the three-strategy
// move merge. The strategy choice is a pure function so the capacity
// regimes can be tested independently of the mutation they trigger.

package polyline

// MergeStrategy identifies how a move merge will place the combined
// records, chosen to avoid allocation whenever an existing buffer can
// hold the result.
type MergeStrategy int

const (
	// AppendInPlace: the receiver's spare capacity already fits the
	// donor's records; move them into the tail. No allocation, donor
	// buffer untouched.
	AppendInPlace MergeStrategy = iota

	// AdoptOtherBuffer: the donor's total capacity fits the combined
	// sequence; shift the donor's records rightward, move the receiver's
	// records into the freed front, then swap buffer handles so the
	// roomier buffer becomes the receiver's. No allocation.
	AdoptOtherBuffer

	// Reallocate: neither buffer is big enough; allocate the combined
	// size and move both sequences in.
	Reallocate
)

// String implements fmt.Stringer for diagnostics.
func (s MergeStrategy) String() string {
	switch s {
	case AppendInPlace:
		return "AppendInPlace"
	case AdoptOtherBuffer:
		return "AdoptOtherBuffer"
	case Reallocate:
		return "Reallocate"
	default:
		return "Unknown"
	}
}

// ChooseMergeStrategy picks the move-merge placement from the two
// containers' sizes and capacities. Priority order: reuse the
// receiver's spare room, then adopt the donor's buffer, then
// reallocate.
// Complexity: O(1), pure.
func ChooseMergeStrategy(selfSize, selfCap, otherSize, otherCap int) MergeStrategy {
	switch {
	case selfCap-selfSize >= otherSize:
		return AppendInPlace
	case otherCap >= selfSize+otherSize:
		return AdoptOtherBuffer
	default:
		return Reallocate
	}
}

// MergeLine appends copies of other's records after the receiver's own,
// growing the receiver's storage when spare capacity is insufficient.
// The source is read-only: it is never modified. Order is preserved:
// the receiver's points first, then other's.
// Complexity: O(size + other.size) on growth, O(other.size) otherwise.
func (p *Polyline[T]) MergeLine(other *Polyline[T]) {
	if other == nil || other.size == 0 {
		return
	}
	if len(p.buf) < p.size+other.size {
		p.grow(len(p.buf) + other.size)
	}
	for i := 0; i < other.size; i++ {
		p.buf[p.size+i] = entry[T]{pt: other.buf[i].pt.Clone(), name: other.buf[i].name}
	}
	p.size += other.size
}

// MergeLineMove appends other's records after the receiver's own,
// consuming the donor. The placement is chosen by ChooseMergeStrategy
// to avoid allocation across the three relative-capacity regimes; every
// branch preserves order (receiver's points, then donor's).
//
// Afterwards the donor remains a valid polyline of unspecified content
// — it may hold nothing or the receiver's former records — and is safe
// to reuse or discard.
// Complexity: O(other.size) for AppendInPlace, O(size + other.size)
// otherwise.
func (p *Polyline[T]) MergeLineMove(other *Polyline[T]) {
	if other == nil || other.size == 0 {
		return
	}
	if other == p {
		// Self-merge cannot cannibalize its own storage; fall back to copying.
		p.MergeLine(other)
		return
	}

	needed := p.size + other.size
	switch ChooseMergeStrategy(p.size, len(p.buf), other.size, len(other.buf)) {
	case AppendInPlace:
		copy(p.buf[p.size:], other.buf[:other.size])
		p.size = needed
		other.size = 0

	case AdoptOtherBuffer:
		// Shift the donor's records rightward by the receiver's size.
		// Backward copy: the regions overlap whenever p.size < other.size.
		for i := other.size - 1; i >= 0; i-- {
			other.buf[p.size+i] = other.buf[i]
		}
		// Move the receiver's records into the freed front region.
		copy(other.buf[:p.size], p.buf[:p.size])
		// Swap buffer handles: the donor's roomier buffer becomes the
		// receiver's; the donor keeps the receiver's old buffer (still a
		// valid polyline of the receiver's former records).
		p.buf, other.buf = other.buf, p.buf
		p.size, other.size = needed, p.size

	case Reallocate:
		next := make([]entry[T], needed)
		copy(next, p.buf[:p.size])
		copy(next[p.size:], other.buf[:other.size])
		p.buf = next
		p.size = needed
		other.size = 0
	}
}
