package delta

import "fmt"

// DeltaIterator is a cursor over a Delta that yields sub-operations of a
// requested length, letting two Deltas be walked in lock-step at
// sub-operation granularity. It captures its source's modification count
// at creation and fails fast if that Delta is mutated (through a builder
// call) while the iterator is in flight.
type DeltaIterator struct {
	source   *Delta
	modCount uint64
	index    int // index into source.ops
	offset   int // byte offset into source.ops[index]
}

// NewDeltaIterator returns an iterator positioned at the start of d.
func NewDeltaIterator(d *Delta) *DeltaIterator {
	return &DeltaIterator{source: d, modCount: d.modCount}
}

// checkModCount returns ErrConcurrentModification if source has been
// mutated since it was captured.
func (it *DeltaIterator) checkModCount() error {
	if it.source.modCount != it.modCount {
		return fmt.Errorf("%w", ErrConcurrentModification)
	}
	return nil
}

// PeekLength returns the number of bytes remaining in the current
// operation, or infinity if the iterator has run past the end of the
// Delta.
func (it *DeltaIterator) PeekLength() int {
	if it.index < len(it.source.ops) {
		return it.source.ops[it.index].Len() - it.offset
	}
	return infinity
}

// HasNext reports whether there is a real (non-synthetic) operation left.
func (it *DeltaIterator) HasNext() bool {
	return it.PeekLength() < infinity
}

// NextOperationKey returns the Kind of the operation Next would currently
// slice from. Past the end of the Delta, it reports KindRetain, matching
// the synthetic plain-retain tail Next synthesizes there.
func (it *DeltaIterator) NextOperationKey() Kind {
	if it.index < len(it.source.ops) {
		return it.source.ops[it.index].Kind()
	}
	return KindRetain
}

// IsNextInsert, IsNextDelete, and IsNextRetain report NextOperationKey.
func (it *DeltaIterator) IsNextInsert() bool { return it.NextOperationKey() == KindInsert }
func (it *DeltaIterator) IsNextDelete() bool { return it.NextOperationKey() == KindDelete }
func (it *DeltaIterator) IsNextRetain() bool { return it.NextOperationKey() == KindRetain }

// Next returns a new Operation of length min(PeekLength(), maxLen), sliced
// from the current source operation. Attributes are inherited from the
// source operation; an insert's text is the corresponding substring. Once
// the iterator has run past the end of the Delta, Next instead returns a
// synthetic plain retain of length maxLen (maxLen must be finite in that
// case) — a deliberate pad that a subsequent Trim on the result Delta
// removes.
//
// Next returns ErrConcurrentModification if source was structurally
// mutated since the iterator was created.
func (it *DeltaIterator) Next(maxLen int) (Operation, error) {
	if err := it.checkModCount(); err != nil {
		return Operation{}, err
	}

	if it.index >= len(it.source.ops) {
		if maxLen == infinity {
			return Operation{}, fmt.Errorf("%w: Next called past end of Delta with unbounded length", ErrUnreachableState)
		}
		return NewRetain(maxLen, nil), nil
	}

	op := it.source.ops[it.index]
	remaining := op.Len() - it.offset
	take := remaining
	if maxLen < take {
		take = maxLen
	}

	start := it.offset
	var out Operation
	switch op.Kind() {
	case KindInsert:
		out = NewInsert(op.sliceText(start, start+take), op.Attributes())
	case KindDelete:
		out = NewDelete(take)
	case KindRetain:
		out = NewRetain(take, op.Attributes())
	default:
		return Operation{}, fmt.Errorf("%w: Next on operation with kind %v", ErrUnreachableState, op.Kind())
	}

	if take == remaining {
		it.index++
		it.offset = 0
	} else {
		it.offset += take
	}

	return out, nil
}

// NextUnbounded is Next(infinity): take the whole remainder of the
// current operation.
func (it *DeltaIterator) NextUnbounded() (Operation, error) {
	return it.Next(infinity)
}

// Skip discards up to n bytes from the front of the iterator without
// producing a result, as if Next(n) had been called and its result
// thrown away. Used when the caller only needs to advance past content
// it does not care about.
func (it *DeltaIterator) Skip(n int) error {
	remaining := n
	for remaining > 0 && it.HasNext() {
		l := it.PeekLength()
		if l > remaining {
			l = remaining
		}
		if _, err := it.Next(l); err != nil {
			return err
		}
		remaining -= l
	}
	return nil
}

// Rest collects every remaining real operation (not the synthetic tail)
// into a fresh Delta.
func (it *DeltaIterator) Rest() (*Delta, error) {
	out := NewDelta()
	for it.HasNext() {
		op, err := it.NextUnbounded()
		if err != nil {
			return nil, err
		}
		out.Push(op)
	}
	return out, nil
}
