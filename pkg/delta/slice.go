package delta

// Unbounded is the "to the end" sentinel accepted by Slice's end
// parameter.
const Unbounded = infinity

// Slice returns the sub-Delta covering base-index range [start, end):
// discard content before start, then collect up to end (Unbounded means
// "through the end of d"). Concatenating d.Slice(0, i) and
// d.Slice(i, Unbounded) reproduces d.
func (d *Delta) Slice(start, end int) (*Delta, error) {
	result := NewDelta()
	it := NewDeltaIterator(d)

	if err := it.Skip(start); err != nil {
		return nil, err
	}

	remaining := infinity
	if end != infinity {
		remaining = end - start
	}

	for remaining > 0 && it.HasNext() {
		take := it.PeekLength()
		if remaining < take {
			take = remaining
		}
		op, err := it.Next(take)
		if err != nil {
			return nil, err
		}
		result.Push(op)
		if remaining != infinity {
			remaining -= take
		}
	}

	return result, nil
}
