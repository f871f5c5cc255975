package delta

// Compose returns a Delta C such that applying d then other to a document
// has the same effect as applying C alone: apply(apply(doc, d), other) ==
// apply(doc, C).
//
// At each step the next slice is chosen by priority: other's next insert
// wins first (new content that doesn't consume d), then d's next delete
// (deleted content other cannot affect); otherwise equal-length slices of
// both are taken and merged according to spec.md §4.E.1.
func (d *Delta) Compose(other *Delta) (*Delta, error) {
	t := NewDeltaIterator(d)
	o := NewDeltaIterator(other)
	result := NewDelta()

	for t.HasNext() || o.HasNext() {
		switch {
		case o.IsNextInsert():
			op, err := o.NextUnbounded()
			if err != nil {
				return nil, err
			}
			result.Push(op)

		case t.IsNextDelete():
			op, err := t.NextUnbounded()
			if err != nil {
				return nil, err
			}
			result.Push(op)

		default:
			length := t.PeekLength()
			if o.PeekLength() < length {
				length = o.PeekLength()
			}
			tOp, err := t.Next(length)
			if err != nil {
				return nil, err
			}
			oOp, err := o.Next(length)
			if err != nil {
				return nil, err
			}

			switch {
			case oOp.IsRetain():
				attrs := ComposeAttributes(tOp.Attributes(), oOp.Attributes(), tOp.IsRetain())
				if tOp.IsRetain() {
					result.Push(NewRetain(length, attrs))
				} else if tOp.IsInsert() {
					result.Push(tOp.withAttributes(attrs))
				} else {
					return nil, ErrUnreachableState
				}

			case oOp.IsDelete():
				if tOp.IsRetain() {
					result.Push(NewDelete(length))
				}
				// tOp.IsInsert(): the insert is cancelled by the delete,
				// emit nothing.

			default:
				return nil, ErrUnreachableState
			}
		}
	}

	result.Trim()
	return result, nil
}
