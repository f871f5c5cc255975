package delta

// Transform returns other' such that this (d) and other, applied
// concurrently to the same base document, commute: d.Compose(other') ==
// other.Compose(d'), where d' = other.Transform(d, !priority).
//
// priority=true means d is considered to have happened first at
// tie-breaks: a simultaneous insert in d wins the position, and an
// attribute set by d suppresses other's at the same key.
func (d *Delta) Transform(other *Delta, priority bool) (*Delta, error) {
	t := NewDeltaIterator(d)
	o := NewDeltaIterator(other)
	result := NewDelta()

	for t.HasNext() || o.HasNext() {
		switch {
		case t.IsNextInsert() && (priority || !o.IsNextInsert()):
			tOp, err := t.NextUnbounded()
			if err != nil {
				return nil, err
			}
			result.Push(NewRetain(tOp.Len(), nil))

		case o.IsNextInsert():
			oOp, err := o.NextUnbounded()
			if err != nil {
				return nil, err
			}
			result.Push(oOp)

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
			case tOp.IsDelete():
				// d's delete annihilates other's op over this range.

			case oOp.IsDelete():
				result.Push(oOp)

			default:
				attrs := TransformAttributes(tOp.Attributes(), oOp.Attributes(), priority)
				result.Push(NewRetain(length, attrs))
			}
		}
	}

	result.Trim()
	return result, nil
}
