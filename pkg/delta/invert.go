package delta

// Invert returns the Delta that, composed after d against base (the
// document d was applied to), restores base: base.Compose(d).Compose(
// d.Invert(base)) == base.
func (d *Delta) Invert(base *Delta) (*Delta, error) {
	result := NewDelta()
	baseIndex := 0

	for _, op := range d.ops {
		switch {
		case op.IsInsert():
			result.Push(NewDelete(op.Len()))

		case op.IsRetain() && op.IsPlain():
			result.Push(NewRetain(op.Len(), nil))
			baseIndex += op.Len()

		case op.IsDelete():
			sliced, err := base.Slice(baseIndex, baseIndex+op.Len())
			if err != nil {
				return nil, err
			}
			for _, b := range sliced.ops {
				result.Push(b)
			}
			baseIndex += op.Len()

		case op.IsRetain(): // attributed retain
			sliced, err := base.Slice(baseIndex, baseIndex+op.Len())
			if err != nil {
				return nil, err
			}
			for _, b := range sliced.ops {
				result.Push(NewRetain(b.Len(), InvertAttributes(op.Attributes(), b.Attributes())))
			}
			baseIndex += op.Len()

		default:
			return nil, ErrUnreachableState
		}
	}

	result.Trim()
	return result, nil
}
