package delta

// TransformPosition adjusts a caret/position through d, the way
// Transform adjusts a whole Delta: given that index names a location in
// the document before d was applied, it returns the corresponding
// location after d is applied.
//
// force controls what happens when the cursor sits exactly at an insert
// boundary: with force true, an insert at that boundary still pushes the
// cursor forward; with force false, the cursor stays put and only
// inserts strictly before it shift it.
func (d *Delta) TransformPosition(index int, force bool) int {
	offset := 0
	for _, op := range d.ops {
		if offset > index {
			break
		}
		length := op.Len()
		switch op.Kind() {
		case KindDelete:
			consumed := index - offset
			if length < consumed {
				consumed = length
			}
			index -= consumed
			continue
		case KindInsert:
			if offset < index || force {
				index += length
			}
		}
		offset += length
	}
	return index
}
