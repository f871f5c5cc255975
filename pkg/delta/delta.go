// Package delta implements the Quill Delta operational-transformation
// format: a compact, JSON-serializable representation of a rich-text
// document and of edits to such a document, together with the algebra
// (Compose, Transform, Invert, Slice, TransformPosition) that makes
// collaborative editing and undo tractable.
//
// # Overview
//
// A Delta is an ordered sequence of Operations (insert/delete/retain),
// kept in a strict normal form by the mutating Push method: no empty
// operations, no two adjacent coalescable operations, and inserts always
// ordered before an adjacent delete. The three nontrivial algorithms —
// Compose, Transform, Invert — walk two Deltas in lock-step through a
// DeltaIterator and build their result by Push-ing synthesized
// operations, then Trim-ming the trailing no-op retain.
//
// # Basic Usage
//
//	d := delta.NewDelta().Insert("Hello", nil).Insert(" World", delta.Attributes{"bold": true})
//	b := delta.NewDelta().Retain(6, nil).Insert("Go ", nil)
//	composed, err := d.Compose(b)
//
// # Thread Safety
//
// Deltas are not internally synchronized. A DeltaIterator captures its
// source's modification count at creation and fails fast if that Delta
// is mutated through a builder call while the iterator is in flight; this
// is the package's only ordering guarantee. Concurrent mutation of the
// same Delta from multiple goroutines is the caller's responsibility.
package delta

import "encoding/json"

// Delta is an ordered, mutable sequence of Operations. The zero value is
// an empty Delta ready for use; NewDelta returns a pointer to one.
type Delta struct {
	ops      []Operation
	modCount uint64
}

// NewDelta returns an empty Delta.
func NewDelta() *Delta {
	return &Delta{}
}

// Ops returns d's operations. The returned slice must not be mutated by
// the caller; it aliases d's internal storage.
func (d *Delta) Ops() []Operation {
	return d.ops
}

// Len returns the number of operations in d.
func (d *Delta) Len() int {
	return len(d.ops)
}

// At returns the operation at index i.
func (d *Delta) At(i int) Operation {
	return d.ops[i]
}

// Length returns the sum of every operation's length: inserts and retains
// contribute to the resulting document length, deletes to the length of
// document consumed from the base.
func (d *Delta) Length() int {
	n := 0
	for _, op := range d.ops {
		n += op.Len()
	}
	return n
}

// Equal reports whether d and other have elementwise-equal op sequences.
func (d *Delta) Equal(other *Delta) bool {
	if d.Len() != other.Len() {
		return false
	}
	for i := range d.ops {
		if !d.ops[i].Equal(other.ops[i]) {
			return false
		}
	}
	return true
}

// Insert appends an insert of text carrying attrs to d, applying the
// normal-form merge rules of Push. Returns d for chaining.
func (d *Delta) Insert(text string, attrs Attributes) *Delta {
	return d.Push(NewInsert(text, attrs))
}

// Delete appends a delete of n bytes to d. n must be non-negative.
// Returns d for chaining.
func (d *Delta) Delete(n int) *Delta {
	if n < 0 {
		panic(ErrInvalidArgument)
	}
	return d.Push(NewDelete(n))
}

// Retain appends a retain of n bytes carrying attrs to d. n must be
// non-negative. Returns d for chaining.
func (d *Delta) Retain(n int, attrs Attributes) *Delta {
	if n < 0 {
		panic(ErrInvalidArgument)
	}
	return d.Push(NewRetain(n, attrs))
}

// Push appends op to d, merging it into the trailing operation(s) under
// the normal-form rules of spec.md §4.C:
//
//  1. An empty op is a no-op.
//  2. Two adjacent deletes merge into one.
//  3. An insert appended after a trailing delete is re-inserted *before*
//     that delete (inserts always precede an adjacent delete).
//  4. Two adjacent inserts with equal attributes merge, concatenating text.
//  5. Two adjacent retains with equal attributes merge, summing length.
//  6. Otherwise op is appended as-is.
//
// Returns d for chaining.
func (d *Delta) Push(op Operation) *Delta {
	if op.IsEmpty() {
		return d
	}

	if len(d.ops) == 0 {
		d.ops = append(d.ops, op)
		d.modCount++
		return d
	}

	lastIdx := len(d.ops) - 1
	last := d.ops[lastIdx]

	if last.IsDelete() && op.IsDelete() {
		d.ops[lastIdx] = NewDelete(last.Len() + op.Len())
		d.modCount++
		return d
	}

	// Insert-before-delete: if the trailing op is a delete and we're
	// pushing an insert, the insert is logically inserted before the
	// delete block. Reconsider merging against the operation preceding
	// that delete, if any.
	if last.IsDelete() && op.IsInsert() {
		if len(d.ops) >= 2 {
			prevIdx := lastIdx - 1
			prev := d.ops[prevIdx]
			if prev.IsInsert() && prev.Attributes().Equal(op.Attributes()) {
				d.ops[prevIdx] = NewInsert(prev.Text()+op.Text(), prev.Attributes())
				d.modCount++
				return d
			}
		}
		d.ops = append(d.ops, Operation{})
		copy(d.ops[lastIdx+1:], d.ops[lastIdx:])
		d.ops[lastIdx] = op
		d.modCount++
		return d
	}

	if last.IsInsert() && op.IsInsert() && last.Attributes().Equal(op.Attributes()) {
		d.ops[lastIdx] = NewInsert(last.Text()+op.Text(), last.Attributes())
		d.modCount++
		return d
	}

	if last.IsRetain() && op.IsRetain() && last.Attributes().Equal(op.Attributes()) {
		d.ops[lastIdx] = NewRetain(last.Len()+op.Len(), last.Attributes())
		d.modCount++
		return d
	}

	d.ops = append(d.ops, op)
	d.modCount++
	return d
}

// Trim removes a trailing plain (unattributed) retain, if present.
// Returns d for chaining.
func (d *Delta) Trim() *Delta {
	if len(d.ops) == 0 {
		return d
	}
	last := d.ops[len(d.ops)-1]
	if last.IsRetain() && last.IsPlain() {
		d.ops = d.ops[:len(d.ops)-1]
		d.modCount++
	}
	return d
}

// Clone returns a deep-enough copy of d: a new Delta with its own ops
// slice (Operations themselves are immutable, so they are shared).
func (d *Delta) Clone() *Delta {
	out := &Delta{ops: make([]Operation, len(d.ops))}
	copy(out.ops, d.ops)
	return out
}

// Concat returns a new Delta consisting of d's operations followed by
// other's, merging across the boundary the way Push would (so a trailing
// insert of d and a leading compatible insert of other coalesce).
func (d *Delta) Concat(other *Delta) *Delta {
	result := d.Clone()
	if other.Len() == 0 {
		return result
	}
	result.Push(other.ops[0])
	if other.Len() > 1 {
		result.ops = append(result.ops, other.ops[1:]...)
		result.modCount++
	}
	return result
}

// MarshalJSON encodes d in its wire shape: a bare JSON array of
// Operations ("[]" for an empty Delta).
func (d *Delta) MarshalJSON() ([]byte, error) {
	if d.ops == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.ops)
}

// UnmarshalJSON decodes a Delta from a JSON array of Operations, rebuilding
// normal form by Push-ing each one in turn (input need not already be
// normalized).
func (d *Delta) UnmarshalJSON(data []byte) error {
	var ops []Operation
	if err := json.Unmarshal(data, &ops); err != nil {
		return err
	}
	*d = Delta{}
	for _, op := range ops {
		d.Push(op)
	}
	return nil
}
