package delta

import (
	"encoding/json"
	"fmt"
)

// Kind is the tag of an Operation.
type Kind int

const (
	// KindRetain skips over existing content, optionally restyling it.
	KindRetain Kind = iota
	// KindInsert introduces new text, optionally styled.
	KindInsert
	// KindDelete removes existing content.
	KindDelete
)

// String returns a debug label for k.
func (k Kind) String() string {
	switch k {
	case KindRetain:
		return "retain"
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// infinity is the sentinel length a DeltaIterator reports once it has run
// past the end of its Delta. It is large enough that no real document will
// ever approach it, but still an ordinary int so PeekLength's min()
// arithmetic stays simple.
const infinity = int(^uint(0) >> 1)

// Operation is an immutable insert, delete, or retain. Construct one with
// NewInsert, NewDelete, or NewRetain; the zero value is not a valid
// Operation.
type Operation struct {
	kind  Kind
	len   int
	text  string
	attrs Attributes
}

// NewInsert returns an insert Operation of text, carrying attrs (which may
// be nil). Length is the number of bytes in text.
func NewInsert(text string, attrs Attributes) Operation {
	return Operation{kind: KindInsert, len: len(text), text: text, attrs: normalizeAttrs(attrs)}
}

// NewDelete returns a delete Operation of n bytes. n must be non-negative.
func NewDelete(n int) Operation {
	return Operation{kind: KindDelete, len: n}
}

// NewRetain returns a retain Operation of n bytes, carrying attrs (which
// may be nil). n must be non-negative.
func NewRetain(n int, attrs Attributes) Operation {
	return Operation{kind: KindRetain, len: n, attrs: normalizeAttrs(attrs)}
}

// Kind returns op's tag.
func (op Operation) Kind() Kind { return op.kind }

// Len returns op's length in bytes.
func (op Operation) Len() int { return op.len }

// Text returns op's inserted text. It is empty for delete and retain.
func (op Operation) Text() string { return op.text }

// Attributes returns op's attribute map, or nil if it carries none.
func (op Operation) Attributes() Attributes { return op.attrs }

// IsInsert, IsDelete, and IsRetain report op's Kind.
func (op Operation) IsInsert() bool { return op.kind == KindInsert }
func (op Operation) IsDelete() bool { return op.kind == KindDelete }
func (op Operation) IsRetain() bool { return op.kind == KindRetain }

// IsPlain reports whether op carries no (or no meaningful) attributes.
func (op Operation) IsPlain() bool { return op.attrs.IsEmpty() }

// IsEmpty reports whether op has zero length.
func (op Operation) IsEmpty() bool { return op.len == 0 }

// Equal reports structural equality: same kind, length, text, and
// attribute map.
func (op Operation) Equal(other Operation) bool {
	return op.kind == other.kind &&
		op.len == other.len &&
		op.text == other.text &&
		op.attrs.Equal(other.attrs)
}

// withAttributes returns a copy of op carrying attrs instead of its own.
// Used internally by the algorithms; op's kind and length are preserved.
func (op Operation) withAttributes(attrs Attributes) Operation {
	op.attrs = normalizeAttrs(attrs)
	return op
}

// sliceText returns the [start:end) byte slice of op's text, for an
// insert op only; callers must not call this on delete/retain.
func (op Operation) sliceText(start, end int) string {
	return op.text[start:end]
}

// jsonOperation is the wire shape of an Operation: exactly one of Insert,
// Delete, Retain is populated, with an optional sibling Attributes key.
type jsonOperation struct {
	Insert     *string                `json:"insert,omitempty"`
	Delete     *int                   `json:"delete,omitempty"`
	Retain     *int                   `json:"retain,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// MarshalJSON encodes op per spec.md §6.1: exactly one of
// insert/delete/retain plus an optional attributes sibling.
func (op Operation) MarshalJSON() ([]byte, error) {
	j := jsonOperation{Attributes: map[string]interface{}(op.attrs)}
	switch op.kind {
	case KindInsert:
		text := op.text
		j.Insert = &text
	case KindDelete:
		n := op.len
		j.Delete = &n
	case KindRetain:
		n := op.len
		j.Retain = &n
	default:
		return nil, fmt.Errorf("%w: marshal unknown kind %v", ErrUnreachableState, op.kind)
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes an Operation from its wire shape, rejecting
// malformed input per spec.md §7: missing/ambiguous key, negative length,
// or an insert whose declared length need not match (insert length is
// derived from the text itself, so there is nothing to disagree with,
// but a non-string insert value or non-integer delete/retain value is
// rejected).
func (op *Operation) UnmarshalJSON(data []byte) error {
	var j jsonOperation
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOperation, err)
	}

	count := 0
	if j.Insert != nil {
		count++
	}
	if j.Delete != nil {
		count++
	}
	if j.Retain != nil {
		count++
	}
	if count != 1 {
		return fmt.Errorf("%w: exactly one of insert/delete/retain must be present, got %d", ErrMalformedOperation, count)
	}

	attrs := Attributes(j.Attributes)

	switch {
	case j.Insert != nil:
		if attrs.IsEmpty() {
			*op = NewInsert(*j.Insert, nil)
		} else {
			*op = NewInsert(*j.Insert, attrs)
		}
	case j.Delete != nil:
		if *j.Delete < 0 {
			return fmt.Errorf("%w: negative delete length %d", ErrMalformedOperation, *j.Delete)
		}
		*op = NewDelete(*j.Delete)
	case j.Retain != nil:
		if *j.Retain < 0 {
			return fmt.Errorf("%w: negative retain length %d", ErrMalformedOperation, *j.Retain)
		}
		if attrs.IsEmpty() {
			*op = NewRetain(*j.Retain, nil)
		} else {
			*op = NewRetain(*j.Retain, attrs)
		}
	}
	return nil
}
