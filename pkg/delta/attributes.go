package delta

import "reflect"

// Attributes is a name to JSON-compatible-value mapping describing rich
// text styling on an insert or retain Operation. A nil Attributes and an
// empty, non-nil one are behaviorally interchangeable; nil is the
// canonical form produced by this package.
//
// The value stored under a key may itself be a map[string]interface{} or
// []interface{} (compound JSON values); equality is deep.
type Attributes map[string]interface{}

// IsEmpty reports whether a has no entries (nil counts as empty).
func (a Attributes) IsEmpty() bool {
	return len(a) == 0
}

// Clone returns a shallow copy of a, or nil if a is empty.
func (a Attributes) Clone() Attributes {
	if a.IsEmpty() {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Equal reports whether a and b contain the same keys mapped to deeply
// equal values. A nil map and an empty map compare equal.
func (a Attributes) Equal(b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || !reflect.DeepEqual(v, bv) {
			return false
		}
	}
	return true
}

// normalizeAttrs collapses an empty, non-nil map to nil, the canonical
// "absent" form used throughout this package and in JSON output.
func normalizeAttrs(a Attributes) Attributes {
	if a.IsEmpty() {
		return nil
	}
	return a
}

// ComposeAttributes overlays b onto a, right-biased: keys present in both
// take b's value. If keepNull is false, any key whose final value is
// JSON null is dropped entirely (it denotes attribute removal); if
// keepNull is true, a null value is kept so a later compose downstream can
// still observe and apply the removal.
func ComposeAttributes(a, b Attributes, keepNull bool) Attributes {
	if a.IsEmpty() && b.IsEmpty() {
		return nil
	}
	out := make(Attributes, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	if !keepNull {
		for k, v := range out {
			if v == nil {
				delete(out, k)
			}
		}
	}
	return normalizeAttrs(out)
}

// TransformAttributes rewrites b so that it can be applied after a without
// re-applying a's effect on shared keys. If priority is false, b wins
// unconditionally (its attributes are returned verbatim). If priority is
// true, a is considered to have taken effect first, so b's entries at keys
// a also touches are suppressed.
func TransformAttributes(a, b Attributes, priority bool) Attributes {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return nil
	}
	if !priority {
		return b
	}
	out := make(Attributes, len(b))
	for k, v := range b {
		if _, clash := a[k]; !clash {
			out[k] = v
		}
	}
	return normalizeAttrs(out)
}

// InvertAttributes returns the attribute map that, composed with attr
// (which was applied against a range whose original attributes were
// base), restores base. Keys base held that attr changed are restored to
// base's value; keys attr introduced that base never had are marked for
// removal with an explicit null.
func InvertAttributes(attr, base Attributes) Attributes {
	out := make(Attributes)
	for k, baseVal := range base {
		if attrVal, ok := attr[k]; ok && !reflect.DeepEqual(baseVal, attrVal) {
			out[k] = baseVal
		}
	}
	for k := range attr {
		if _, inBase := base[k]; !inBase {
			out[k] = nil
		}
	}
	return normalizeAttrs(out)
}
