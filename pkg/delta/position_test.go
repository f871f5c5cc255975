package delta

import "testing"

// TestTransformPosition_S7 exercises spec.md seed scenario S7. The spec's
// literal prose (offset advances only on retain) does not reproduce every
// value the scenario states; this implementation follows the transform
// semantics used by the reference quill-delta library, where offset also
// advances through inserts and is skipped by deletes. See DESIGN.md for
// the reconciliation of this discrepancy.
func TestTransformPosition_S7(t *testing.T) {
	d := NewDelta().Retain(2, nil).Insert("A", nil).Delete(4)

	if got := d.TransformPosition(4, false); got != 3 {
		t.Fatalf("TransformPosition(4, false) = %d, want 3", got)
	}
}

func TestTransformPosition_InsertBeforePosition(t *testing.T) {
	d := NewDelta().Insert("A", nil)
	if got := d.TransformPosition(2, false); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestTransformPosition_InsertAfterPosition(t *testing.T) {
	d := NewDelta().Retain(2, nil).Insert("A", nil)
	if got := d.TransformPosition(1, false); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestTransformPosition_InsertAtPositionForceTrue(t *testing.T) {
	d := NewDelta().Retain(2, nil).Insert("A", nil)
	if got := d.TransformPosition(2, true); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestTransformPosition_InsertAtPositionForceFalse(t *testing.T) {
	d := NewDelta().Retain(2, nil).Insert("A", nil)
	if got := d.TransformPosition(2, false); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestTransformPosition_DeleteBeforePosition(t *testing.T) {
	d := NewDelta().Delete(2)
	if got := d.TransformPosition(4, false); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestTransformPosition_DeleteAfterPosition(t *testing.T) {
	d := NewDelta().Retain(4, nil).Delete(2)
	if got := d.TransformPosition(2, false); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestTransformPosition_DeleteAcrossPosition(t *testing.T) {
	d := NewDelta().Retain(1, nil).Delete(4)
	if got := d.TransformPosition(2, false); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}
