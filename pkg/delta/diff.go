package delta

import "github.com/sergi/go-diff/diffmatchpatch"

// Diff returns the Delta that transforms oldText into newText: applying
// it to a Delta holding oldText as a single insert (see NewDelta().
// Insert(oldText, nil)) composes to newText.
//
// Adapted from the teacher's PatchManager.ComputeDiff (patch_manager.go),
// which runs the same diffmatchpatch.DiffMain pass for version-history
// patches; here the equal/insert/delete runs it reports are folded into
// retain/insert/delete operations instead of a compact patch string.
func Diff(oldText, newText string) *Delta {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	result := NewDelta()
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			result.Insert(d.Text, nil)
		case diffmatchpatch.DiffDelete:
			result.Delete(len(d.Text))
		case diffmatchpatch.DiffEqual:
			result.Retain(len(d.Text), nil)
		}
	}
	result.Trim()
	return result
}
