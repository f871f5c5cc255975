// Package document provides the minimal document abstraction a Delta's
// edit script is applied against: a plain string, addressed by byte
// offset to match the length unit pkg/delta uses for its operations (see
// SPEC_FULL.md §4).
//
// Adapted from the teacher's pkg/ot Document interface and StringDocument
// (ot/document.go, ot/string_document.go); unlike the teacher, there is
// no UTF-16 code-unit translation layer here, since this package's host
// string representation is already the unit Delta lengths are counted in.
package document

import (
	"fmt"

	"github.com/Teqnological-Asia/quill-markdown/pkg/delta"
)

// Document is an editable plain-text document a Delta can be applied to.
type Document interface {
	// Length returns the document's length in bytes.
	Length() int
	// String returns the document's content.
	String() string
	// Slice returns the [start:end) byte range of the document.
	Slice(start, end int) string
	// Clone returns an independent copy of the document.
	Clone() Document
}

// StringDocument is a string-backed Document.
type StringDocument struct {
	content string
}

// New returns a StringDocument holding content.
func New(content string) *StringDocument {
	return &StringDocument{content: content}
}

// Length returns the number of bytes in the document.
func (d *StringDocument) Length() int { return len(d.content) }

// String returns the document's content.
func (d *StringDocument) String() string { return d.content }

// Slice returns the [start:end) byte range of the document.
func (d *StringDocument) Slice(start, end int) string { return d.content[start:end] }

// Clone returns an independent copy of d.
func (d *StringDocument) Clone() Document { return &StringDocument{content: d.content} }

// Apply applies delta's edit script to doc's content and returns the
// resulting text. delta's leading retains/deletes must not exceed doc's
// length; any retain past the consumed length behaves as if the document
// had an implicit trailing plain retain (that is, applying a Delta
// shorter than the document leaves the remainder untouched).
func Apply(doc Document, d *delta.Delta) (string, error) {
	content := doc.String()
	pos := 0
	var out []byte

	for i := 0; i < d.Len(); i++ {
		op := d.At(i)
		switch op.Kind() {
		case delta.KindInsert:
			out = append(out, op.Text()...)

		case delta.KindRetain:
			end := pos + op.Len()
			if end > len(content) {
				return "", fmt.Errorf("document: retain past end of document (%d > %d)", end, len(content))
			}
			out = append(out, content[pos:end]...)
			pos = end

		case delta.KindDelete:
			end := pos + op.Len()
			if end > len(content) {
				return "", fmt.Errorf("document: delete past end of document (%d > %d)", end, len(content))
			}
			pos = end
		}
	}

	out = append(out, content[pos:]...)
	return string(out), nil
}
