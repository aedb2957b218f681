package kernel

import (
	"haulage/internal/pkg/errs"
)

// Document is a value object for an uploaded regulatory document reference
// that is either present or missing. The tagged representation replaces
// nullable reference columns in the domain model, so compliance checks can
// branch on presence explicitly.
//
// The zero value is a valid missing document.
type Document struct {
	present bool
	ref     string
}

// MissingDocument returns a Document with nothing on file.
func MissingDocument() Document {
	return Document{}
}

// PresentDocument returns a Document backed by the given storage reference.
// The reference must be non-empty; a present document without a reference
// would be indistinguishable from a missing one at the storage boundary.
func PresentDocument(ref string) (Document, error) {
	if ref == "" {
		return Document{}, errs.NewValueIsRequiredError("document reference")
	}
	return Document{present: true, ref: ref}, nil
}

// IsPresent reports whether a document is on file.
func (d Document) IsPresent() bool {
	return d.present
}

// Ref returns the storage reference and whether a document is on file.
func (d Document) Ref() (string, bool) {
	return d.ref, d.present
}
