package domain

import (
	"errors"
	"strconv"
)

// Severity classifies an annotation. Errors mark a node whose data could not
// be recovered; warnings mark partial data loss on a non-critical field.
type Severity string

// Severity values.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// AnnotationKind is the machine-readable cause of an annotation.
type AnnotationKind string

// AnnotationKind values.
const (
	KindMissingDelegate  AnnotationKind = "missing_delegate"
	KindCryptoFailure    AnnotationKind = "crypto_failure"
	KindLookupFailure    AnnotationKind = "lookup_failure"
	KindInvalidReference AnnotationKind = "invalid_reference"
)

// Annotation records a non-fatal failure at one node of a payload. Annotations
// are kept beside the payload, never inside it.
type Annotation struct {
	Path     Path           `json:"path"`
	Severity Severity       `json:"severity"`
	Kind     AnnotationKind `json:"kind"`
	Message  string         `json:"message"`
}

// KindOf maps an error to the annotation kind used to report it.
func KindOf(err error) AnnotationKind {
	switch {
	case errors.Is(err, ErrMissingDelegate):
		return KindMissingDelegate
	case errors.Is(err, ErrLookupFailure), errors.Is(err, ErrNotFound):
		return KindLookupFailure
	case errors.Is(err, ErrInvalidReference):
		return KindInvalidReference
	default:
		return KindCryptoFailure
	}
}

// Path addresses a node inside a payload, e.g. "activity.children[2].object".
type Path string

// Child returns the path of a named field below p.
func (p Path) Child(name string) Path {
	if p == "" {
		return Path(name)
	}
	return p + "." + Path(name)
}

// Index returns the path of the i-th element of the list field name below p.
func (p Path) Index(name string, i int) Path {
	return p.Child(name + "[" + strconv.Itoa(i) + "]")
}

func (p Path) String() string {
	return string(p)
}
