package adif

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind uint8

const (
	// ErrTagSyntax: malformed tag — unterminated, empty name, or a
	// non-numeric length. Offsets after a corrupt tag cannot be trusted,
	// so the whole parse aborts.
	ErrTagSyntax ErrorKind = iota + 1

	// ErrTruncatedValue: a tag declared more value bytes than remain in
	// the input.
	ErrTruncatedValue

	// ErrInvalidFieldValue: value bytes do not match the field's
	// datatype grammar or valid range.
	ErrInvalidFieldValue

	// ErrUnexpectedEndOfInput: input ended with an open record (fields
	// accumulated but no closing <EOR>).
	ErrUnexpectedEndOfInput
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrTagSyntax:
		return "tag syntax"
	case ErrTruncatedValue:
		return "truncated value"
	case ErrInvalidFieldValue:
		return "invalid field value"
	case ErrUnexpectedEndOfInput:
		return "unexpected end of input"
	default:
		return "unknown"
	}
}

// ParseError is the single error type surfaced by Parse. There is no
// internal recovery and no partial-document mode: every error aborts the
// parse and reaches the caller with its byte offset.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Offset  int // byte offset into the input

	// Populated for ErrInvalidFieldValue.
	Name string   // canonical field name
	Want DataType // expected datatype
	Raw  string   // offending value bytes
}

func (e *ParseError) Error() string {
	if e.Kind == ErrInvalidFieldValue {
		return fmt.Sprintf("adif: %s: field %s: %s %q at offset %d",
			e.Kind, e.Name, e.Message, e.Raw, e.Offset)
	}
	return fmt.Sprintf("adif: %s: %s at offset %d", e.Kind, e.Message, e.Offset)
}

func syntaxErr(offset int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrTagSyntax, Message: fmt.Sprintf(format, args...), Offset: offset}
}

func truncatedErr(offset int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrTruncatedValue, Message: fmt.Sprintf(format, args...), Offset: offset}
}

func valueErr(offset int, name string, want DataType, raw, msg string) *ParseError {
	return &ParseError{
		Kind:    ErrInvalidFieldValue,
		Message: msg,
		Offset:  offset,
		Name:    name,
		Want:    want,
		Raw:     raw,
	}
}
