package adif

import (
	"strconv"
	"strings"
)

// TagKind classifies a lexed tag.
type TagKind uint8

const (
	TagEOF   TagKind = iota // end of input
	TagField                // <NAME:len[:type]>value
	TagEOH                  // <EOH> end-of-header marker
	TagEOR                  // <EOR> end-of-record marker
)

// String returns the tag kind name.
func (k TagKind) String() string {
	switch k {
	case TagEOF:
		return "EOF"
	case TagField:
		return "FIELD"
	case TagEOH:
		return "EOH"
	case TagEOR:
		return "EOR"
	default:
		return "UNKNOWN"
	}
}

// Tag is one lexed tag. For TagField, Name is canonical (uppercase),
// TypeHint is the uppercased type indicator or "", and Value holds exactly
// the declared number of raw bytes. Offset is the byte offset of the
// opening '<'.
type Tag struct {
	Kind     TagKind
	Name     string
	TypeHint string
	Value    string
	Offset   int
}

// Lexer scans ADI text for length-prefixed tags. Text between tags is
// ignored; the format reserves it for comments and incidental whitespace.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a lexer over the full input text.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next tag, or a TagEOF tag at end of input. The value
// bytes of a field tag are consumed by length, never by delimiter, so a
// value may contain '<' and '>' freely.
func (l *Lexer) Next() (Tag, error) {
	lt := strings.IndexByte(l.input[l.pos:], '<')
	if lt < 0 {
		l.pos = len(l.input)
		return Tag{Kind: TagEOF, Offset: l.pos}, nil
	}
	start := l.pos + lt

	gt := strings.IndexByte(l.input[start:], '>')
	if gt < 0 {
		return Tag{}, syntaxErr(start, "unterminated tag")
	}
	body := l.input[start+1 : start+gt]
	l.pos = start + gt + 1

	name, rest, hasLen := strings.Cut(body, ":")
	name = CanonicalName(name)

	if !hasLen {
		switch name {
		case "EOH":
			return Tag{Kind: TagEOH, Name: name, Offset: start}, nil
		case "EOR":
			return Tag{Kind: TagEOR, Name: name, Offset: start}, nil
		}
		return Tag{}, syntaxErr(start, "tag %q has no length", name)
	}
	if name == "" {
		return Tag{}, syntaxErr(start, "tag has empty name")
	}

	lenStr, hint, _ := strings.Cut(rest, ":")
	if !isDigits(lenStr) {
		return Tag{}, syntaxErr(start, "tag %q has invalid length %q", name, lenStr)
	}
	length, err := strconv.Atoi(lenStr)
	if err != nil {
		return Tag{}, syntaxErr(start, "tag %q has invalid length %q", name, lenStr)
	}

	if len(l.input)-l.pos < length {
		return Tag{}, truncatedErr(start, "field %s declares %d value bytes, %d remain",
			name, length, len(l.input)-l.pos)
	}
	value := l.input[l.pos : l.pos+length]
	l.pos += length

	return Tag{
		Kind:     TagField,
		Name:     name,
		TypeHint: strings.ToUpper(hint),
		Value:    value,
		Offset:   start,
	}, nil
}

// isDigits reports whether s is non-empty and entirely ASCII digits.
func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Tokenize returns all tags from the input, ending with a TagEOF tag.
func (l *Lexer) Tokenize() ([]Tag, error) {
	var tags []Tag
	for {
		tag, err := l.Next()
		if err != nil {
			return tags, err
		}
		tags = append(tags, tag)
		if tag.Kind == TagEOF {
			return tags, nil
		}
	}
}
