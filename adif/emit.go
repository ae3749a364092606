package adif

import (
	"strconv"
	"strings"
)

// EmitOptions configures the encoder's layout. Layout never changes what a
// document parses back to: text between tags is ignored by the lexer, so
// every option produces a stream that re-parses to the same document.
type EmitOptions struct {
	// Pretty writes one field per line and a blank line between records.
	Pretty bool

	// LowercaseMarkers emits <eoh>/<eor> instead of <EOH>/<EOR>, for
	// consumers that expect the lowercase convention.
	LowercaseMarkers bool
}

// Emit serializes a document compactly. Encoding never fails: every Value
// a caller can construct has a defined wire form, and the declared length
// of each field is computed from the serialized value actually written.
func Emit(doc *Document) string {
	return EmitWithOptions(doc, EmitOptions{})
}

// EmitWithOptions serializes a document with explicit layout options.
func EmitWithOptions(doc *Document, opts EmitOptions) string {
	e := &emitter{opts: opts}
	e.document(doc)
	return e.sb.String()
}

type emitter struct {
	sb   strings.Builder
	opts EmitOptions
}

func (e *emitter) document(doc *Document) {
	for _, f := range doc.Header.Fields() {
		e.field(f)
	}
	e.marker("EOH")
	for i := range doc.Records {
		if e.opts.Pretty && i > 0 {
			e.sb.WriteByte('\n')
		}
		for _, f := range doc.Records[i].Fields() {
			e.field(f)
		}
		e.marker("EOR")
	}
}

// field writes <NAME:len[:ind]>value. The length is the byte length of the
// serialized value, measured after serialization, which is what guarantees
// the output re-parses.
func (e *emitter) field(f Field) {
	name := CanonicalName(f.Name)
	value := f.Value.Text()
	e.sb.WriteByte('<')
	e.sb.WriteString(name)
	e.sb.WriteByte(':')
	e.sb.WriteString(strconv.Itoa(len(value)))
	ind := f.Value.Type().Indicator()
	if ind == "" && FieldType(name, "") != TypeString {
		// A string stored under a name the table types differently needs
		// an explicit S so it re-parses as a string.
		ind = "S"
	}
	if ind != "" {
		e.sb.WriteByte(':')
		e.sb.WriteString(ind)
	}
	e.sb.WriteByte('>')
	e.sb.WriteString(value)
	if e.opts.Pretty {
		e.sb.WriteByte('\n')
	}
}

func (e *emitter) marker(name string) {
	if e.opts.LowercaseMarkers {
		name = strings.ToLower(name)
	}
	e.sb.WriteByte('<')
	e.sb.WriteString(name)
	e.sb.WriteByte('>')
	if e.opts.Pretty {
		e.sb.WriteByte('\n')
	}
}
