// Package adif implements a codec for the ADI amateur-radio log
// interchange format: a length-prefixed, tagged-field text format used to
// exchange contact-log records between logging programs.
//
// An ADI file is a flat stream of fields. Each field is a tag immediately
// followed by its value:
//
//	<FIELDNAME:LENGTH[:TYPE]>value
//
// LENGTH is the byte length of the value; the value may contain any
// character, including '<', because the length prefix is authoritative and
// there is no escape syntax. Text between fields (newlines, indentation,
// leading comments) carries no meaning and is ignored.
//
// Fields before the <EOH> marker form the header; after that, each group of
// fields terminated by <EOR> forms one record:
//
//	generated by hamlog
//	<ADIF_VER:5>3.1.4
//	<EOH>
//	<CALL:4>W1AW <QSO_DATE:8>20230115 <TIME_ON:4>1230 <EOR>
//
// # Data Model
//
// Scalars: string, number, boolean, date, time. A field's datatype comes
// from the explicit tag type indicator when present (N, B, D, T), otherwise
// from a built-in table of well-known field names, otherwise it is a
// string. Unknown field names are preserved verbatim, so logs carrying
// application-defined fields round-trip untouched.
//
// # Usage
//
//	doc, err := adif.Parse(input)
//	if err != nil { ... }
//	out := adif.Emit(doc)
//
// Parsing is strict: a malformed tag, a truncated value, a value that does
// not match its datatype, or an unterminated trailing record aborts the
// parse with a *ParseError carrying the byte offset. Encoding never fails.
//
// # Known Sharp Edge
//
// The format has no field delimiters; the declared length is the only thing
// separating a value from the next tag. If a producer writes a wrong
// length, the lexer resynchronizes at the wrong place and misreads the
// rest of the stream. This is inherent to ADI and is not detected here.
package adif
