package adif

// Parse decodes a complete ADI document. The caller reads the file into
// memory first; the codec performs no I/O. Errors are always *ParseError
// with a byte offset, and any error aborts the parse — there is no
// partial-document recovery, because offsets after a corrupt tag cannot be
// trusted.
//
// Assembly rules, matching what fielded logging programs produce:
//   - fields before <EOH> form the header; a file with no <EOH> has an
//     empty header
//   - a duplicate field name within a block overwrites the earlier value
//     (incremental loggers append corrections)
//   - a second <EOH> and an <EOR> with no pending fields are stray markers
//     and are ignored
//   - a trailing field block without <EOR> is an error: every record must
//     be explicitly closed
func Parse(input string) (*Document, error) {
	lexer := NewLexer(input)
	doc := &Document{}

	var pending fieldList
	headerDone := false

	for {
		tag, err := lexer.Next()
		if err != nil {
			return nil, err
		}

		switch tag.Kind {
		case TagField:
			v, err := decodeField(tag)
			if err != nil {
				return nil, err
			}
			pending.Set(tag.Name, v)

		case TagEOH:
			if headerDone {
				continue
			}
			doc.Header.fieldList = pending
			pending = fieldList{}
			headerDone = true

		case TagEOR:
			if pending.Len() == 0 {
				continue
			}
			doc.Records = append(doc.Records, Record{fieldList: pending})
			pending = fieldList{}

		case TagEOF:
			if pending.Len() > 0 {
				return nil, &ParseError{
					Kind:    ErrUnexpectedEndOfInput,
					Message: "input ends with an unterminated record",
					Offset:  tag.Offset,
				}
			}
			return doc, nil
		}
	}
}
