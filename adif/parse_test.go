package adif

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, input string) *Document {
	t.Helper()
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestParse_HeaderAndRecord(t *testing.T) {
	doc := mustParse(t, "<ADIF_VER:5>3.1.4<EOH><CALL:4>W1AW<QSO_DATE:8>20230115<TIME_ON:4>1230<EOR>")

	if doc.Header.Len() != 1 {
		t.Fatalf("Expected 1 header field, got %d", doc.Header.Len())
	}
	if s, _ := doc.Header.Get("ADIF_VER").AsStr(); s != "3.1.4" {
		t.Errorf("Expected ADIF_VER 3.1.4, got %q", s)
	}

	if len(doc.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(doc.Records))
	}
	rec := doc.Records[0]
	if s, _ := rec.Get("CALL").AsStr(); s != "W1AW" {
		t.Errorf("Expected CALL W1AW, got %q", s)
	}
	if y, m, d, _ := rec.Get("QSO_DATE").AsDate(); y != 2023 || m != 1 || d != 15 {
		t.Errorf("Expected date 2023-01-15, got %d-%d-%d", y, m, d)
	}
	if h, min, _, _ := rec.Get("TIME_ON").AsTime(); h != 12 || min != 30 {
		t.Errorf("Expected time 12:30, got %d:%d", h, min)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	for _, input := range []string{"", "just some free text", "<EOH>"} {
		t.Run(input, func(t *testing.T) {
			doc := mustParse(t, input)
			if doc.Header.Len() != 0 || len(doc.Records) != 0 {
				t.Errorf("Expected empty document, got %d header fields, %d records",
					doc.Header.Len(), len(doc.Records))
			}
		})
	}
}

func TestParse_HeaderIsOptional(t *testing.T) {
	doc := mustParse(t, "<CALL:4>W1AW<EOR>")
	if doc.Header.Len() != 0 {
		t.Errorf("Expected empty header, got %d fields", doc.Header.Len())
	}
	if len(doc.Records) != 1 || doc.Records[0].Get("CALL") == nil {
		t.Fatalf("Expected one record with CALL, got %+v", doc.Records)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	doc := mustParse(t, "<PROGRAMID:6>hamlog<EOH>")
	if doc.Header.Len() != 1 || len(doc.Records) != 0 {
		t.Errorf("Expected header-only document, got %d records", len(doc.Records))
	}
}

func TestParse_MultipleRecords(t *testing.T) {
	doc := mustParse(t, "<EOH><CALL:4>W1AW<EOR><CALL:5>VE3XY<EOR><CALL:6>N0CALL<EOR>")
	if len(doc.Records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(doc.Records))
	}
	calls := []string{"W1AW", "VE3XY", "N0CALL"}
	for i, want := range calls {
		if s, _ := doc.Records[i].Get("CALL").AsStr(); s != want {
			t.Errorf("Record %d: expected %q, got %q", i, want, s)
		}
	}
}

func TestParse_RedundantEOHIgnored(t *testing.T) {
	a := mustParse(t, "<ADIF_VER:5>3.1.4<EOH><EOH><CALL:4>W1AW<EOR>")
	b := mustParse(t, "<ADIF_VER:5>3.1.4<EOH><CALL:4>W1AW<EOR>")
	if !a.Equal(b) {
		t.Error("Document with doubled <EOH> should parse identically")
	}
}

func TestParse_StrayEORIgnored(t *testing.T) {
	doc := mustParse(t, "<EOR><EOH><EOR><CALL:4>W1AW<EOR><EOR>")
	if len(doc.Records) != 1 {
		t.Errorf("Stray <EOR> markers should produce no empty records, got %d records",
			len(doc.Records))
	}
}

func TestParse_DuplicateFieldLastWriteWins(t *testing.T) {
	doc := mustParse(t, "<EOH><CALL:4>ABCD<CALL:4>WXYZ<EOR>")
	rec := doc.Records[0]
	if rec.Len() != 1 {
		t.Fatalf("Expected 1 field, got %d", rec.Len())
	}
	if s, _ := rec.Get("CALL").AsStr(); s != "WXYZ" {
		t.Errorf("Expected last write WXYZ, got %q", s)
	}
}

func TestParse_CaseInsensitiveNames(t *testing.T) {
	doc := mustParse(t, "<eoh><call:4>W1AW<Call:5>VE3XY<eor>")
	rec := doc.Records[0]
	if rec.Len() != 1 {
		t.Fatalf("Differently-cased duplicates should collapse, got %d fields", rec.Len())
	}
	if s, _ := rec.Get("CALL").AsStr(); s != "VE3XY" {
		t.Errorf("Expected VE3XY, got %q", s)
	}
}

func TestParse_UnterminatedRecord(t *testing.T) {
	tests := []string{
		"<EOH><CALL:4>W1AW",
		"<CALL:4>W1AW",
		"<EOH><CALL:4>W1AW<EOR><MODE:2>CW",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			var perr *ParseError
			if !errors.As(err, &perr) || perr.Kind != ErrUnexpectedEndOfInput {
				t.Fatalf("Expected unexpected end of input, got %v", err)
			}
			if perr.Offset != len(input) {
				t.Errorf("Expected offset %d, got %d", len(input), perr.Offset)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"truncated value", "<CALL:9>W1AW", ErrTruncatedValue},
		{"bad tag", "<EOH><CALL:x>W1AW<EOR>", ErrTagSyntax},
		{"bad date with hint", "<QSO_DATE:8:DATE>2023011X<EOR>", ErrInvalidFieldValue},
		{"bad date by name", "<EOH><QSO_DATE:8>20231345<EOR>", ErrInvalidFieldValue},
		{"bad number", "<EOH><FREQ:3>abc<EOR>", ErrInvalidFieldValue},
		{"bad boolean", "<EOH><SWL:1>X<EOR>", ErrInvalidFieldValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %v", err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, perr.Kind)
			}
		})
	}
}

func TestParse_InvalidValueAbortsWholeParse(t *testing.T) {
	// A bad value in record 2 fails the parse even though record 1 is fine.
	_, err := Parse("<EOH><CALL:4>W1AW<EOR><FREQ:3>abc<EOR>")
	if err == nil {
		t.Fatal("Expected error, got none")
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ErrInvalidFieldValue {
		t.Fatalf("Expected invalid field value, got %v", err)
	}
}

func TestParse_WhitespaceBetweenFields(t *testing.T) {
	pretty := "<ADIF_VER:5>3.1.4\n<EOH>\n\n<CALL:4>W1AW\n<QSO_DATE:8>20230115\n<EOR>\n"
	compact := "<ADIF_VER:5>3.1.4<EOH><CALL:4>W1AW<QSO_DATE:8>20230115<EOR>"
	if !mustParse(t, pretty).Equal(mustParse(t, compact)) {
		t.Error("Formatting between fields should not change the parsed document")
	}
}
