package adif

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between a Document and a plain JSON shape:
//
//	{"header": {"ADIF_VER": "3.1.4"},
//	 "records": [{"CALL": "W1AW", "FREQ": 7.074, "QSO_RANDOM": true,
//	              "QSO_DATE": "20230115"}]}
//
// Numbers and booleans map to their native JSON types; dates and times
// keep their wire form as strings. Going back, native JSON types map
// directly and strings are re-typed through the field table, so
// "20230115" under QSO_DATE becomes a date again.
//
// A value whose type the field table would not recover — a plain string
// under a number-typed name, or a date/time under a name the table does
// not type — is wrapped in a marker object instead, the same cases the
// ADI emitter handles with an explicit type indicator:
//
//	{"FREQ": {"$type": "string", "value": "7.074/7.076"}}

type jsonDocument struct {
	Header  map[string]any   `json:"header"`
	Records []map[string]any `json:"records"`
}

// ToJSON converts a document to JSON. indent is applied as with
// json.MarshalIndent; pass "" for compact output. Field order inside
// header and records follows JSON object conventions (sorted keys);
// record order is preserved.
func ToJSON(doc *Document, indent string) ([]byte, error) {
	jd := jsonDocument{
		Header:  fieldsToJSON(doc.Header.Fields()),
		Records: make([]map[string]any, 0, len(doc.Records)),
	}
	for i := range doc.Records {
		jd.Records = append(jd.Records, fieldsToJSON(doc.Records[i].Fields()))
	}
	if indent == "" {
		return json.Marshal(jd)
	}
	return json.MarshalIndent(jd, "", indent)
}

func fieldsToJSON(fields []Field) map[string]any {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Name] = valueToJSON(f.Name, f.Value)
	}
	return m
}

func valueToJSON(name string, v *Value) any {
	switch v.Type() {
	case TypeNumber:
		n, _ := v.AsNumber()
		return n
	case TypeBoolean:
		b, _ := v.AsBool()
		return b
	default:
		// Strings verbatim; dates and times in wire form. When the field
		// table would re-type the string differently on the way back, the
		// value needs an explicit type marker to round-trip.
		if FieldType(name, "") != v.Type() {
			return map[string]any{"$type": v.Type().String(), "value": v.Text()}
		}
		return v.Text()
	}
}

// FromJSON converts the JSON shape back to a Document. Fields inside each
// object are applied in sorted name order so the resulting document is
// deterministic.
func FromJSON(data []byte) (*Document, error) {
	var jd jsonDocument
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, fmt.Errorf("adif: parse json: %w", err)
	}

	doc := &Document{}
	if err := fieldsFromJSON(&doc.Header.fieldList, jd.Header); err != nil {
		return nil, fmt.Errorf("adif: header: %w", err)
	}
	for i, rm := range jd.Records {
		var rec Record
		if err := fieldsFromJSON(&rec.fieldList, rm); err != nil {
			return nil, fmt.Errorf("adif: record %d: %w", i, err)
		}
		doc.Records = append(doc.Records, rec)
	}
	return doc, nil
}

func fieldsFromJSON(dst *fieldList, src map[string]any) error {
	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v, err := valueFromJSON(name, src[name])
		if err != nil {
			return err
		}
		dst.Set(name, v)
	}
	return nil
}

func valueFromJSON(name string, raw any) (*Value, error) {
	switch val := raw.(type) {
	case bool:
		return Bool(val), nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf("field %s: non-finite number", name)
		}
		return Number(val), nil
	case string:
		// Strings re-type through the field table: a date-typed name must
		// hold a valid wire date, an untyped name stays a string.
		v, err := decodeField(Tag{Kind: TagField, Name: CanonicalName(name), Value: val})
		if err != nil {
			return nil, err
		}
		return v, nil
	case map[string]any:
		return valueFromTypedJSON(name, val)
	case nil:
		return nil, fmt.Errorf("field %s: null is not a field value", name)
	default:
		return nil, fmt.Errorf("field %s: unsupported JSON value %T", name, raw)
	}
}

// valueFromTypedJSON decodes a {"$type": ..., "value": ...} marker object,
// bypassing the field table.
func valueFromTypedJSON(name string, m map[string]any) (*Value, error) {
	tn, _ := m["$type"].(string)
	raw, ok := m["value"].(string)
	if tn == "" || !ok {
		return nil, fmt.Errorf("field %s: unsupported JSON object value", name)
	}

	hint := ""
	switch tn {
	case "string":
		return Str(raw), nil
	case "number":
		hint = "N"
	case "boolean":
		hint = "B"
	case "date":
		hint = "D"
	case "time":
		hint = "T"
	default:
		return nil, fmt.Errorf("field %s: unknown $type %q", name, tn)
	}
	return decodeField(Tag{Kind: TagField, Name: CanonicalName(name), TypeHint: hint, Value: raw})
}
