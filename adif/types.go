package adif

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DataType identifies the datatype of a field value.
type DataType uint8

const (
	TypeString DataType = iota
	TypeNumber
	TypeBoolean
	TypeDate
	TypeTime
)

// String returns the datatype name.
func (t DataType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	default:
		return "unknown"
	}
}

// Indicator returns the single-character type indicator emitted on the
// wire, or "" for types that are written without one.
func (t DataType) Indicator() string {
	switch t {
	case TypeNumber:
		return "N"
	case TypeBoolean:
		return "B"
	case TypeDate:
		return "D"
	case TypeTime:
		return "T"
	default:
		return ""
	}
}

// Value is one typed field value.
type Value struct {
	typ DataType

	// Scalar storage (only one valid based on typ)
	strVal  string
	numVal  float64
	boolVal bool

	// Date storage
	year, month, day int

	// Time storage
	hour, minute, second int
	withSeconds          bool
}

// ============================================================
// Constructors
// ============================================================

// Str creates a string value. Enumerated codes and any field whose name is
// not in the built-in table are represented as strings.
func Str(v string) *Value {
	return &Value{typ: TypeString, strVal: v}
}

// Number creates a numeric value. Non-finite inputs have no wire form:
// NaN becomes 0 and infinities saturate to the largest finite value.
func Number(v float64) *Value {
	switch {
	case math.IsNaN(v):
		v = 0
	case math.IsInf(v, 1):
		v = math.MaxFloat64
	case math.IsInf(v, -1):
		v = -math.MaxFloat64
	}
	return &Value{typ: TypeNumber, numVal: v}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{typ: TypeBoolean, boolVal: v}
}

// Date creates a calendar date value. Out-of-range components are
// normalized the same way time.Date normalizes them.
func Date(year, month, day int) *Value {
	y, m, d := normalizeDate(year, month, day)
	return &Value{typ: TypeDate, year: y, month: m, day: d}
}

// Time creates a time-of-day value with seconds (emitted as 6 digits).
// Out-of-range components wrap around the clock like time.Date.
func Time(hour, minute, second int) *Value {
	h, m, s := normalizeClock(hour, minute, second)
	return &Value{typ: TypeTime, hour: h, minute: m, second: s, withSeconds: true}
}

// ShortTime creates a time-of-day value without seconds (emitted as 4
// digits). Out-of-range components wrap around the clock like time.Date.
func ShortTime(hour, minute int) *Value {
	h, m, _ := normalizeClock(hour, minute, 0)
	return &Value{typ: TypeTime, hour: h, minute: m}
}

// ============================================================
// Accessors
// ============================================================

// Type returns the value's datatype.
func (v *Value) Type() DataType {
	if v == nil {
		return TypeString
	}
	return v.typ
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("adif: nil value")
	}
	if v.typ != TypeString {
		return "", fmt.Errorf("adif: expected string, got %s", v.typ)
	}
	return v.strVal, nil
}

// AsNumber returns the numeric value.
func (v *Value) AsNumber() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("adif: nil value")
	}
	if v.typ != TypeNumber {
		return 0, fmt.Errorf("adif: expected number, got %s", v.typ)
	}
	return v.numVal, nil
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("adif: nil value")
	}
	if v.typ != TypeBoolean {
		return false, fmt.Errorf("adif: expected boolean, got %s", v.typ)
	}
	return v.boolVal, nil
}

// AsDate returns the date components.
func (v *Value) AsDate() (year, month, day int, err error) {
	if v == nil {
		return 0, 0, 0, fmt.Errorf("adif: nil value")
	}
	if v.typ != TypeDate {
		return 0, 0, 0, fmt.Errorf("adif: expected date, got %s", v.typ)
	}
	return v.year, v.month, v.day, nil
}

// AsTime returns the time-of-day components. second is 0 for 4-digit
// times; use HasSeconds to distinguish HHMM from HHMM00.
func (v *Value) AsTime() (hour, minute, second int, err error) {
	if v == nil {
		return 0, 0, 0, fmt.Errorf("adif: nil value")
	}
	if v.typ != TypeTime {
		return 0, 0, 0, fmt.Errorf("adif: expected time, got %s", v.typ)
	}
	return v.hour, v.minute, v.second, nil
}

// HasSeconds reports whether a time value carries a seconds component.
func (v *Value) HasSeconds() bool {
	return v != nil && v.typ == TypeTime && v.withSeconds
}

// Text returns the serialized wire form of the value, without the tag.
// This is the exact inverse of field decoding: 8 digits for a date, 4 or 6
// for a time, Y/N for a boolean, minimal decimal form for a number, the
// raw string otherwise.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	switch v.typ {
	case TypeString:
		return v.strVal
	case TypeNumber:
		return strconv.FormatFloat(v.numVal, 'f', -1, 64)
	case TypeBoolean:
		if v.boolVal {
			return "Y"
		}
		return "N"
	case TypeDate:
		return fmt.Sprintf("%04d%02d%02d", v.year, v.month, v.day)
	case TypeTime:
		if v.withSeconds {
			return fmt.Sprintf("%02d%02d%02d", v.hour, v.minute, v.second)
		}
		return fmt.Sprintf("%02d%02d", v.hour, v.minute)
	default:
		return ""
	}
}

// Equal reports whether two values have the same type and contents.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeString:
		return v.strVal == o.strVal
	case TypeNumber:
		return v.numVal == o.numVal
	case TypeBoolean:
		return v.boolVal == o.boolVal
	case TypeDate:
		return v.year == o.year && v.month == o.month && v.day == o.day
	case TypeTime:
		return v.hour == o.hour && v.minute == o.minute &&
			v.second == o.second && v.withSeconds == o.withSeconds
	default:
		return false
	}
}

// String returns a debug representation of the value.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%s)", v.typ, v.Text())
}

// ============================================================
// Field collections
// ============================================================

// Field is one named value inside a header or record.
type Field struct {
	Name  string
	Value *Value
}

// fieldList is an insertion-ordered name→value collection with
// last-write-wins upsert semantics. Both Header and Record are built on
// it; field order is preserved so that emitted documents are stable.
type fieldList struct {
	fields []Field
}

// Set upserts a field. A duplicate name keeps its original position and
// takes the new value.
func (l *fieldList) Set(name string, v *Value) {
	name = CanonicalName(name)
	for i := range l.fields {
		if l.fields[i].Name == name {
			l.fields[i].Value = v
			return
		}
	}
	l.fields = append(l.fields, Field{Name: name, Value: v})
}

// Get returns the value for a name, or nil if absent. Lookup is
// case-insensitive via canonicalization.
func (l *fieldList) Get(name string) *Value {
	name = CanonicalName(name)
	for _, f := range l.fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// Len returns the number of fields.
func (l *fieldList) Len() int {
	return len(l.fields)
}

// Fields returns the fields in insertion order. The returned slice is the
// backing storage; callers must not modify it.
func (l *fieldList) Fields() []Field {
	return l.fields
}

// equal compares two field lists by name set and value, ignoring order.
func (l *fieldList) equal(o *fieldList) bool {
	if len(l.fields) != len(o.fields) {
		return false
	}
	for _, f := range l.fields {
		if !f.Value.Equal(o.Get(f.Name)) {
			return false
		}
	}
	return true
}

// Header holds the document's metadata fields (program name, version,
// format version). It may be empty: a file with no <EOH> marker has an
// empty header.
type Header struct {
	fieldList
}

// Equal reports whether two headers hold the same fields, order ignored.
func (h *Header) Equal(o *Header) bool {
	return h.fieldList.equal(&o.fieldList)
}

// Record holds the fields of one logged contact. Field names are unique;
// setting a name twice keeps the last value.
type Record struct {
	fieldList
}

// Equal reports whether two records hold the same fields, order ignored.
func (r *Record) Equal(o *Record) bool {
	return r.fieldList.equal(&o.fieldList)
}

// Document is one complete parsed log: a header plus zero or more records.
// The codec never mutates a Document after returning it; Emit only reads.
type Document struct {
	Header  Header
	Records []Record
}

// Equal reports whether two documents are field-for-field equal, with
// record order significant and field order within a record ignored.
func (d *Document) Equal(o *Document) bool {
	if !d.Header.Equal(&o.Header) {
		return false
	}
	if len(d.Records) != len(o.Records) {
		return false
	}
	for i := range d.Records {
		if !d.Records[i].Equal(&o.Records[i]) {
			return false
		}
	}
	return true
}

// CanonicalName normalizes a field name to its canonical form: uppercase,
// with spaces replaced by underscores. Tag and marker matching throughout
// the codec is case-insensitive via this one normalization step.
func CanonicalName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// normalizeDate runs the components through the proleptic Gregorian
// calendar, so Date(2023, 2, 31) becomes March 3 rather than an
// unencodable value. Years outside the format's four-digit range clamp to
// its bounds.
func normalizeDate(year, month, day int) (int, int, int) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	switch {
	case t.Year() < 0:
		return 0, 1, 1
	case t.Year() > 9999:
		return 9999, 12, 31
	}
	return t.Year(), int(t.Month()), t.Day()
}

// normalizeClock wraps time-of-day components into their valid ranges,
// carrying overflow the way time.Date does.
func normalizeClock(hour, minute, second int) (int, int, int) {
	t := time.Date(2000, time.January, 1, hour, minute, second, 0, time.UTC)
	return t.Hour(), t.Minute(), t.Second()
}

// daysIn returns the number of days in a month, leap years included.
func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
}
