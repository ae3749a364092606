package adif

import "strconv"

// decodeField converts a field tag's raw value bytes into a typed Value.
// The tag's declared length already fixed the byte count upstream; this
// step only interprets the bytes. A field with an explicit type hint or a
// table entry must match its datatype grammar exactly — there is no
// fallback to string once a type is expected.
func decodeField(tag Tag) (*Value, error) {
	typ := FieldType(tag.Name, tag.TypeHint)
	switch typ {
	case TypeString:
		return Str(tag.Value), nil
	case TypeNumber:
		return decodeNumber(tag)
	case TypeBoolean:
		return decodeBool(tag)
	case TypeDate:
		return decodeDate(tag)
	case TypeTime:
		return decodeTime(tag)
	default:
		return Str(tag.Value), nil
	}
}

// decodeNumber accepts an optional sign, digits, and at most one decimal
// point. Exponents are not part of the format's number grammar.
func decodeNumber(tag Tag) (*Value, error) {
	s := tag.Value
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits, dots := 0, 0
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
		default:
			return nil, valueErr(tag.Offset, tag.Name, TypeNumber, s, "not a number")
		}
	}
	if digits == 0 || dots > 1 {
		return nil, valueErr(tag.Offset, tag.Name, TypeNumber, s, "not a number")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, valueErr(tag.Offset, tag.Name, TypeNumber, s, "not a number")
	}
	return Number(n), nil
}

func decodeBool(tag Tag) (*Value, error) {
	switch tag.Value {
	case "Y", "y":
		return Bool(true), nil
	case "N", "n":
		return Bool(false), nil
	}
	return nil, valueErr(tag.Offset, tag.Name, TypeBoolean, tag.Value, "want Y or N")
}

// decodeDate parses YYYYMMDD and checks calendar validity, leap years
// included.
func decodeDate(tag Tag) (*Value, error) {
	s := tag.Value
	if len(s) != 8 || !isDigits(s) {
		return nil, valueErr(tag.Offset, tag.Name, TypeDate, s, "want 8 digits YYYYMMDD")
	}
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[4:6])
	day, _ := strconv.Atoi(s[6:8])
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
		return nil, valueErr(tag.Offset, tag.Name, TypeDate, s, "invalid calendar date")
	}
	return Date(year, month, day), nil
}

// decodeTime parses HHMM or HHMMSS.
func decodeTime(tag Tag) (*Value, error) {
	s := tag.Value
	if (len(s) != 4 && len(s) != 6) || !isDigits(s) {
		return nil, valueErr(tag.Offset, tag.Name, TypeTime, s, "want 4 or 6 digits")
	}
	hour, _ := strconv.Atoi(s[0:2])
	minute, _ := strconv.Atoi(s[2:4])
	if hour > 23 || minute > 59 {
		return nil, valueErr(tag.Offset, tag.Name, TypeTime, s, "time out of range")
	}
	if len(s) == 4 {
		return ShortTime(hour, minute), nil
	}
	second, _ := strconv.Atoi(s[4:6])
	if second > 59 {
		return nil, valueErr(tag.Offset, tag.Name, TypeTime, s, "time out of range")
	}
	return Time(hour, minute, second), nil
}
