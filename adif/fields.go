package adif

// fieldTypes maps well-known field names to their expected datatype.
// Names absent from the table decode as strings, which keeps the codec
// forward-compatible with fields defined after this table was written.
// Enumerated fields (MODE, BAND, ...) are deliberately strings: the codec
// does not validate against the enumeration registry.
var fieldTypes = map[string]DataType{
	// Dates
	"QSO_DATE":                 TypeDate,
	"QSO_DATE_OFF":             TypeDate,
	"QSLRDATE":                 TypeDate,
	"QSLSDATE":                 TypeDate,
	"LOTW_QSLRDATE":            TypeDate,
	"LOTW_QSLSDATE":            TypeDate,
	"EQSL_QSLRDATE":            TypeDate,
	"EQSL_QSLSDATE":            TypeDate,
	"CLUBLOG_QSO_UPLOAD_DATE":  TypeDate,
	"HRDLOG_QSO_UPLOAD_DATE":   TypeDate,
	"QRZCOM_QSO_UPLOAD_DATE":   TypeDate,
	"QRZCOM_QSO_DOWNLOAD_DATE": TypeDate,
	"HAMLOGEU_QSO_UPLOAD_DATE": TypeDate,
	"HAMQTH_QSO_UPLOAD_DATE":   TypeDate,

	// Times
	"TIME_ON":  TypeTime,
	"TIME_OFF": TypeTime,

	// Numbers
	"A_INDEX":           TypeNumber,
	"AGE":               TypeNumber,
	"ALTITUDE":          TypeNumber,
	"ANT_AZ":            TypeNumber,
	"ANT_EL":            TypeNumber,
	"CQZ":               TypeNumber,
	"DISTANCE":          TypeNumber,
	"DXCC":              TypeNumber,
	"FISTS":             TypeNumber,
	"FISTS_CC":          TypeNumber,
	"FREQ":              TypeNumber,
	"FREQ_RX":           TypeNumber,
	"IOTA_ISLAND_ID":    TypeNumber,
	"ITUZ":              TypeNumber,
	"K_INDEX":           TypeNumber,
	"MAX_BURSTS":        TypeNumber,
	"MY_ALTITUDE":       TypeNumber,
	"MY_CQ_ZONE":        TypeNumber,
	"MY_DXCC":           TypeNumber,
	"MY_FISTS":          TypeNumber,
	"MY_IOTA_ISLAND_ID": TypeNumber,
	"MY_ITU_ZONE":       TypeNumber,
	"NR_BURSTS":         TypeNumber,
	"NR_PINGS":          TypeNumber,
	"RX_PWR":            TypeNumber,
	"SFI":               TypeNumber,
	"SRX":               TypeNumber,
	"STX":               TypeNumber,
	"TEN_TEN":           TypeNumber,
	"TX_PWR":            TypeNumber,
	"UKSMG":             TypeNumber,

	// Booleans
	"FORCE_INIT": TypeBoolean,
	"QSO_RANDOM": TypeBoolean,
	"SILENT_KEY": TypeBoolean,
	"SWL":        TypeBoolean,
}

// hintTypes maps wire type indicators to datatypes. Both the single-char
// indicators and their spelled-out forms are accepted. String-shaped
// indicators (S, M, E, I, L, G, ...) decode verbatim.
var hintTypes = map[string]DataType{
	"N":       TypeNumber,
	"NUMBER":  TypeNumber,
	"B":       TypeBoolean,
	"BOOLEAN": TypeBoolean,
	"D":       TypeDate,
	"DATE":    TypeDate,
	"T":       TypeTime,
	"TIME":    TypeTime,
	"S":       TypeString,
	"STRING":  TypeString,
	"M":       TypeString,
	"E":       TypeString,
	"I":       TypeString,
	"L":       TypeString,
	"G":       TypeString,
}

// FieldType resolves the datatype for a field: a recognized tag hint wins,
// then the built-in table, then string. An unrecognized hint does not
// silently demote a known field to string; the table still applies.
func FieldType(name, hint string) DataType {
	if t, ok := hintTypes[hint]; ok {
		return t
	}
	if t, ok := fieldTypes[CanonicalName(name)]; ok {
		return t
	}
	return TypeString
}
