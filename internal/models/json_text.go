package models

import (
	"strings"
	"unicode/utf16"

	"github.com/tidwall/gjson"
)

const hexDigits = "0123456789abcdef"

// FormatJSON renders value as JSON text with ", " between items and ": "
// after keys. Object keys keep their document order and number literals are
// written as they appeared. With asciiOnly every rune outside printable ASCII
// is escaped as \uXXXX.
func FormatJSON(value gjson.Result, asciiOnly bool) string {
	var sb strings.Builder
	writeValue(&sb, value, asciiOnly)
	return sb.String()
}

// FormatObject renders a single-key object of strings, e.g. {"answer": "hi"}.
// Non-ASCII text is written as UTF-8.
func FormatObject(key, value string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	writeString(&sb, key, false)
	sb.WriteString(": ")
	writeString(&sb, value, false)
	sb.WriteByte('}')
	return sb.String()
}

func writeValue(sb *strings.Builder, value gjson.Result, asciiOnly bool) {
	switch value.Type {
	case gjson.Null:
		sb.WriteString("null")
	case gjson.False:
		sb.WriteString("false")
	case gjson.True:
		sb.WriteString("true")
	case gjson.Number:
		sb.WriteString(strings.TrimSpace(value.Raw))
	case gjson.String:
		writeString(sb, value.Str, asciiOnly)
	case gjson.JSON:
		if value.IsArray() {
			writeArray(sb, value, asciiOnly)
		} else {
			writeObject(sb, value, asciiOnly)
		}
	}
}

func writeArray(sb *strings.Builder, value gjson.Result, asciiOnly bool) {
	sb.WriteByte('[')
	first := true
	value.ForEach(func(_, item gjson.Result) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		writeValue(sb, item, asciiOnly)
		return true
	})
	sb.WriteByte(']')
}

func writeObject(sb *strings.Builder, value gjson.Result, asciiOnly bool) {
	sb.WriteByte('{')
	first := true
	value.ForEach(func(key, item gjson.Result) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		writeString(sb, key.Str, asciiOnly)
		sb.WriteString(": ")
		writeValue(sb, item, asciiOnly)
		return true
	})
	sb.WriteByte('}')
}

func writeString(sb *strings.Builder, s string, asciiOnly bool) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			switch {
			case r < 0x20:
				writeEscape(sb, r)
			case asciiOnly && r > '~':
				if r > 0xFFFF {
					hi, lo := utf16.EncodeRune(r)
					writeEscape(sb, hi)
					writeEscape(sb, lo)
				} else {
					writeEscape(sb, r)
				}
			default:
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
}

// writeEscape writes r as \uXXXX; r must be within the basic multilingual plane
func writeEscape(sb *strings.Builder, r rune) {
	sb.WriteString(`\u`)
	sb.WriteByte(hexDigits[(r>>12)&0xF])
	sb.WriteByte(hexDigits[(r>>8)&0xF])
	sb.WriteByte(hexDigits[(r>>4)&0xF])
	sb.WriteByte(hexDigits[r&0xF])
}
