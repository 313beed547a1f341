// Package parser turns delimited text and spreadsheets into points tables.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
)

// DefaultDelimiter separates fields when the caller passes 0.
const DefaultDelimiter = ','

// Tokenize splits delimited text into rows of fields.
//
// Quoted fields may contain the delimiter, newlines, and doubled quotes ("")
// which stand for one literal quote. Carriage returns outside quotes are
// dropped. Malformed input never fails: an unterminated quote simply runs to
// the end of the text, and whatever was accumulated is flushed.
func Tokenize(text string, delimiter rune) []models.Row {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	var (
		rows     []models.Row
		row      models.Row
		field    strings.Builder
		inQuotes bool
	)

	// Fields copy the original bytes, so invalid UTF-8 passes through as is.
	for i := 0; i < len(text); {
		ch, size := utf8.DecodeRuneInString(text[i:])
		raw := text[i : i+size]
		i += size

		if ch == utf8.RuneError && size == 1 {
			field.WriteString(raw)
			continue
		}

		if inQuotes {
			if ch == '"' {
				if i < len(text) && text[i] == '"' {
					field.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field.WriteString(raw)
			continue
		}

		switch ch {
		case '"':
			inQuotes = true
		case delimiter:
			row = append(row, field.String())
			field.Reset()
		case '\r':
		case '\n':
			row = append(row, field.String())
			rows = append(rows, row)
			row = nil
			field.Reset()
		default:
			field.WriteString(raw)
		}
	}

	// Input without a trailing newline
	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}

	return rows
}
