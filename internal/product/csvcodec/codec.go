// Package csvcodec encodes and decodes catalog records in the quoted, comma-separated catalog format.
//
// The format is RFC-4180-like: ID and Name are quoted when they are empty, contain a comma, a quote,
// CR or LF, or start or end with a space or tab. Quantity and UnitPrice are plain decimal integers.
// Decoding is lenient: whitespace between a closing quote and the next delimiter is skipped,
// fields beyond the fourth are discarded and short records are reported to the caller rather than rejected.
// A quote that does not start a field is kept as a literal character.
package csvcodec

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Header is the first line of every catalog file. It is skipped on read without validation.
const Header = "ProductID,ProductName,Quantity,UnitPrice"

// FieldCount is the number of fields in a catalog record.
const FieldCount = 4

// EncodeField returns value as it must appear in a catalog line.
func EncodeField(value string) string {
	if !needsQuotes(value) {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func needsQuotes(value string) bool {
	if value == "" {
		return true
	}
	if strings.ContainsAny(value, ",\"\r\n") {
		return true
	}
	first, last := value[0], value[len(value)-1]
	return isBlank(first) || isBlank(last)
}

// EncodeRecord renders one catalog line without the line terminator.
func EncodeRecord(id, name string, quantity, unitPrice int) string {
	var b strings.Builder
	b.WriteString(EncodeField(id))
	b.WriteByte(',')
	b.WriteString(EncodeField(name))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(quantity))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(unitPrice))
	return b.String()
}

// DecodeLine splits a single catalog line into at most FieldCount fields.
// A line terminator, if present, ends the record.
func DecodeLine(line string) []string {
	fields, _ := NewDecoder(strings.NewReader(line)).Read()
	return fields
}

// Decoder reads catalog records from a byte stream.
// Quoted fields may contain line terminators, so one record can span several physical lines.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Read returns the next record's fields, at most FieldCount of them.
// A blank line yields a single empty field. Read returns io.EOF only when no bytes were left to read.
func (d *Decoder) Read() ([]string, error) {
	var (
		fields      []string
		field       strings.Builder
		inQuotes    bool
		afterQuote  bool
		sawAnything bool
	)

	appendField := func() {
		if len(fields) < FieldCount {
			fields = append(fields, field.String())
		}
		field.Reset()
		afterQuote = false
	}

	for {
		c, err := d.r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, err
			}
			if !sawAnything {
				return nil, io.EOF
			}
			appendField()
			return fields, nil
		}
		sawAnything = true

		if inQuotes {
			if c != '"' {
				field.WriteByte(c)
				continue
			}
			next, peekErr := d.r.Peek(1)
			if peekErr == nil && next[0] == '"' {
				_, _ = d.r.ReadByte()
				field.WriteByte('"')
				continue
			}
			inQuotes = false
			afterQuote = true
			continue
		}

		switch {
		case c == ',':
			appendField()
		case c == '\r' || c == '\n':
			if c == '\r' {
				if next, peekErr := d.r.Peek(1); peekErr == nil && next[0] == '\n' {
					_, _ = d.r.ReadByte()
				}
			}
			appendField()
			return fields, nil
		case c == '"' && !afterQuote && strings.Trim(field.String(), " \t") == "":
			// a quote opens a field only before any content; elsewhere it is literal
			field.Reset()
			inQuotes = true
		case afterQuote && isBlank(c):
			// whitespace between a closing quote and the next delimiter
		default:
			field.WriteByte(c)
		}
	}
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
