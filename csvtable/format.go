// Package csvtable reads CSV data as regrid.StringsView data sources
// and writes the visible part of a regrid.Table as CSV.
//
// Reading detects the character encoding, the line endings and the
// field separator of the data unless a Format is passed explicitly.
package csvtable

import (
	"errors"
	"fmt"
	"strings"
)

// Format describes the encoding and structural format of CSV data.
//
//	format := &Format{
//	    Encoding:  "UTF-8",
//	    Separator: ",",
//	    Newline:   "\r\n",
//	}
type Format struct {
	// Encoding of the data like "UTF-8", "UTF-16LE", "ISO 8859-1", "Windows 1252"
	Encoding string `json:"encoding" yaml:"encoding"`

	// Separator is the single character field delimiter
	Separator string `json:"separator" yaml:"separator"`

	// Newline is one of "\n", "\r\n" or "\n\r"
	Newline string `json:"newline" yaml:"newline"`
}

// NewFormat returns a UTF-8 Format with the passed separator
// and "\r\n" line endings.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate returns an error if the Format is not usable
// for reading or writing. It can be called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvtable.Format")
	case f.Encoding == "":
		return errors.New("missing csvtable.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvtable.Format.Separator")
	case len(f.Separator) > 1:
		return fmt.Errorf("invalid csvtable.Format.Separator: %q", f.Separator)
	case f.Newline == "":
		return errors.New("missing csvtable.Format.Newline")
	case f.Newline != "\n" && f.Newline != "\n\r" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csvtable.Format.Newline: %q", f.Newline)
	}
	return nil
}

func (f *Format) String() string {
	return fmt.Sprintf("Format{Encoding: %s, Separator: %q, Newline: %q}", f.Encoding, f.Separator, f.Newline)
}

// DetectionConfig configures the detection of the character encoding.
type DetectionConfig struct {
	// Encodings to test in priority order.
	Encodings []string `json:"encodings" yaml:"encodings"`

	// EncodingTests are strings with characters that have
	// different byte representations across the Encodings.
	EncodingTests []string `json:"encodingTests" yaml:"encodingTests"`
}

// NewDefaultDetectionConfig returns a DetectionConfig
// for European and Cyrillic CSV files.
func NewDefaultDetectionConfig() *DetectionConfig {
	return &DetectionConfig{
		Encodings: []string{
			"UTF-8",
			"UTF-16LE",
			"ISO 8859-1",
			"Windows 1252", // like ANSI
			"Macintosh",
		},
		EncodingTests: []string{
			"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€",
			"д", "Д", "ъ", "Ъ", "б", "Б", "л", "Л", "и", "И", "ж",
		},
	}
}

// EscapeQuotes doubles every double quote of val.
func EscapeQuotes(val string) string {
	return strings.ReplaceAll(val, `"`, `""`)
}
