package csvtable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/domonda/go-types/charset"
	"github.com/ungerik/go-fs"

	"github.com/domonda/go-regrid"
	"github.com/domonda/go-regrid/internal/log"
)

// ParseDetectFormat detects the Format of data and parses it into rows.
// A nil config uses NewDefaultDetectionConfig.
//
// Detection:
//  1. the first encoding of config that decodes the EncodingTests wins, UTF-8 otherwise
//  2. "\r\n" line endings if the data contains any, else "\n"
//  3. the separator of a "sep=X" first line, else the most frequent of comma, semicolon and tab
func ParseDetectFormat(data []byte, config *DetectionConfig) (rows [][]string, format *Format, err error) {
	decoded, format, err := DetectFormat(data, config)
	if err != nil {
		return nil, nil, err
	}
	if format.Separator == "" {
		// only empty lines
		return nil, format, nil
	}
	rows, err = parse(decoded, format)
	return rows, format, err
}

// DetectFormat detects the Format of data and returns data decoded to UTF-8.
// The Separator of the returned Format is empty if data has no non empty lines.
func DetectFormat(data []byte, config *DetectionConfig) (decoded []byte, format *Format, err error) {
	if config == nil {
		config = NewDefaultDetectionConfig()
	}
	encodings := make([]charset.Encoding, 0, len(config.Encodings))
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, nil, err
		}
		encodings = append(encodings, enc)
	}

	format = new(Format)
	decoded, format.Encoding, err = charset.AutoDecode(data, encodings, config.EncodingTests)
	if err != nil {
		return nil, nil, err
	}
	if format.Encoding == "" {
		format.Encoding = "UTF-8"
	}
	decoded = sanitizeUTF8(decoded)

	if bytes.Contains(decoded, []byte{'\r', '\n'}) {
		format.Newline = "\r\n"
	} else {
		format.Newline = "\n"
	}

	lines := bytes.Split(decoded, []byte(format.Newline))
	if sep := parseSepHeaderLine(lines[0]); sep != "" {
		format.Separator = sep
	} else {
		format.Separator = detectSeparator(lines)
	}
	log.Debug(log.CatData, "detected CSV format", "format", format)
	return decoded, format, nil
}

// ParseWithFormat parses data encoded as described by format.
func ParseWithFormat(data []byte, format *Format) (rows [][]string, err error) {
	if err = format.Validate(); err != nil {
		return nil, err
	}
	if format.Encoding == "UTF-8" {
		data = charset.TrimBOM(data, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, err
		}
		data, err = enc.Decode(data)
		if err != nil {
			return nil, err
		}
	}
	return parse(sanitizeUTF8(data), format)
}

// NewView returns a StringsView of rows with the first non empty row
// as column titles after removing empty rows and columns.
func NewView(title string, rows [][]string) *regrid.StringsView {
	rows = regrid.RemoveEmptyStringRows(rows)
	numCols := regrid.RemoveEmptyStringColumns(rows)
	if len(rows) == 0 {
		return regrid.NewStringsView(title, nil)
	}
	cols := rows[0]
	if len(cols) < numCols {
		cols = append(cols, make([]string, numCols-len(cols))...)
	}
	return regrid.NewStringsView(title, rows[1:], cols...)
}

// ReadFile reads a CSV file with format detection
// and returns it as view titled with the file name without extension.
func ReadFile(file fs.FileReader, config *DetectionConfig) (*regrid.StringsView, *Format, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	rows, format, err := ParseDetectFormat(data, config)
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV file %s: %w", file.Name(), err)
	}
	title := strings.TrimSuffix(file.Name(), path.Ext(file.Name()))
	view := NewView(title, rows)
	log.Info(log.CatData, "read CSV file", "file", file.Name(), "format", format, "rows", view.NumRows())
	return view, format, nil
}

func parse(data []byte, format *Format) ([][]string, error) {
	if format.Newline == "\n\r" {
		data = bytes.ReplaceAll(data, []byte("\n\r"), []byte("\n"))
	}
	firstLine, rest, _ := bytes.Cut(data, []byte{'\n'})
	if headerSep := parseSepHeaderLine(bytes.TrimSuffix(firstLine, []byte{'\r'})); headerSep != "" {
		if headerSep != format.Separator {
			return nil, fmt.Errorf("separator %q in header line is different from Format.Separator %q", headerSep, format.Separator)
		}
		data = rest
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = rune(format.Separator[0])
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("CSV line %d: %w", parseErr.Line, parseErr.Err)
		}
		return nil, err
	}
	return rows, nil
}

// parseSepHeaderLine returns the separator X
// of a line "sep=X" or "SEP=X" that may be quoted.
func parseSepHeaderLine(line []byte) string {
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 {
		return ""
	}
	if !bytes.HasPrefix(line, []byte("sep=")) && !bytes.HasPrefix(line, []byte("SEP=")) {
		return ""
	}
	return string(line[4:5])
}

func detectSeparator(lines [][]byte) string {
	var commas, semicolons, tabs, nonEmpty int
	for _, line := range lines {
		line = bytes.Trim(line, "\r\n")
		if len(line) == 0 {
			continue
		}
		nonEmpty++
		commas += bytes.Count(line, []byte{','})
		semicolons += bytes.Count(line, []byte{';'})
		tabs += bytes.Count(line, []byte{'\t'})
	}
	switch {
	case nonEmpty == 0:
		return ""
	case semicolons > commas && semicolons > tabs:
		return ";"
	case tabs > commas && tabs > semicolons:
		return "\t"
	default:
		return ","
	}
}

// sanitizeUTF8 replaces invalid UTF-8, replacement characters
// and non-breaking spaces with a space.
func sanitizeUTF8(str []byte) []byte {
	return bytes.Map(
		func(r rune) rune {
			switch r {
			case '\ufffd', '\u00a0':
				return ' '
			default:
				return r
			}
		},
		bytes.ToValidUTF8(str, []byte{' '}),
	)
}
