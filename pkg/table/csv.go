package table

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "latin1"
)

func ParseEncoding(raw string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	default:
		return "", errors.Errorf("unsupported csv encoding %q", raw)
	}
}

func (e Encoding) reader(r io.Reader) io.Reader {
	if e == EncodingLatin1 {
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	return r
}

// ReadCSV reads a header line followed by data rows. Header names are trimmed, empty cells
// become nil and short rows are padded with nil. Cell text, blanks included, is kept verbatim.
func ReadCSV(r io.Reader, enc Encoding) (*Table, error) {
	reader := csv.NewReader(enc.reader(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return New(nil), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv header")
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	t := New(columns)
	line := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read csv line %d", line)
		}

		row := make(Record, len(columns))
		for i, c := range columns {
			if i >= len(fields) || fields[i] == "" {
				row[c] = nil
				continue
			}
			row[c] = fields[i]
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

func LoadCSVFile(path string, enc Encoding) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", path)
	}
	defer f.Close()

	t, err := ReadCSV(f, enc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %q", path)
	}

	return t, nil
}
