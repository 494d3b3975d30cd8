package table

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Format selects how fields in a row are separated.
type Format string

const (
	// TSV splits on single tab characters, keeping empty fields.
	TSV Format = "tsv"
	// Whitespace splits on runs of spaces and tabs.
	Whitespace Format = "whitespace"
)

// ParseFormat maps a config or flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tsv", "tab":
		return TSV, nil
	case "whitespace", "ws", "":
		return Whitespace, nil
	default:
		return "", fmt.Errorf("unsupported table format: %q", s)
	}
}

// Table is a header plus string cells. Rows always have len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// New returns an empty table with the given header.
func New(header ...string) *Table {
	return &Table{Header: append([]string(nil), header...)}
}

// Read parses a table whose first non-empty line is the header.
func Read(r io.Reader, format Format) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var t *Table
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := split(line, format)
		if t == nil {
			t = New(fields...)
			continue
		}
		if len(fields) != len(t.Header) {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", lineNo, len(t.Header), len(fields))
		}
		t.Rows = append(t.Rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("table has no header")
	}
	return t, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, format Format) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func split(line string, format Format) []string {
	if format == TSV {
		return strings.Split(line, "\t")
	}
	return strings.Fields(line)
}

// Index returns the position of column name, or -1.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Has reports whether the table has a column called name.
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Column returns the cells of column name.
func (t *Table) Column(name string) ([]string, bool) {
	idx := t.Index(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, true
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	c := New(t.Header...)
	c.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}

// AppendColumn adds a column at the end. If a column with that name already
// exists its cells are overwritten in place.
func (t *Table) AppendColumn(name string, cells []string) error {
	if len(cells) != len(t.Rows) {
		return fmt.Errorf("column %s: expected %d cells, got %d", name, len(t.Rows), len(cells))
	}
	if idx := t.Index(name); idx >= 0 {
		for i := range t.Rows {
			t.Rows[i][idx] = cells[i]
		}
		return nil
	}
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], cells[i])
	}
	return nil
}

// Write emits the table as TSV with a header line.
func (t *Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(t.Header, "\t") + "\n"); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatFloat renders v in shortest round-trip form. Non-finite values are
// written as inf, -inf and nan so ParseFloat reads them back.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseFloat parses a numeric cell.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
