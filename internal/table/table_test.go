package table

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_Whitespace(t *testing.T) {
	input := `
algo   readname  len   cost
dijkstra  r1     100   3
astar-seeds	r2	150	0
`
	tbl, err := Read(strings.NewReader(input), Whitespace)
	require.NoError(t, err)

	assert.Equal(t, []string{"algo", "readname", "len", "cost"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"astar-seeds", "r2", "150", "0"}, tbl.Rows[1])
}

func TestRead_TSVKeepsEmptyFields(t *testing.T) {
	input := "head\tN\tnote\n1000\t5\t\n"
	tbl, err := Read(strings.NewReader(input), TSV)
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"1000", "5", ""}, tbl.Rows[0])
}

func TestRead_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Read(strings.NewReader("\n\n"), Whitespace)
		assert.Error(t, err)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := Read(strings.NewReader("a b c\n1 2\n"), Whitespace)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.tsv")
	require.NoError(t, os.WriteFile(path, []byte("a\tb\n1\t2\n"), 0644))

	tbl, err := ReadFile(path, TSV)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Header)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.tsv"), TSV)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("TSV")
	require.NoError(t, err)
	assert.Equal(t, TSV, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, Whitespace, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestAppendColumn(t *testing.T) {
	tbl := New("a")
	tbl.Rows = [][]string{{"1"}, {"2"}}

	require.NoError(t, tbl.AppendColumn("b", []string{"x", "y"}))
	assert.Equal(t, []string{"a", "b"}, tbl.Header)
	assert.Equal(t, []string{"2", "y"}, tbl.Rows[1])

	// Existing column is overwritten, not duplicated.
	require.NoError(t, tbl.AppendColumn("a", []string{"9", "8"}))
	assert.Equal(t, []string{"a", "b"}, tbl.Header)
	assert.Equal(t, []string{"9", "x"}, tbl.Rows[0])

	assert.Error(t, tbl.AppendColumn("c", []string{"only-one"}))
}

func TestCloneIsDeep(t *testing.T) {
	tbl := New("a")
	tbl.Rows = [][]string{{"1"}}

	c := tbl.Clone()
	c.Rows[0][0] = "changed"
	c.Header[0] = "z"

	assert.Equal(t, "1", tbl.Rows[0][0])
	assert.Equal(t, "a", tbl.Header[0])
}

func TestColumn(t *testing.T) {
	tbl := New("a", "b")
	tbl.Rows = [][]string{{"1", "2"}, {"3", "4"}}

	col, ok := tbl.Column("b")
	assert.True(t, ok)
	assert.Equal(t, []string{"2", "4"}, col)

	_, ok = tbl.Column("missing")
	assert.False(t, ok)
}

func TestWrite(t *testing.T) {
	tbl := New("a", "b")
	tbl.Rows = [][]string{{"1", "2"}}

	var buf bytes.Buffer
	require.NoError(t, tbl.Write(&buf))
	assert.Equal(t, "a\tb\n1\t2\n", buf.String())
}

func TestFormatFloatRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.125, 1e-7, 12345.5, math.Inf(1), math.Inf(-1)} {
		got, err := ParseFloat(FormatFloat(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, "nan", FormatFloat(math.NaN()))
	got, err := ParseFloat("nan")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}
