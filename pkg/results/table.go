package results

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	delimiter   = ","
	commentChar = '#'
)

// errMissing marks a result file which does not exist.
var errMissing = errors.New("result file does not exist")

// IsMissing reports whether err was caused by an absent result file.
func IsMissing(err error) bool {
	return errors.Cause(err) == errMissing
}

// Table is a parsed result file.
type Table struct {
	Path   string
	Header []string
	Rows   [][]float64
}

// Len returns number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Width returns number of columns, zero for a table without rows.
func (t *Table) Width() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Load reads result file from path. The first line is discarded as header.
// When the file does not exist returned error satisfies IsMissing.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errMissing, "%q", path)
		}
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %q", path)
	}
	table.Path = path
	return table, nil
}

// Parse reads comma separated numbers from r. The first line is dropped
// without interpretation and kept split on commas as Header. Anything after
// '#' is a comment, blank lines are ignored and every row must have as many
// fields as the first data row.
func Parse(r io.Reader) (*Table, error) {
	reader := bufio.NewReader(r)

	table := &Table{}
	header, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading header failed")
	}
	if header == "" {
		return table, nil
	}
	table.Header = splitFields(header)

	scanner := bufio.NewScanner(reader)
	for line := 2; scanner.Scan(); line++ {
		text := scanner.Text()
		if comment := strings.IndexByte(text, commentChar); comment >= 0 {
			text = text[:comment]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := splitFields(text)
		if width := table.Width(); width != 0 && len(fields) != width {
			return nil, errors.Errorf("line %d: wrong number of columns (got %d, expected %d)", line, len(fields), width)
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", line, i)
			}
			row[i] = value
		}
		table.Rows = append(table.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading row failed")
	}

	return table, nil
}

func splitFields(line string) []string {
	fields := strings.Split(strings.TrimSpace(line), delimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
