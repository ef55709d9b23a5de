// core/primer/loader.go
package primer

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadTSV reads a primer list from path. See ReadTSV for the format.
func LoadTSV(path string) ([]Primer, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open primer file")
	}
	defer func() { _ = fh.Close() }()
	return ReadTSV(fh, path)
}

// ReadTSV parses whitespace-separated primer rows:
//
//	id  sequence  direction
//	sequence  direction        (named "Primer N")
//
// Blank lines and lines starting with '#' are skipped. src labels errors.
func ReadTSV(r io.Reader, src string) ([]Primer, error) {
	var list []Primer
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		var id, name, raw, dirText string
		switch len(f) {
		case 2:
			name = DefaultName(len(list) + 1)
			raw, dirText = f[0], f[1]
		case 3:
			id, raw, dirText = f[0], f[1], f[2]
		default:
			return nil, errors.Errorf("%s:%d: expected 2 or 3 columns (id seq direction), got %d", src, ln, len(f))
		}
		dir, err := ParseDirection(dirText)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", src, ln)
		}
		p, err := New(id, name, raw, dir)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", src, ln)
		}
		list = append(list, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s", src)
	}
	return list, nil
}
