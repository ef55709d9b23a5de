// Package fasta reads nucleotide sequences from FASTA files.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
)

// Record is one FASTA entry. Sequence lines are joined with surrounding
// whitespace removed.
type Record struct {
	ID          string
	Description string
	Seq         string
}

// ErrEmpty is returned when the input holds no sequence records.
var ErrEmpty = errors.New("no sequence records found")

// Scan parses FASTA from r and calls emit once per record. Text before the
// first header is treated as an unnamed record, so plain sequence files
// work too. Returning an error from emit stops the scan.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur     Record
		seq     = make([]byte, 0, 4096)
		started bool
	)
	flush := func() error {
		if !started && len(seq) == 0 {
			return nil
		}
		cur.Seq = string(seq)
		return emit(cur)
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			cur = parseHeader(line[1:])
			seq = seq[:0]
			started = true
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "fasta scan")
	}
	return flush()
}

func parseHeader(hdr []byte) Record {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return Record{ID: string(hdr[:i]), Description: string(bytes.TrimSpace(hdr[i+1:]))}
	}
	return Record{ID: string(hdr)}
}

var errStop = errors.New("stop")

// ReadFirst returns the first record in path.
func ReadFirst(ctx context.Context, path string) (Record, error) {
	rc, err := Open(path)
	if err != nil {
		return Record{}, err
	}
	defer rc.Close()

	var (
		rec   Record
		found bool
	)
	err = Scan(ctx, rc, func(r Record) error {
		rec, found = r, true
		return errStop
	})
	if err != nil && !errors.Is(err, errStop) {
		return Record{}, errors.Wrap(err, path)
	}
	if !found {
		return Record{}, errors.Wrap(ErrEmpty, path)
	}
	return rec, nil
}

// ReadAll returns every record in path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var out []Record
	err = Scan(ctx, rc, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return out, nil
}
