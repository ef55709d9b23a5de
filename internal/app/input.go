// internal/app/input.go
package app

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"labnotex-core/fasta"
)

// sequenceInput takes the sequence from --file (first FASTA record, "-" for
// stdin) or from the positional arguments joined by sep.
func sequenceInput(ctx context.Context, file string, args []string, sep string) (id, s string, err error) {
	if file != "" {
		if len(args) > 0 {
			return "", "", usageError{errors.New("give the sequence as an argument or with --file, not both")}
		}
		rec, err := fasta.ReadFirst(ctx, file)
		if err != nil {
			return "", "", err
		}
		return rec.ID, rec.Seq, nil
	}
	if len(args) == 0 {
		return "", "", usageError{errors.New("a sequence argument or --file is required")}
	}
	return "", strings.Join(args, sep), nil
}

// recordsInput reads every FASTA record in file.
func recordsInput(ctx context.Context, file string, args []string) ([]fasta.Record, error) {
	if len(args) > 0 {
		return nil, usageError{errors.New("give the sequence as an argument or with --file, not both")}
	}
	recs, err := fasta.ReadAll(ctx, file)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.Wrap(fasta.ErrEmpty, file)
	}
	return recs, nil
}

// compact drops all whitespace.
func compact(s string) string { return strings.Join(strings.Fields(s), "") }

// textInput returns inline text, or the contents of path when inline is
// empty. "-" reads stdin.
func textInput(inline, path, what string) (string, error) {
	if inline != "" && path != "" {
		return "", usageError{errors.Errorf("give %s inline or as a file, not both", what)}
	}
	if path == "" {
		return inline, nil
	}
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "read %s", what)
	}
	return string(b), nil
}
