// Package logging builds the zap logger used by the command layer.
package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger writing to w at level. verbose forces debug.
// Every entry carries the invocation's run_id.
func New(w io.Writer, level string, verbose bool) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	if verbose {
		lvl.SetLevel(zapcore.DebugLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core).With(zap.String("run_id", NewRunID())), nil
}

// NewRunID returns a fresh identifier for one CLI invocation.
func NewRunID() string { return uuid.NewString() }
