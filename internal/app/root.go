// internal/app/root.go
package app

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labnotex/internal/config"
	"labnotex/internal/logging"
	"labnotex/internal/output"
	"labnotex/internal/version"
	"labnotex/internal/writers"
)

// runner carries per-invocation state shared by all subcommands.
type runner struct {
	stdout, stderr io.Writer

	// persistent flags
	configPath string
	format     string
	outPath    string
	noHeader   bool
	verbose    bool
	logLevel   string

	cfg      *config.Config
	log      *zap.Logger
	negative bool
}

func newRootCmd(r *runner) *cobra.Command {
	root := &cobra.Command{
		Use:   "labnotex",
		Short: "Laboratory calculators: dilutions, primers, t-tests, codons",
		Long: `labnotex bundles the everyday bench calculations of a molecular biology lab:

  dilute     C1·V1 = C2·V2 for any one unknown
  serial     constant-factor serial dilution series
  molarity   mass ↔ molarity, stock volumes, common molecular weights
  tm, gc     primer melting temperature and GC content
  revcomp    reverse complement (IUPAC aware)
  pair       primer-pair compatibility against a template
  ttest      Student, Welch and paired two-sample t-tests
  translate  codon translation in frames 1-3
  sites      restriction enzyme recognition sites
  config     write or inspect the settings file

Results go to stdout as a table (text), tsv, json or xlsx. Settings are read
from $XDG_CONFIG_HOME/labnotex/config.yaml unless --config is given.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&r.configPath, "config", "", "config file (default $LABNOTEX_CONFIG or $XDG_CONFIG_HOME/labnotex/config.yaml)")
	pf.StringVarP(&r.format, "output", "o", "", "output: "+strings.Join(output.Formats(), " | ")+" (default from config: text)")
	pf.StringVar(&r.outPath, "out", "", "write the report to this file instead of stdout")
	pf.BoolVar(&r.noHeader, "no-header", false, "suppress the tsv header row")
	pf.BoolVarP(&r.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&r.logLevel, "log-level", "", "log level: debug | info | warn | error (default from config: warn)")

	root.AddCommand(
		newDiluteCmd(r),
		newSerialCmd(r),
		newMolarityCmd(r),
		newTmCmd(r),
		newGCCmd(r),
		newRevCompCmd(r),
		newPairCmd(r),
		newTTestCmd(r),
		newTranslateCmd(r),
		newSitesCmd(r),
		newConfigCmd(r),
	)
	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	if err := r.initLogger(cmd, cfg.Logging.Level); err != nil {
		return err
	}
	r.cfg = cfg
	r.log.Debug("config loaded",
		zap.String("path", path),
		zap.String("format", cfg.Output.Format),
		zap.Float64("alpha", cfg.Stats.Alpha))
	return nil
}

// loadConfig returns the file and env settings with flag overrides applied.
func (r *runner) loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path := r.configPathOrDefault()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, usageError{err}
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(r.format))
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(r.logLevel))
	}
	if flags.Changed("no-header") {
		h := !r.noHeader
		cfg.Output.Header = &h
	}
	return cfg, path, nil
}

func (r *runner) configPathOrDefault() string {
	if r.configPath != "" {
		return r.configPath
	}
	return config.DefaultPath()
}

func (r *runner) initLogger(cmd *cobra.Command, level string) error {
	log, err := logging.New(r.stderr, level, r.verbose)
	if err != nil {
		return usageError{err}
	}
	r.log = log.With(zap.String("cmd", cmd.Name()))
	return nil
}

// emit writes rep in the configured format to --out or stdout.
func (r *runner) emit(rep output.Report) error {
	r.negative = rep.Negative

	dst := r.stdout
	var file *os.File
	if r.outPath != "" && r.outPath != "-" {
		f, err := os.Create(r.outPath)
		if err != nil {
			return writeError{errors.Wrap(err, "create output file")}
		}
		file, dst = f, f
	}

	bw := bufio.NewWriter(dst)
	opt := writers.Options{Header: *r.cfg.Output.Header}
	err := writers.Write(r.cfg.Output.Format, bw, rep, opt)
	if err == nil {
		err = bw.Flush()
	}
	if file != nil {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return writeError{err}
	}
	r.log.Debug("report written",
		zap.String("kind", rep.Kind),
		zap.Int("rows", len(rep.Table.Rows)),
		zap.Bool("negative", rep.Negative))
	return nil
}

// unit picks the flag value, falling back to the configured label.
func unit(flag, configured string) string {
	if s := strings.TrimSpace(flag); s != "" {
		return s
	}
	return configured
}
