// internal/app/primer.go
package app

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labnotex-core/fasta"
	"labnotex-core/primer"
	"labnotex-core/seq"
	"labnotex/internal/output"
)

// primerFlags are shared by tm and pair.
type primerFlags struct {
	file    string
	forward []string
	reverse []string
}

func (pf *primerFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&pf.file, "primers", "p", "", "primer file: id sequence direction per line")
	f.StringArrayVarP(&pf.forward, "forward", "f", nil, "forward primer 5'→3' (repeatable)")
	f.StringArrayVarP(&pf.reverse, "reverse", "r", nil, "reverse primer 5'→3' (repeatable)")
}

// load builds the candidate list: file rows first, then inline forward and
// reverse primers named "Primer N" in the order given.
func (pf *primerFlags) load(extra []string) ([]primer.Primer, error) {
	var list []primer.Primer
	if pf.file != "" {
		l, err := primer.LoadTSV(pf.file)
		if err != nil {
			return nil, err
		}
		list = l
	}
	add := func(raws []string, dir primer.Direction) error {
		for _, raw := range raws {
			p, err := primer.New("", primer.DefaultName(len(list)+1), raw, dir)
			if err != nil {
				return err
			}
			list = append(list, p)
		}
		return nil
	}
	if err := add(pf.forward, primer.Forward); err != nil {
		return nil, err
	}
	if err := add(extra, primer.Forward); err != nil {
		return nil, err
	}
	if err := add(pf.reverse, primer.Reverse); err != nil {
		return nil, err
	}
	return list, nil
}

func newTmCmd(r *runner) *cobra.Command {
	var pf primerFlags
	cmd := &cobra.Command{
		Use:   "tm [SEQUENCE...]",
		Short: "Primer melting temperature, GC content and length",
		Long: `Report Tm, GC% and length for each primer. Positional sequences count as
forward primers. Primers shorter than 14 nt use the Wallace rule
(Tm = 2·N); longer ones use Tm = 64.9 + 41·(GC − 16.4)/N.`,
		Example: `  labnotex tm ATGGTGAGCAAGGGCGAGGA
  labnotex tm -p primers.tsv -o tsv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := pf.load(args)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				return usageError{errors.New("no primers given (use arguments, --forward/--reverse or --primers)")}
			}
			r.log.Debug("tm", zap.Int("primers", len(list)))
			return r.emit(output.Primers(list))
		},
	}
	pf.register(cmd)
	return cmd
}

func newGCCmd(r *runner) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "gc [SEQUENCE...]",
		Short: "GC content of a sequence",
		Long: `GC content of a sequence. Characters that are not nucleotide letters
(digits, spaces, punctuation) are dropped before counting. With --file every
FASTA record gets its own row.`,
		Example: "  labnotex gc ATGCGC\n  labnotex gc --file plasmids.fa.gz",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				_, s, err := sequenceInput(cmd.Context(), file, args, "")
				if err != nil {
					return err
				}
				return r.emit(output.GC(seq.Sanitize(s)))
			}
			recs, err := recordsInput(cmd.Context(), file, args)
			if err != nil {
				return err
			}
			r.log.Debug("gc", zap.Int("records", len(recs)))
			return r.emit(output.GCRecords(recs))
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read every record of a FASTA file (gzip ok, - for stdin)")
	return cmd
}

func newRevCompCmd(r *runner) *cobra.Command {
	var (
		file string
		opt  seq.Options
	)
	cmd := &cobra.Command{
		Use:   "revcomp [SEQUENCE...]",
		Short: "Reverse complement (IUPAC aware)",
		Long: `Reverse-complement a DNA/RNA sequence. IUPAC ambiguity codes are
complemented (R↔Y, K↔M, B↔V, D↔H; S, W, N unchanged); U pairs with A; case is
kept; characters outside the table pass through unchanged. Whitespace and
digits are stripped unless --keep-spaces / --keep-digits is set.`,
		Example: "  labnotex revcomp ATGCRYN\n  labnotex revcomp --keep-spaces 'ATG CCC'",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := sequenceInput(cmd.Context(), file, args, " ")
			if err != nil {
				return err
			}
			return r.emit(output.RevComp(s, seq.ReverseComplement(s, opt)))
		},
	}
	f := cmd.Flags()
	f.StringVar(&file, "file", "", "read the first record of a FASTA file (gzip ok, - for stdin)")
	f.BoolVar(&opt.KeepWhitespace, "keep-spaces", false, "keep whitespace in the output")
	f.BoolVar(&opt.KeepDigits, "keep-digits", false, "keep digits (position numbers) in the output")
	return cmd
}

func newPairCmd(r *runner) *cobra.Command {
	var (
		pf           primerFlags
		template     string
		templateFile string
		iupac        bool
	)
	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Check a forward/reverse primer pair against a template",
		Long: `Check the first forward and the first reverse primer against a template:
both must bind (exact match of the forward primer and of the reverse
complement of the reverse primer), in the right orientation, with Tm values
at most 5 °C apart. The product size is reported for binding pairs.
With --iupac, ambiguity codes in the primers (R, Y, N, ...) match any
template base they stand for.

Exit status is 1 when the pair is not compatible.`,
		Example: `  labnotex pair -f ATGGTGAGCAAGGGCGAGGA -r CTTGTACAGCTCGTCCATGC --template-file egfp.fa
  labnotex pair -p primers.tsv --template ACGT... -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := pf.load(nil)
			if err != nil {
				return err
			}
			if template != "" && templateFile != "" {
				return usageError{errors.New("give --template or --template-file, not both")}
			}
			if templateFile != "" {
				rec, err := fasta.ReadFirst(cmd.Context(), templateFile)
				if err != nil {
					return err
				}
				template = rec.Seq
			}
			analyze := primer.AnalyzePair
			if iupac {
				analyze = primer.AnalyzePairIUPAC
			}
			a := analyze(list, template)
			r.log.Debug("pair", zap.Int("candidates", len(list)), zap.Int("template_len", len(template)),
				zap.Bool("iupac", iupac), zap.Stringer("status", a.Status))
			return r.emit(output.Pair(a))
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&template, "template", "", "template sequence")
	cmd.Flags().StringVar(&templateFile, "template-file", "", "template FASTA (first record; gzip ok, - for stdin)")
	cmd.Flags().BoolVar(&iupac, "iupac", false, "let IUPAC ambiguity codes in primers match the bases they stand for")
	return cmd
}
