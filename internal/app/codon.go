// internal/app/codon.go
package app

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labnotex-core/codon"
	"labnotex-core/restriction"
	"labnotex/internal/output"
)

func newTranslateCmd(r *runner) *cobra.Command {
	var (
		file  string
		typ   string
		frame int
	)
	cmd := &cobra.Command{
		Use:   "translate [SEQUENCE...]",
		Short: "Translate DNA/RNA codons into amino acids",
		Long: `Translate a DNA or RNA sequence in reading frame 1, 2 or 3 with the standard
genetic code. Stop codons are shown as '*', codons with other letters as '?'.
A trailing partial codon is ignored.`,
		Example: `  labnotex translate ATGCCTAAGCTTGCTCAATCAATGGCTAAAGCT
  labnotex translate --frame 2 --file cds.fa -o tsv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := sequenceInput(cmd.Context(), file, args, "")
			if err != nil {
				return err
			}
			st, err := codon.ParseSequenceType(typ)
			if err != nil {
				return err
			}
			tr, err := codon.Translate(s, st, frame)
			if err != nil {
				return err
			}
			r.log.Debug("translate", zap.String("type", string(st)), zap.Int("frame", frame), zap.Int("codons", len(tr.Codons)))
			return r.emit(output.Translation(tr))
		},
	}
	f := cmd.Flags()
	f.StringVar(&file, "file", "", "read the first record of a FASTA file (gzip ok, - for stdin)")
	f.StringVar(&typ, "type", "dna", "dna | rna")
	f.IntVar(&frame, "frame", 1, "reading frame 1, 2 or 3")
	return cmd
}

func newSitesCmd(r *runner) *cobra.Command {
	var (
		file    string
		enzymes []string
	)
	cmd := &cobra.Command{
		Use:   "sites [SEQUENCE...]",
		Short: "Find restriction enzyme sites",
		Long: `Report the 1-based positions of every recognition site (overlapping,
case-insensitive) of EcoRI, BamHI, HindIII, XbaI, PstI, SalI, NotI and XhoI,
or only of the enzymes named with --enzyme.`,
		Example: `  labnotex sites --file pUC19.fa
  labnotex sites --enzyme EcoRI,BamHI GAATTCGGATCC`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, s, err := sequenceInput(cmd.Context(), file, args, "")
			if err != nil {
				return err
			}
			sel, err := restriction.Select(enzymes)
			if err != nil {
				return err
			}
			s = compact(s)
			found := restriction.FindSites(s, sel)
			r.log.Debug("sites", zap.String("id", id), zap.Int("length", len(s)), zap.Int("enzymes", len(sel)))
			return r.emit(output.Sites(id, len(s), found))
		},
	}
	f := cmd.Flags()
	f.StringVar(&file, "file", "", "read the first record of a FASTA file (gzip ok, - for stdin)")
	f.StringSliceVarP(&enzymes, "enzyme", "e", nil, "enzymes to search (comma separated or repeated; default all)")
	return cmd
}
