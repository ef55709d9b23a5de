package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"labnotex/pkg/api"
)

// isolate points config lookup at an empty temp dir and clears overrides.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("LABNOTEX_CONFIG", filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("LABNOTEX_OUTPUT", "")
	t.Setenv("LABNOTEX_LOG_LEVEL", "")
	t.Setenv("LABNOTEX_ALPHA", "")
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestDiluteTSV(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "dilute", "--c1", "10", "--c2", "2", "--v1", "5", "-o", "tsv")
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "quantity\tvalue\tunit\nV2\t25.00\tmL\n", out)
	assert.Empty(t, stderr, "default log level keeps stderr quiet")
}

func TestDiluteNoHeader(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, "dilute", "--mode", "C2", "--c1", "10", "--v1", "5", "--v2", "25", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "C2\t2.0000\tmol/L\ndiluent\t20.00\tmL\n", out)
}

func TestDiluteValidationErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero divisor", []string{"dilute", "--c1", "10", "--c2", "0", "--v1", "5"}, "C2 must not be 0"},
		{"non numeric", []string{"dilute", "--c1", "ten", "--c2", "2", "--v1", "5"}, "enter valid numbers"},
		{"missing", []string{"dilute", "--c1", "10", "--c2", "2"}, "enter valid numbers"},
		{"bad mode", []string{"dilute", "--mode", "findX"}, "unknown dilution mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := run(t, tt.args...)
			assert.Equal(t, ExitUsage, code)
			assert.Empty(t, out)
			assert.Contains(t, stderr, "error: "+tt.want)
		})
	}
}

func TestSerialJSON(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "serial", "--initial", "1", "--target", "0.001", "--factor", "2",
		"--transfer", "5", "--total", "10", "-o", "json")
	require.Equal(t, ExitOK, code, stderr)
	var got api.SerialV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 10, got.Steps)
	assert.Len(t, got.Series, 11)
	assert.Equal(t, "9.77e-4", got.Series[10].Concentration.Display)
	assert.Equal(t, "5.00", got.Series[10].DiluentVolume.Display)
	assert.Contains(t, got.Summary, "10-step dilution series")
}

func TestSerialInfeasible(t *testing.T) {
	isolate(t)
	code, _, stderr := run(t, "serial", "--initial", "1", "--target", "0.001", "--factor", "2",
		"--transfer", "5", "--total", "10", "--max-steps", "5")
	assert.Equal(t, ExitNegative, code)
	assert.Contains(t, stderr, "the limit is 5")

	code, _, stderr = run(t, "serial", "--initial", "1", "--target", "2", "--transfer", "1", "--total", "10")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "greater than target")
}

func TestMolarity(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "molarity", "conc", "--mass", "100", "--mw", "NaCl", "--volume", "500", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "molarity\t3.4223\tmM\n", out)

	code, out, _ = run(t, "molarity", "stock", "--stock", "1000", "--final", "10", "--final-volume", "50", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "stock\t0.50\tmL\n", out)

	code, out, _ = run(t, "molarity", "substances", "-o", "tsv")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "NaCl\tSodium chloride\t58.44\n")

	code, _, stderr = run(t, "molarity", "conc", "--mass", "1", "--mw", "unobtainium", "--volume", "1")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "neither a number nor a known substance")
	assert.Contains(t, stderr, "NaCl")
}

func TestTmAndGC(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "tm", "ATGGTGAGCAAGGGCGAGGA", "ATGC", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code, stderr)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Primer 1\tforward\tATGGTGAGCAAGGGCGAGGA\t20\t60.0\t55.9\tempirical", lines[0])
	assert.Equal(t, "Primer 2\tforward\tATGC\t4\t50.0\t8.0\twallace", lines[1])

	code, out, _ = run(t, "gc", "AT GC", "GC", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "ATGCGC\t6\t4\t66.7\n", out)

	code, _, stderr = run(t, "tm")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "no primers given")
}

func TestRevComp(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, "revcomp", "ATG", "cRy", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "ATG cRy\trYgCAT\t6\n", out)

	code, out, _ = run(t, "revcomp", "--keep-spaces", "ATG", "CC", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "ATG CC\tGG CAT\t6\n", out)
}

const (
	fwdPrimer = "ATGGTGAGCAAGGGCGAGGA"
	revPrimer = "CTTGTACAGCTCGTCCATGC"
	template  = "GG" + fwdPrimer + "ACGTACGTAC" + "GCATGGACGAGCTGTACAAG" + "TT"
)

func TestPairCompatible(t *testing.T) {
	isolate(t)
	fa := filepath.Join(t.TempDir(), "t.fa")
	require.NoError(t, os.WriteFile(fa, []byte(">egfp fragment\n"+template[:30]+"\n"+template[30:]+"\n"), 0o644))

	code, out, stderr := run(t, "pair", "-f", fwdPrimer, "-r", revPrimer, "--template-file", fa, "-o", "json")
	require.Equal(t, ExitOK, code, stderr)
	var got api.PairV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Compatible)
	assert.Equal(t, "compatible", got.Status)
	assert.Equal(t, 50, got.ProductSize)
	assert.Equal(t, 3, got.ForwardPos)
	assert.InDelta(t, 2.1, got.TmDiff, 1e-9)
	assert.Contains(t, got.Message, "50 bp")
}

func TestPairIncompatibleExitsOne(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, "pair", "-f", fwdPrimer, "--template", template, "-o", "tsv", "--no-header")
	assert.Equal(t, ExitNegative, code)
	assert.True(t, strings.HasPrefix(out, "missing_primer\t"), out)

	code, out, _ = run(t, "pair", "-f", fwdPrimer, "-r", revPrimer, "--template", "ACGT", "-o", "tsv", "--no-header")
	assert.Equal(t, ExitNegative, code)
	assert.True(t, strings.HasPrefix(out, "forward_unbound\t"), out)
}

func TestPairIUPAC(t *testing.T) {
	isolate(t)
	degenerate := "ATGRTGAGCAAGGGCGAGGA"
	code, out, _ := run(t, "pair", "-f", degenerate, "-r", revPrimer, "--template", template, "-o", "tsv", "--no-header")
	assert.Equal(t, ExitNegative, code)
	assert.True(t, strings.HasPrefix(out, "forward_unbound\t"), out)

	code, out, stderr := run(t, "pair", "--iupac", "-f", degenerate, "-r", revPrimer, "--template", template, "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code, stderr)
	assert.True(t, strings.HasPrefix(out, "compatible\t"), out)
}

func TestPairPrimerFile(t *testing.T) {
	isolate(t)
	p := filepath.Join(t.TempDir(), "primers.tsv")
	require.NoError(t, os.WriteFile(p, []byte("# egfp\nF1 "+fwdPrimer+" forward\nR1 "+revPrimer+" reverse\n"), 0o644))
	code, out, stderr := run(t, "pair", "-p", p, "--template", template, "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code, stderr)
	assert.True(t, strings.HasPrefix(out, "compatible\tF1\tR1\t3\t33\t50\t2.1\t"), out)

	bad := filepath.Join(t.TempDir(), "bad.tsv")
	require.NoError(t, os.WriteFile(bad, []byte("F1 "+fwdPrimer+" sideways\n"), 0o644))
	code, _, stderr = run(t, "pair", "-p", bad, "--template", template)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "bad.tsv:1")
}

func TestTTest(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "ttest",
		"--group1", "23.4, 25.1, 24.7, 26.3, 22.9, 24.8",
		"--group2", "20.6 21.8 22.7 21.3 23.1 20.9 21.5",
		"-o", "tsv")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, out, "method\tstudent\n")
	assert.Contains(t, out, "df\t11\n")
	assert.Contains(t, out, "t\t4.7749\n")
	assert.Contains(t, out, "p_approx\t< 0.001\n")
	assert.Contains(t, out, "significant\ttrue\n")

	code, out, _ = run(t, "ttest", "--welch", "--group1", "23.4,25.1,24.7,26.3,22.9,24.8",
		"--group2", "20.6,21.8,22.7,21.3,23.1,20.9,21.5", "-o", "json")
	require.Equal(t, ExitOK, code)
	var got api.TTestV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "welch", got.Method)
	assert.Equal(t, 9, got.DegreesOfFreedom)
}

func TestTTestFromFilesPaired(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("5.2\n4.8\n6.1\n5.3\n4.9\n5.7\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("4.8\n4.2\n5.4\n4.6\n4.3\n5.0\n"), 0o644))

	code, out, stderr := run(t, "ttest", "--type", "paired", "--group1-file", a, "--group2-file", b, "-o", "tsv")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, out, "method\tpaired\n")
	assert.Contains(t, out, "df\t5\n")
}

func TestTTestErrors(t *testing.T) {
	isolate(t)
	code, _, stderr := run(t, "ttest", "--group1", "1", "--group2", "1,2")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "group 1 needs at least two values")

	code, _, stderr = run(t, "ttest", "--group1", "1,2", "--group2", "1,2", "--alpha", "1.5")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "between 0 and 1")

	code, _, stderr = run(t, "ttest", "--group1", "1,2,x", "--group2", "1,2")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, `"x" is not a valid number`)
}

func TestTranslate(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "translate", "ATGCCTAAGCTTGCTCAATCAATGGCTAAAGCT", "-o", "json")
	require.Equal(t, ExitOK, code, stderr)
	var got api.TranslationV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "MPKLAQSMAKA", got.AminoAcids)
	assert.Len(t, got.Codons, 11)

	code, out, _ = run(t, "translate", "--frame", "2", "ATGCCTAAG", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "1\tUGC\tC\tCysteine\tspecial\n2\tCUA\tL\tLeucine\thydrophobic\n", out)

	code, _, stderr = run(t, "translate", "--frame", "4", "ATG")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "reading frame must be 1, 2 or 3")
}

func TestSites(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "sites", "-e", "EcoRI", "-e", "bamhi", "GAATTCAAGAATTC", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "EcoRI\tGAATTC\t2\t1,9\nBamHI\tGGATCC\t0\t\n", out)

	code, _, stderr = run(t, "sites", "-e", "EcoRV", "GAATTC")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, `unknown enzyme "EcoRV"`)
}

func TestGCSanitizes(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "gc", "ATGC12", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "ATGC\t4\t2\t50.0\n", out)

	code, out, _ = run(t, "gc", "GG-CC*", "-o", "json")
	require.Equal(t, ExitOK, code)
	var v api.GCV1
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, api.GCV1{Sequence: "GGCC", Length: 4, GCCount: 4, GCPercent: 100}, v)
}

func TestGCFileRecords(t *testing.T) {
	isolate(t)
	fa := filepath.Join(t.TempDir(), "two.fa")
	require.NoError(t, os.WriteFile(fa, []byte(">a first\nGGCC\nAT\n>b\nATAT 12\n"), 0o644))

	code, out, stderr := run(t, "gc", "--file", fa, "-o", "tsv")
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "id\tlength\tgc_count\tgc_percent\na\t6\t4\t66.7\nb\t4\t0\t0.0\n", out)

	code, out, _ = run(t, "gc", "--file", fa, "-o", "json")
	require.Equal(t, ExitOK, code)
	var vs []api.GCV1
	require.NoError(t, json.Unmarshal([]byte(out), &vs))
	require.Len(t, vs, 2)
	assert.Equal(t, "a", vs[0].ID)
	assert.Equal(t, "GGCCAT", vs[0].Sequence)
	assert.Equal(t, "ATAT", vs[1].Sequence)

	empty := filepath.Join(t.TempDir(), "empty.fa")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o644))
	code, _, stderr = run(t, "gc", "--file", empty)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "no sequence records found")
}

func TestSequenceInputRules(t *testing.T) {
	isolate(t)
	code, _, stderr := run(t, "gc")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "a sequence argument or --file is required")

	code, _, stderr = run(t, "gc", "--file", "x.fa", "ACGT")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "not both")

	code, _, stderr = run(t, "gc", "--file", filepath.Join(t.TempDir(), "missing.fa"))
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "open sequence file")
}

func TestConfigFileAndEnv(t *testing.T) {
	isolate(t)
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  format: tsv\n  header: false\nunits:\n  concentration: mM\n"), 0o644))

	code, out, stderr := run(t, "--config", cfg, "dilute", "--mode", "C1", "--c2", "2", "--v1", "5", "--v2", "25")
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "C1\t10.0000\tmM\ndiluent\t20.00\tmL\n", out)

	t.Setenv("LABNOTEX_CONFIG", cfg)
	t.Setenv("LABNOTEX_OUTPUT", "json")
	code, out, _ = run(t, "gc", "GGCC")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, `"gc_percent": 100`)

	// flags beat env and file
	code, out, _ = run(t, "gc", "GGCC", "-o", "tsv")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "GGCC\t4\t4\t100.0\n", out)
}

func TestConfigValidatedAfterOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("LABNOTEX_OUTPUT", "xml")
	code, out, stderr := run(t, "gc", "GGCC", "-o", "tsv", "--no-header")
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "GGCC\t4\t4\t100.0\n", out)

	code, _, stderr = run(t, "gc", "GGCC")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "output.format must be one of")
}

func TestConfigSectionsCheckedByTheirCommand(t *testing.T) {
	isolate(t)
	t.Setenv("LABNOTEX_ALPHA", "2")
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("serial:\n  max_steps: 0\n"), 0o644))
	t.Setenv("LABNOTEX_CONFIG", cfg)

	code, _, stderr := run(t, "dilute", "--c1", "10", "--c2", "2", "--v1", "5", "-o", "tsv")
	require.Equal(t, ExitOK, code, stderr)

	ttestArgs := []string{"ttest", "--group1", "1 2 3", "--group2", "4 5 6", "-o", "tsv"}
	code, _, stderr = run(t, ttestArgs...)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "stats.alpha must be between 0 and 1")

	code, _, stderr = run(t, append(ttestArgs, "--alpha", "0.05")...)
	assert.Equal(t, ExitOK, code, stderr)

	serialArgs := []string{"serial", "--initial", "1", "--target", "0.1", "--factor", "10", "--transfer", "1", "--total", "10", "-o", "tsv"}
	code, _, stderr = run(t, serialArgs...)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "serial.max_steps must be >= 1")

	code, _, stderr = run(t, append(serialArgs, "--max-steps", "5")...)
	assert.Equal(t, ExitOK, code, stderr)
}

func TestConfigInit(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "lab", "config.yaml")

	code, out, stderr := run(t, "--config", path, "config", "init")
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, path+"\n", out)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "format: text")
	assert.Contains(t, string(b), "max_steps: 1000")

	code, _, stderr = run(t, "--config", path, "config", "init")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "already exists")

	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: csv\n"), 0o644))
	code, _, stderr = run(t, "--config", path, "config", "init", "--force")
	require.Equal(t, ExitOK, code, stderr)

	code, out, stderr = run(t, "--config", path, "dilute", "--c1", "10", "--c2", "2", "--v1", "5")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, out, "25.00")
}

func TestConfigShow(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: csv\nunits:\n  volume: µL\n"), 0o644))
	t.Setenv("LABNOTEX_ALPHA", "0.01")

	code, out, stderr := run(t, "--config", path, "config", "show", "--no-header")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, out, "format: csv")
	assert.Contains(t, out, "header: false")
	assert.Contains(t, out, "volume: µL")
	assert.Contains(t, out, "alpha: 0.01")
	assert.Contains(t, stderr, "output.format must be one of", "invalid values are reported")
}

func TestBadOutputFormat(t *testing.T) {
	isolate(t)
	code, _, stderr := run(t, "gc", "ACGT", "-o", "csv")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "output.format must be one of")
}

func TestOutFileXLSX(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "series.xlsx")
	code, out, stderr := run(t, "serial", "--initial", "1", "--target", "0.2", "--factor", "2",
		"--transfer", "2", "--total", "10", "-o", "xlsx", "--out", path)
	require.Equal(t, ExitOK, code, stderr)
	assert.Empty(t, out)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("serial")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 5)
	assert.Equal(t, "step", rows[0][0])
	assert.Equal(t, "3", rows[4][0])
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteErrors(t *testing.T) {
	isolate(t)
	var errBuf bytes.Buffer
	code := Run([]string{"gc", "ACGT"}, errWriter{syscall.EPIPE}, &errBuf)
	assert.Equal(t, ExitOK, code, "broken pipe is not an error")
	assert.Empty(t, errBuf.String())

	errBuf.Reset()
	code = Run([]string{"gc", "ACGT"}, errWriter{syscall.ENOSPC}, &errBuf)
	assert.Equal(t, ExitWrite, code)
	assert.Contains(t, errBuf.String(), "error:")
}

func TestVerboseLogging(t *testing.T) {
	isolate(t)
	code, _, stderr := run(t, "-v", "gc", "ACGT")
	require.Equal(t, ExitOK, code)
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "gc", entry["cmd"])
	assert.NotEmpty(t, entry["run_id"])
}

func TestUsage(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, "--help")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "labnotex")
	assert.Contains(t, out, "translate")
	assert.Contains(t, out, "config")

	code, out, _ = run(t, "--version")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "labnotex version")

	code, _, stderr := run(t, "dilute", "--c9", "1")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "unknown flag")

	code, _, _ = run(t, "frobnicate")
	assert.Equal(t, ExitUsage, code)
}
