// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"seqalign/internal/version"
)

// UsageCommon installs the shared Usage() handler on fs.
// extra prints tool-specific sections (usage lines, examples, etc.).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – global pairwise alignment (unit-cost edit distance)\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --query file            Query FASTA (every record is aligned) or '-' [*]")
		fmt.Fprintln(out, "      --seq1 string           Literal query sequence [*]")
		fmt.Fprintln(out, "  -t, --targets file          Target FASTA file(s) (repeatable) or '-'; positionals too [*]")
		fmt.Fprintln(out, "      --seq2 string           Literal target sequence [*]")
		fmt.Fprintf(out, "      --normalize             Strip whitespace/quotes and uppercase inputs [%s]\n", def("normalize"))
		fmt.Fprintf(out, "      --alphabet string       Validate residues: any | dna | iupac | protein [%s]\n", def("alphabet"))

		fmt.Fprintln(out, "\nAlignment:")
		fmt.Fprintf(out, "      --max-cells int         Matrix cell budget per pair and across workers (0=unlimited) [%s]\n", def("max-cells"))
		fmt.Fprintf(out, "      --on-oversize string    Oversized pairs: skip | fail [%s]\n", def("on-oversize"))
		fmt.Fprintf(out, "      --max-distance int      Drop pairs farther apart than this (-1=off) [%s]\n", def("max-distance"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -j, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | tsv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --width int             Alignment columns per block (text) [%s]\n", def("width"))
		fmt.Fprintf(out, "      --counter-width int     Width of the column counter (text) [%s]\n", def("counter-width"))
		fmt.Fprintf(out, "      --color string          Color text blocks: auto | always | never [%s]\n", def("color"))
		fmt.Fprintf(out, "      --sort                  Sort by distance, query, target [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress TSV header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when nothing was emitted [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file           YAML settings file (flags override it)")
		fmt.Fprintf(out, "      --quiet                 Only log errors [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Log debug details [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
