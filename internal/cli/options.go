// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"faidx-core/fai"

	"faidx/internal/cliutil"
	"faidx/internal/version"
)

// DefaultLength is the default output line length.
const DefaultLength = 60

// Tool describes one CLI persona. faidx and fqidx differ only in their
// default format and in whether the --fastq override is offered.
type Tool struct {
	Name       string
	Format     fai.Format
	Example    string
	OfferFastq bool
}

var (
	Faidx = Tool{Name: "faidx", Format: fai.FASTA, Example: "<file.fa>", OfferFastq: true}
	Fqidx = Tool{Name: "fqidx", Format: fai.FASTQ, Example: "<file.fq>"}
)

// Options holds all CLI flags and positional arguments.
type Options struct {
	Output     string
	Length     int
	Continue   bool
	RegionFile string
	Fastq      bool
	Version    bool

	File    string   // the sequence file path (first positional)
	Regions []string // trailing region tokens
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(tool Tool) *flag.FlagSet {
	fs := flag.NewFlagSet(tool.Name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		ft := tool.Format.String()
		fmt.Fprintf(out, "Usage: %s %s [<region> [...]]\n\n", tool.Name, tool.Example)
		fmt.Fprintln(out, "Options:")
		fmt.Fprintf(out, "  -o, --output FILE       write %s to FILE [stdout]\n", ft)
		fmt.Fprintf(out, "  -n, --length INT        length of %s sequence line [%d]\n", ft, DefaultLength)
		fmt.Fprintln(out, "  -c, --continue          continue after trying to retrieve missing region")
		fmt.Fprintln(out, "  -r, --region-file FILE  file of regions (name:from-to, one per line)")
		if tool.OfferFastq {
			fmt.Fprintln(out, "  -f, --fastq             file and index in FASTQ format")
		}
		fmt.Fprintln(out, "  -h, --help              show this help and exit")
		fmt.Fprintln(out, "  -v, --version           print version and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
// Region tokens may appear before or after option flags. A missing file
// argument is not an error here: the app treats it as the usage case.
func ParseArgs(fs *flag.FlagSet, argv []string, tool Tool) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "output", "", "output file [stdout]")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.IntVar(&opt.Length, "length", DefaultLength, "sequence line length")
	fs.IntVar(&opt.Length, "n", DefaultLength, "alias of --length")
	fs.BoolVar(&opt.Continue, "continue", false, "continue after a missing region")
	fs.BoolVar(&opt.Continue, "c", false, "alias of --continue")
	fs.StringVar(&opt.RegionFile, "region-file", "", "file of regions, one per line")
	fs.StringVar(&opt.RegionFile, "r", "", "alias of --region-file")
	if tool.OfferFastq {
		fs.BoolVar(&opt.Fastq, "fastq", false, "file and index in FASTQ format")
		fs.BoolVar(&opt.Fastq, "f", false, "alias of --fastq")
	}
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show this help and exit")
	fs.BoolVar(&help, "h", false, "alias of --help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if len(posArgs) > 0 {
		opt.File = posArgs[0]
		opt.Regions = posArgs[1:]
	}
	return opt, nil
}

// VersionLine is the --version output.
func VersionLine(tool Tool) string {
	return fmt.Sprintf("%s version %s", tool.Name, version.Version)
}
