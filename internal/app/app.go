// internal/app/app.go
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"faidx-core/fai"

	"faidx/internal/cli"
	"faidx/internal/emit"
	"faidx/internal/regions"
	"faidx/internal/writers"
)

// Mode selects what a run does, decided once after flag parsing.
type Mode int

const (
	// ModeBuild indexes the file and exits: a bare path with no region
	// tokens and no region file.
	ModeBuild Mode = iota
	// ModeExtract loads the index and emits the requested regions.
	ModeExtract
)

// SelectMode chooses between building and extracting.
func SelectMode(opts cli.Options) Mode {
	if len(opts.Regions) == 0 && opts.RegionFile == "" {
		return ModeBuild
	}
	return ModeExtract
}

// Run parses argv and executes one faidx/fqidx run, returning the
// process exit code. All records go to stdout (or the --output file),
// all diagnostics to stderr.
func Run(tool cli.Tool, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(tool)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv, tool)
	if errors.Is(err, flag.ErrHelp) {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintln(stdout, cli.VersionLine(tool))
		return 0
	}
	if opts.File == "" {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	if opts.Length < 1 {
		fmt.Fprintf(stderr, "%s: bad line length '%d', using default: %d\n",
			tool.Name, opts.Length, cli.DefaultLength)
		opts.Length = cli.DefaultLength
	}
	format := tool.Format
	if opts.Fastq {
		format = fai.FASTQ
	}

	if SelectMode(opts) == ModeBuild {
		if err := fai.Build(opts.File); err != nil {
			fmt.Fprintf(stderr, "%s: could not build index %s%s: %v\n",
				tool.Name, opts.File, fai.IndexExt, err)
			return 1
		}
		return 0
	}

	idx, err := fai.Load(opts.File, format)
	if err != nil {
		fmt.Fprintf(stderr, "%s: could not load index of %s: %v\n", tool.Name, opts.File, err)
		return 1
	}
	defer idx.Close()

	sink, err := writers.OpenSink(stdout, opts.Output, opts.File)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", tool.Name, err)
		return 1
	}

	x := &extractor{
		idx:    idx,
		rec:    emit.New(sink, stderr, tool.Name, opts.Length, format),
		tool:   tool.Name,
		stderr: stderr,
		cont:   opts.Continue,
		fastq:  format == fai.FASTQ,
	}

	status := 0
	if opts.RegionFile != "" {
		src, err := regions.Open(opts.RegionFile)
		if err != nil {
			fmt.Fprintf(stderr, "%s: failed to open %q for reading\n", tool.Name, opts.RegionFile)
			_ = sink.Close()
			return 1
		}
		status = x.drain(src)
		if err := src.Close(); err != nil {
			fmt.Fprintf(stderr, "%s: warning: failed to close %s\n", tool.Name, opts.RegionFile)
		}
	}
	if status == 0 {
		status = x.drain(regions.FromArgs(opts.Regions))
	}

	if err := sink.Close(); err != nil && !writers.IsBrokenPipe(err) {
		fmt.Fprintf(stderr, "%s: failed to flush output: %v\n", tool.Name, err)
		status = 1
	}
	return status
}

// extractor runs the fetch-classify-emit loop for one open index.
type extractor struct {
	idx    *fai.Index
	rec    *emit.Writer
	tool   string
	stderr io.Writer
	cont   bool
	fastq  bool
}

// drain pulls tokens from src until exhaustion or the first fatal
// outcome. A downstream consumer closing the pipe early ends the run
// successfully, matching the usual CLI convention.
func (x *extractor) drain(src regions.Source) int {
	for {
		tok, err := src.Read()
		if err == io.EOF {
			return 0
		}
		if err != nil {
			fmt.Fprintf(x.stderr, "%s: %v\n", x.tool, err)
			return 1
		}
		if err := x.one(tok); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			return 1
		}
	}
}

// one fetches and emits a single region. A missing region is tolerated
// under --continue and writes nothing; any other failure is fatal.
func (x *extractor) one(tok string) error {
	seq, err := x.idx.Fetch(tok)
	if err != nil {
		return x.missing(tok, err)
	}
	var qual []byte
	if x.fastq {
		if qual, err = x.idx.FetchQual(tok); err != nil {
			return x.missing(tok, err)
		}
	}
	if err := x.rec.Record(tok, seq, qual); err != nil {
		if !writers.IsBrokenPipe(err) {
			fmt.Fprintf(x.stderr, "%s: failed to write output: %v\n", x.tool, err)
		}
		return err
	}
	return nil
}

func (x *extractor) missing(tok string, err error) error {
	fmt.Fprintf(x.stderr, "%s: failed to fetch sequence in %s\n", x.tool, tok)
	if x.cont && errors.Is(err, fai.ErrNotFound) {
		return nil
	}
	return err
}
