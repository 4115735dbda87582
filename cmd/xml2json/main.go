package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jacoelho/xml2json"
	"github.com/jacoelho/xml2json/internal/config"
	"github.com/jacoelho/xml2json/internal/logging"
	"github.com/jacoelho/xml2json/pkg/jsonvalue"
)

type args struct {
	Inputs     []string `arg:"positional" help:"XML files to convert; reads stdin when none are given"`
	Output     string   `arg:"-o,--output" help:"write JSON to this file instead of stdout"`
	Indent     int      `arg:"-i,--indent" default:"2" help:"spaces per indentation level, 0 for compact output"`
	MaxDepth   int      `arg:"--max-depth" help:"maximum element nesting (0 uses the default)"`
	Force      bool     `arg:"-f,--force" help:"convert files that lack the .xml extension"`
	Verbose    bool     `arg:"-v,--verbose" help:"log progress to stderr"`
	CPUProfile string   `arg:"--cpuprofile" help:"write CPU profile to file"`
	MemProfile string   `arg:"--memprofile" help:"write memory profile to file"`
}

func (args) Description() string {
	return "Converts XML documents to JSON."
}

type runner struct {
	log    *zap.Logger
	stdin  io.Reader
	stderr io.Writer
	opts   xml2json.Options
	a      args
}

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "xml2json"}, &a)
	if err != nil {
		printError(stderr, "error: %v\n", err)
		return 2
	}
	switch err := p.Parse(argv); {
	case err == arg.ErrHelp:
		p.WriteHelp(stdout)
		return 0
	case err != nil:
		printError(stderr, "error: %v\n", err)
		p.WriteUsage(stderr)
		return 2
	}
	if a.Indent < 0 {
		printError(stderr, "error: --indent must be >= 0\n")
		p.WriteUsage(stderr)
		return 2
	}
	opts := xml2json.NewOptions().WithMaxDepth(a.MaxDepth)
	if err := opts.Validate(); err != nil {
		printError(stderr, "error: %v\n", err)
		return 2
	}

	log := zap.NewNop()
	if a.Verbose {
		log, err = logging.New(config.Log{Level: "debug", Encoding: "console", Development: true})
		if err != nil {
			printError(stderr, "error: %v\n", err)
			return 1
		}
		defer func() { _ = log.Sync() }()
	}

	if a.CPUProfile != "" {
		stopCPUProfile, err := startCPUProfile(a.CPUProfile)
		if err != nil {
			printError(stderr, "error starting CPU profile: %v\n", err)
			return 1
		}
		defer func() {
			if err := stopCPUProfile(); err != nil {
				printError(stderr, "error stopping CPU profile: %v\n", err)
			}
		}()
	}
	if a.MemProfile != "" {
		defer func() {
			if err := writeMemProfile(a.MemProfile); err != nil {
				printError(stderr, "error writing memory profile: %v\n", err)
			}
		}()
	}

	out := stdout
	if a.Output != "" {
		f, err := os.Create(a.Output)
		if err != nil {
			printError(stderr, "error: %v\n", errors.Wrap(err, "create output"))
			return 1
		}
		defer func() {
			if err := f.Close(); err != nil {
				printError(stderr, "error: %v\n", errors.Wrap(err, "close output"))
			}
		}()
		out = f
	}

	r := runner{log: log, stdin: stdin, stderr: stderr, opts: opts, a: a}
	return r.convertAll(out)
}

func (r runner) convertAll(out io.Writer) int {
	if len(r.a.Inputs) == 0 {
		if err := r.emit(out, "<stdin>", func() (xml2json.Value, error) {
			return xml2json.ConvertReader(r.stdin, r.opts)
		}); err != nil {
			printError(r.stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	failed := 0
	for _, path := range r.a.Inputs {
		if !r.a.Force && !strings.HasSuffix(path, ".xml") {
			printError(r.stderr, "error: %s: not an .xml file (use --force to convert anyway)\n", path)
			failed++
			continue
		}
		err := r.emit(out, path, func() (xml2json.Value, error) {
			return xml2json.ConvertFile(path, r.opts)
		})
		if err != nil {
			printError(r.stderr, "error: %v\n", err)
			failed++
		}
	}
	if failed > 0 {
		printError(r.stderr, "%d of %d files failed to convert\n", failed, len(r.a.Inputs))
		return 1
	}
	return 0
}

func (r runner) emit(out io.Writer, name string, convert func() (xml2json.Value, error)) error {
	v, err := convert()
	if err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	data, err := encode(v, r.a.Indent)
	if err != nil {
		return errors.Wrapf(err, "%s: encode json", name)
	}
	if _, err := out.Write(data); err != nil {
		return errors.Wrapf(err, "%s: write output", name)
	}
	r.log.Debug("converted", zap.String("input", filepath.Clean(name)), zap.Int("bytes", len(data)))
	return nil
}

func encode(v xml2json.Value, indent int) ([]byte, error) {
	compact := jsonvalue.AppendJSON(nil, v)
	if indent == 0 {
		return append(compact, '\n'), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", strings.Repeat(" ", indent)); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

var errorColor = color.New(color.FgRed, color.Bold)

func printError(w io.Writer, format string, args ...any) {
	_, _ = errorColor.Fprintf(w, format, args...)
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return nil, fmt.Errorf("start cpu profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return nil, fmt.Errorf("start cpu profile %s: %w", path, err)
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("close cpu profile %s: %w", path, err)
		}
		return nil
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile %s: %w", path, err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("write mem profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return fmt.Errorf("write mem profile %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close mem profile %s: %w", path, err)
	}
	return nil
}
