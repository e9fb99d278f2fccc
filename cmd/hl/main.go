// hl prints syntax highlighted files.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"github.com/eaburns/hl/highlight"
	"github.com/eaburns/hl/render"
	"github.com/eaburns/hl/syntax"
	"github.com/eaburns/hl/syntax/dirsyntax"
	"github.com/eaburns/hl/syntax/gosyntax"
	"github.com/eaburns/hl/syntax/mdsyntax"
	"github.com/jessevdk/go-flags"
	"github.com/muesli/termenv"
)

// themes are the built-in themes, in the order their Files are tried.
var themes = []*syntax.Theme{
	&gosyntax.Theme,
	&mdsyntax.Theme,
	&dirsyntax.Theme,
}

var profiles = map[string]termenv.Profile{
	"ascii":     termenv.Ascii,
	"ansi":      termenv.ANSI,
	"ansi256":   termenv.ANSI256,
	"truecolor": termenv.TrueColor,
}

type options struct {
	Theme     *flags.Filename `short:"t" long:"theme" description:"theme file (.yaml, .yml, .toml, or .json)"`
	Syntax    string          `short:"s" long:"syntax" description:"built-in theme, instead of choosing by file name" choice:"go" choice:"markdown" choice:"dir"`
	Format    string          `short:"f" long:"format" description:"output format" choice:"ansi" choice:"html" choice:"png" default:"ansi"`
	Profile   string          `short:"p" long:"profile" description:"terminal color profile" choice:"auto" choice:"ascii" choice:"ansi" choice:"ansi256" choice:"truecolor" default:"auto"`
	Output    *flags.Filename `short:"o" long:"output" description:"output file path"`
	Font      string          `long:"font" description:"base font family" default:"Go"`
	Size      float64         `long:"size" description:"base font size in points" default:"11"`
	DPI       float32         `long:"dpi" description:"png resolution" default:"96"`
	DumpTheme string          `long:"dump-theme" description:"print the selected theme and exit" choice:"yaml" choice:"toml" choice:"json"`
	Verbose   bool            `short:"v" long:"verbose" description:"enable verbose logging"`

	Positional struct {
		Files []flags.Filename `positional-arg-name:"file" description:"input file path; standard input if none"`
	} `positional-args:"yes"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "hl: %s\n", err)
	os.Exit(1)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts := &options{}
	fp := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	fp.Name = "hl"
	fp.LongDescription = `
hl prints files with regular expression syntax highlighting.

The theme is read from --theme, named by --syntax,
or chosen by matching the file name against the built-in themes:
go (*.go), markdown (*.md), and dir (*/).`

	if _, err := fp.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			_, err := fmt.Fprintln(stdout, ferr.Message)
			return err
		}
		return err
	}

	highlight.Debug = opts.Verbose

	if opts.Output == nil {
		return write(opts, stdout, stdin)
	}
	f, err := os.Create(string(*opts.Output))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	err = write(opts, w, stdin)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func write(opts *options, out io.Writer, stdin io.Reader) error {
	if opts.DumpTheme != "" {
		var path string
		if len(opts.Positional.Files) > 0 {
			path = string(opts.Positional.Files[0])
		}
		th, err := selectTheme(opts, path)
		if err != nil {
			return err
		}
		return th.Encode(out, opts.DumpTheme)
	}

	if opts.Format == "png" && len(opts.Positional.Files) > 1 {
		return errors.New("png output takes at most one file")
	}

	font := highlight.FontDesc{Family: opts.Font, Size: opts.Size}
	profile, ok := profiles[opts.Profile]
	if !ok {
		profile = termenv.NewOutput(out).EnvColorProfile()
	}

	if len(opts.Positional.Files) == 0 {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		return highlightFile(opts, out, "", string(src), font, profile)
	}
	for _, path := range opts.Positional.Files {
		p, src, err := readFile(string(path))
		if err != nil {
			return err
		}
		if err := highlightFile(opts, out, p, src, font, profile); err != nil {
			return err
		}
	}
	return nil
}

// readFile returns the contents of a file.
// The contents of a directory are its entries, one per line,
// with a / after subdirectories, and the returned path ends in /.
func readFile(path string) (string, string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", "", err
	}
	if !fi.IsDir() {
		src, err := os.ReadFile(path)
		return path, string(src), err
	}
	ents, err := os.ReadDir(path)
	if err != nil {
		return "", "", err
	}
	var b strings.Builder
	for _, ent := range ents {
		b.WriteString(ent.Name())
		if ent.IsDir() {
			b.WriteByte('/')
		}
		b.WriteByte('\n')
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path, b.String(), nil
}

func highlightFile(opts *options, out io.Writer, path, src string, font highlight.Font, profile termenv.Profile) error {
	th, err := selectTheme(opts, path)
	if err != nil {
		return err
	}
	rules, err := th.Compile()
	if err != nil {
		return err
	}
	if opts.Verbose {
		log.Printf("%s: %d bytes, theme %s, %d rules", path, len(src), th.Name, len(rules))
	}
	st := highlight.Resolve(src, rules, font, nil)

	switch opts.Format {
	case "html":
		return render.HTML(out, st)
	case "png":
		img := render.Image(st, render.ImageOptions{DPI: opts.DPI, Pad: 8})
		return png.Encode(out, img)
	default:
		return render.ANSI(out, st, profile)
	}
}

// selectTheme returns the theme named by the options,
// or the built-in theme whose Files match path.
// If no theme matches, the theme has no rules.
func selectTheme(opts *options, path string) (*syntax.Theme, error) {
	switch {
	case opts.Theme != nil:
		return syntax.Load(string(*opts.Theme))
	case opts.Syntax != "":
		for _, th := range themes {
			if th.Name == opts.Syntax {
				return th, nil
			}
		}
		return nil, fmt.Errorf("unknown syntax %q", opts.Syntax)
	}
	for _, th := range themes {
		if th.MatchFile(path) {
			return th, nil
		}
	}
	if opts.Verbose {
		log.Printf("%s: no theme matches", path)
	}
	return &syntax.Theme{Name: "plain"}, nil
}
