package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/term"
	"pkt.systems/mdtabs"
	"pkt.systems/mdtabs/goldmarktabs"
	"pkt.systems/mdtabs/internal/config"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/mdtabs")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		outPath     string
		configPath  string
		outline     bool
		check       bool
		showVersion bool
	)

	def := mdtabs.DefaultConfig()
	flags := pflag.NewFlagSet("mdtabs", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default mdtabs.yaml in ~/.config/mdtabs, ~ or .)")
	flags.BoolVar(&outline, "outline", false, "Print the code groups of the input instead of HTML")
	flags.BoolVar(&check, "check", false, "Report group problems and exit non-zero if there are any")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.StringP("engine", "e", "commonmark", "Markdown engine: "+strings.Join(config.Engines, "|"))
	flags.BoolP("page", "p", false, "Write a standalone HTML page with styles and scripts")
	flags.String("title", "", "Page title (with --page)")
	flags.String("highlight-style", "", "Chroma style for syntax highlighting (goldmark engine)")
	flags.String("active-tab-class", def.ActiveTabClass, "Class of the initially selected tab")
	flags.String("active-code-class", def.ActiveCodeClass, "Class of the first code block in a group")
	flags.String("copy-tag", def.CopyButtonTag, "Element used for the copy button")
	flags.String("copy-icon", def.CopyButtonIconClasses, "Icon classes of the copy button")
	flags.String("copy-class", def.CopyButtonContainerClass, "Positioning class of the copy button")
	flags.BoolP("verbose", "v", false, "Log debug events to stderr")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdtabs [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nInputs are files, file:// or http(s) URLs, or - for stdin (the default).")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	settings, err := config.Load(flags, configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	logger := newLogger(stderr, settings.Verbose)

	src, err := readInputs(context.Background(), flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}

	opts := []mdtabs.Option{mdtabs.WithConfig(settings.Config), mdtabs.WithLogger(logger)}
	tokens := mdtabs.NewRenderer(nil, opts...).Parse(src)
	diags := mdtabs.CheckGroups(tokens)
	if check {
		if err := mdtabs.WriteDiagnostics(stdout, diags); err != nil {
			fmt.Fprintf(stderr, "write diagnostics: %v\n", err)
			return 1
		}
		if len(diags) > 0 {
			return 1
		}
		return 0
	}
	for _, d := range diags {
		logger.WithField("token", d.Token).WithField("group", d.Group).Warn(d.Message)
	}

	var out bytes.Buffer
	switch {
	case outline:
		err = mdtabs.WriteOutline(&out, mdtabs.BuildOutline(tokens), outputWidth(stdout, outPath))
	default:
		err = renderBody(&out, src, tokens, settings, opts)
		logger.WithField("engine", settings.Engine).WithField("bytes", out.Len()).Debug("rendered document")
		if err == nil && settings.Page {
			body := out.String()
			out.Reset()
			err = mdtabs.WritePage(&out, mdtabs.PageRequest{
				Title:  settings.Title,
				Body:   body,
				Config: mdtabs.NewConfig(opts...),
			})
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}
	if err := writeOutput(outPath, stdout, out.Bytes()); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}
	return 0
}

func renderBody(w io.Writer, src []byte, tokens []mdtabs.Token, settings config.Settings, opts []mdtabs.Option) error {
	switch settings.Engine {
	case "goldmark":
		return newGoldmark(settings.HighlightStyle, opts).Convert(src, w)
	default:
		return mdtabs.NewRenderer(nil, opts...).RenderTokens(w, tokens)
	}
}

func newGoldmark(style string, opts []mdtabs.Option) goldmark.Markdown {
	extOpts := []goldmarktabs.Option{goldmarktabs.WithTabOptions(opts...)}
	if style != "" {
		extOpts = append(extOpts, goldmarktabs.WithHighlighting(highlighting.WithStyle(style)))
	}
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM, goldmarktabs.New(extOpts...)),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// outputWidth is the terminal width when writing to one, else $COLUMNS or
// defaultWidth.
func outputWidth(stdout io.Writer, outPath string) int {
	if f, ok := stdout.(*os.File); ok && outPath == "" && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

// readInputs prepares every input on its own, so each may carry front
// matter, and joins them with a blank line so a group cannot run from one
// input into the next. No arguments means stdin.
func readInputs(ctx context.Context, args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	docs := make([][]byte, 0, len(args))
	for _, arg := range args {
		raw, err := readInput(ctx, arg, stdin)
		if err == nil {
			raw, err = mdtabs.Prepare(raw)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", inputName(arg), err)
		}
		docs = append(docs, raw)
	}
	return bytes.Join(docs, []byte("\n\n")), nil
}

func readInput(ctx context.Context, arg string, stdin io.Reader) ([]byte, error) {
	arg = strings.TrimSpace(arg)
	switch arg {
	case "":
		return nil, errors.New("empty input argument")
	case "-":
		return io.ReadAll(stdin)
	}
	if u, err := url.Parse(arg); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return mdtabs.Fetch(ctx, nil, arg)
		case "file":
			arg = u.Path
			if arg == "" {
				arg = u.Host
			}
		}
	}
	return os.ReadFile(config.ExpandHome(arg))
}

func inputName(arg string) string {
	if strings.TrimSpace(arg) == "-" {
		return "stdin"
	}
	return arg
}

// writeOutput writes data to stdout, or to path after creating its parent
// directories.
func writeOutput(path string, stdout io.Writer, data []byte) error {
	if strings.TrimSpace(path) == "" {
		_, err := stdout.Write(data)
		return err
	}
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
