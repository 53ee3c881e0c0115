package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/psi"
	"pkt.systems/pslog"
	"pkt.systems/ulmark"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/ulmark")
}

func main() {
	psi.Run(submain)
}

type options struct {
	themeName  string
	width      int
	osc8       string
	listThemes bool
	outPath    string
	boring     bool
	mode       string
	selections []string
	toggles    []string
	spans      bool
	classify   bool
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)

	var opts options
	flags := pflag.NewFlagSet("ulmark", pflag.ContinueOnError)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.StringVar(&opts.mode, "mode", "live", "Document mode: live|source")
	flags.StringArrayVar(&opts.selections, "select", nil, "Selection L:C[-L:C] that reveals touched spans (repeatable)")
	flags.StringArrayVar(&opts.toggles, "toggle", nil, "Toggle underline on L:C[-L:C] and print the edited text (repeatable)")
	flags.BoolVar(&opts.spans, "spans", false, "List underline spans instead of rendering")
	flags.BoolVar(&opts.classify, "classify", false, "List emphasis nodes and whether they use underscores")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: ulmark [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.listThemes {
		printThemes(os.Stdout)
		return 0
	}
	if err := run(ctx, opts, flags.Args()); err != nil {
		var usage usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		pslog.Ctx(ctx).With("err", err).Error("ulmark failed")
		return 1
	}
	return 0
}

type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

func run(ctx context.Context, opts options, args []string) error {
	log := pslog.Ctx(ctx)

	mode, ok := ulmark.ParseDocumentMode(opts.mode)
	if !ok {
		return usagef("invalid --mode %q: expected live|source", opts.mode)
	}
	selections, err := parseRanges(opts.selections)
	if err != nil {
		return usagef("invalid --select: %v", err)
	}
	toggles, err := parseRanges(opts.toggles)
	if err != nil {
		return usagef("invalid --toggle: %v", err)
	}
	theme, ok := ulmark.ThemeByName(opts.themeName)
	if !ok {
		return usagef("unknown theme %q (available: %s)", opts.themeName, strings.Join(ulmark.AvailableThemes(), ", "))
	}
	if opts.boring {
		theme = boringTheme()
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		return usagef("invalid --osc8 %q: %v", opts.osc8, err)
	}

	reader, closer, err := openInputs(args)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	writer, closeOut, err := resolveOutput(opts.outPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	switch {
	case len(toggles) > 0:
		src, err := readSource(reader)
		if err != nil {
			return err
		}
		doc := ulmark.NewDocument(string(src))
		for _, r := range toggles {
			changed := ulmark.Toggle(doc, r.From, r.To)
			log.Debug("toggle", "range", r.String(), "changed", changed, "selection", doc.Selection().String())
		}
		_, err = io.WriteString(writer, doc.String())
		return err
	case opts.spans:
		src, err := readSource(reader)
		if err != nil {
			return err
		}
		return writeSpans(writer, string(src))
	case opts.classify:
		src, err := readSource(reader)
		if err != nil {
			return err
		}
		return writeClasses(writer, src)
	}

	width := resolveWidth(opts.width)
	log.Debug("render", "theme", theme.Name(), "width", width, "mode", mode.String(), "osc8", osc8, "selections", len(selections))
	return ulmark.Render(ulmark.RenderRequest{
		Reader:  reader,
		Writer:  writer,
		Width:   width,
		Theme:   theme,
		Context: ulmark.DecorateContext{Mode: mode, Selections: selections},
		Options: []ulmark.RenderOption{ulmark.WithOSC8(osc8)},
	})
}

func readSource(r io.Reader) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if err := ulmark.ValidateInput(src); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return src, nil
}

func writeSpans(w io.Writer, text string) error {
	for _, ls := range ulmark.ScanText(text) {
		for _, sp := range ls.Spans {
			if _, err := fmt.Fprintf(w, "%d:%d-%d\t%s\n", ls.Line, sp.MarkFrom, sp.MarkTo, sp.Content(ls.Text)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeClasses(w io.Writer, src []byte) error {
	for _, c := range ulmark.ClassifyMarkdown(src) {
		kind := "asterisk"
		if c.Underscore {
			kind = "underline"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", kind, c.Text); err != nil {
			return err
		}
	}
	return nil
}

// parseRanges parses "L:C" cursors and "L:C-L:C" selections. Lines and
// columns are zero-based; columns count UTF-16 code units.
func parseRanges(values []string) ([]ulmark.Range, error) {
	out := make([]ulmark.Range, 0, len(values))
	for _, v := range values {
		r, err := parseRange(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseRange(value string) (ulmark.Range, error) {
	value = strings.TrimSpace(value)
	head, tail, hasTail := strings.Cut(value, "-")
	from, err := parsePosition(head)
	if err != nil {
		return ulmark.Range{}, fmt.Errorf("%q: %w", value, err)
	}
	if !hasTail {
		return ulmark.Range{From: from, To: from}, nil
	}
	to, err := parsePosition(tail)
	if err != nil {
		return ulmark.Range{}, fmt.Errorf("%q: %w", value, err)
	}
	return ulmark.Range{From: from, To: to}, nil
}

func parsePosition(value string) (ulmark.Position, error) {
	l, c, ok := strings.Cut(value, ":")
	if !ok {
		return ulmark.Position{}, fmt.Errorf("expected LINE:COL")
	}
	line, err := strconv.Atoi(strings.TrimSpace(l))
	if err != nil || line < 0 {
		return ulmark.Position{}, fmt.Errorf("invalid line %q", l)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil || col < 0 {
		return ulmark.Position{}, fmt.Errorf("invalid column %q", c)
	}
	return ulmark.Position{Line: line, Col: col}, nil
}

func printThemes(w io.Writer) {
	for _, name := range ulmark.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return ulmark.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func boringTheme() ulmark.Theme {
	return ulmark.NewTheme("boring", ulmark.Styles{})
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

// multiInputReader concatenates sources, opening each lazily.
type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
