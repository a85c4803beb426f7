package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	code2pdf "github.com/alnah/go-code2pdf"
	"github.com/alnah/go-code2pdf/internal/config"
	"github.com/alnah/go-code2pdf/internal/console"
	"github.com/alnah/go-code2pdf/internal/fileutil"
	"github.com/alnah/go-code2pdf/internal/hints"
	"github.com/alnah/go-code2pdf/internal/resolve"
)

// Sentinel errors for CLI operations.
var (
	ErrNoOutput         = errors.New("the following argument is required: -o/--output")
	ErrOutputExists     = errors.New("output exists")
	ErrDirectoryMissing = errors.New("could not create")
	ErrInvalidTimeout   = errors.New("invalid timeout")
)

// errNothingRendered ends a run that produced no document.
var errNothingRendered = errors.New("nothing rendered")

// File permission constants.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

const (
	pdfExt         = ".pdf"
	defaultTimeout = 60 * time.Second
	panicMessage   = "Sorry, something's wrong! Please report this issue."
)

// runMain runs the command with args (program name excluded) and returns
// the process exit code. Panics are reported with their stack trace.
func runMain(args []string, env *Environment) (code int) {
	f, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "render: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'render --help' for usage.")
		return ExitUsage
	}
	if f.common.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if f.common.version {
		fmt.Fprintf(env.Stdout, "render %s\n", Version)
		return ExitSuccess
	}

	p := console.New(env.Stdout, env.Stderr,
		console.WithQuiet(f.common.quiet),
		console.WithVerbose(f.common.verbose),
	)

	defer func() {
		if rec := recover(); rec != nil {
			p.Warn(panicMessage)
			p.Errorf("%v\n%s", rec, debug.Stack())
			p.Cancelled()
			code = ExitFailure
		}
	}()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	err = run(ctx, f, positional, env, p)
	report(ctx, p, err)
	return exitCodeFor(err)
}

// run resolves inputs, confirms the output and dispatches to the browser,
// side-by-side or plain rendering path.
func run(ctx context.Context, f *renderFlags, args []string, env *Environment, p *console.Printer) error {
	if f.common.verbose {
		warnUnknownEnvVars(env.Stderr)
	}

	// Load configuration
	envCfg := loadEnvConfig()
	cfg, err := loadConfig(f.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	timeout, err := resolveTimeout(f.timeout, envCfg, cfg)
	if err != nil {
		return err
	}
	opts := buildRenderOptions(f, cfg)

	// Resolve output path
	if f.output == "" {
		return ErrNoOutput
	}
	output := pdfPath(f.output)

	// Resolve targets
	patterns, err := readPatterns(args, env.Stdin)
	if err != nil {
		return err
	}
	resolver := resolve.New(resolve.Options{
		Include:   append(slices.Clone(cfg.Filters.Include), f.filters.include...),
		Exclude:   append(slices.Clone(cfg.Filters.Exclude), f.filters.exclude...),
		Recursive: f.filters.recursive,
	})
	queue, err := resolver.Resolve(ctx, patterns)
	if err != nil {
		return err
	}
	p.Debugf("Resolved %d target(s)", len(queue))
	if err := checkCount(len(queue), f.mode); err != nil {
		return err
	}

	// Confirm output
	pr := newPrompter(env.Stdin, env.Stdout)
	if err := confirmOverwrite(ctx, pr, output, f.force, len(args) > 0); err != nil {
		return err
	}
	if err := ensureDir(ctx, pr, output); err != nil {
		return err
	}

	// Resolve page size
	userSize := firstNonEmpty(f.size, cfg.Page.Size)
	if opts.Size, err = code2pdf.ResolveSize(userSize, f.mode.browser); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	p.Debugf("Size %q, font size %q, margin %q, timeout %s", opts.Size, opts.FontSize, opts.Margin, timeout)

	svc, err := env.NewService(
		code2pdf.WithTimeout(timeout),
		code2pdf.WithProgress(progress(p)),
	)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	sideBySide := f.mode.sideBySide
	if f.mode.browser {
		frames, err := findFrames(ctx, svc, queue[0])
		if err != nil {
			return err
		}
		if frames == nil {
			doc, err := svc.Render(ctx, queue[0], opts)
			if err != nil {
				return err
			}
			return write(ctx, env, p, output, []*code2pdf.Document{doc})
		}
		p.Debugf("Rendering frameset of %d frames side by side", len(frames))
		queue = frames
		sideBySide = true
		if userSize == "" {
			opts.Size = code2pdf.DefaultSize
		}
	}

	if sideBySide {
		doc, err := svc.RenderSideBySide(ctx, queue, opts)
		if err != nil {
			return err
		}
		return write(ctx, env, p, output, []*code2pdf.Document{doc})
	}

	docs, err := renderAll(ctx, svc, queue, opts, p)
	if err != nil {
		return err
	}
	return write(ctx, env, p, output, docs)
}

// renderAll renders targets in order. Binary targets are warned about and
// skipped; any other failure aborts.
func renderAll(ctx context.Context, svc renderService, queue []string, opts code2pdf.RenderOptions, p *console.Printer) ([]*code2pdf.Document, error) {
	docs := make([]*code2pdf.Document, 0, len(queue))
	for _, target := range queue {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := svc.Render(ctx, target, opts)
		if errors.Is(err, code2pdf.ErrBinary) {
			p.Warn(sentence(err))
			continue
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// findFrames fetches a browser target and returns its frames when it is a
// two- or three-column frameset, nil otherwise.
func findFrames(ctx context.Context, svc renderService, target string) ([]string, error) {
	content, err := svc.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}
	return code2pdf.FindFrames(target, content), nil
}

// write writes docs to output and reports success.
func write(ctx context.Context, env *Environment, p *console.Printer, output string, docs []*code2pdf.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ok, err := env.Write(ctx, output, docs)
	if err != nil {
		return err
	}
	if !ok {
		return errNothingRendered
	}
	p.Success(fmt.Sprintf("Rendered %s.", output))
	return nil
}

// report prints the outcome of a failed run: a blank line after an
// interrupt, the error in yellow otherwise, then the cancellation notice.
func report(ctx context.Context, p *console.Printer, err error) {
	switch {
	case err == nil:
		return
	case ctx.Err() != nil:
		p.Blank()
	case errors.Is(err, errDeclined), errors.Is(err, errNothingRendered):
	default:
		p.Warn(sentence(err) + hintFor(err))
	}
	p.Cancelled()
}

// sentence capitalizes an error message and ends it with a period.
func sentence(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}

// hintFor returns an actionable hint for known errors, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, code2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, ErrOutputExists):
		return hints.ForOutputExists()
	case errors.Is(err, ErrDirectoryMissing):
		return hints.ForOutputDirectory()
	case errors.Is(err, code2pdf.ErrInvalidSize):
		return hints.ForInvalidSize()
	case errors.Is(err, code2pdf.ErrFetch):
		return hints.ForFetch(err.Error())
	}
	return ""
}

// triedPaths extracts the searched locations from a config lookup error.
func triedPaths(err error) []string {
	_, tried, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(tried, ", ")
}

// loadConfig loads the config file named by the flag, else by RENDER_CONFIG.
// Without either, every value falls through to the defaults.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := firstNonEmpty(flagValue, envValue)
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveTimeout picks the print timeout: flag, then RENDER_TIMEOUT, then
// the config file, then the default.
func resolveTimeout(flagValue string, env *envConfig, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w %q: must be positive", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if env.Timeout > 0 {
		return env.Timeout, nil
	}
	d, err := cfg.Timeout()
	if err != nil {
		return 0, err
	}
	if d > 0 {
		return d, nil
	}
	return defaultTimeout, nil
}

// buildRenderOptions merges flags over the config file over the defaults.
// Size is resolved separately.
func buildRenderOptions(f *renderFlags, cfg *config.Config) code2pdf.RenderOptions {
	opts := code2pdf.DefaultRenderOptions()
	opts.Browser = f.mode.browser

	if cfg.Render.Color != nil {
		opts.Color = *cfg.Render.Color
	}
	if f.mode.noColor {
		opts.Color = false
	}
	if cfg.Render.ShowPath != nil {
		opts.ShowPath = *cfg.Render.ShowPath
	}
	if f.mode.noPath {
		opts.ShowPath = false
	}
	if cfg.Page.FontSize != "" {
		opts.FontSize = cfg.Page.FontSize
	}
	if cfg.Page.Margin != "" {
		opts.Margin = cfg.Page.Margin
	}
	return opts
}

// pdfPath appends ".pdf" unless output already ends with it, in any case.
func pdfPath(output string) string {
	if strings.HasSuffix(strings.ToLower(output), pdfExt) {
		return output
	}
	return output + pdfExt
}

// readPatterns returns args, or the lines of stdin when there are no args
// or the sole arg is "-".
func readPatterns(args []string, stdin io.Reader) ([]string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return resolve.ReadPatterns(stdin)
	}
	return args, nil
}

// checkCount enforces the number of targets each mode accepts.
func checkCount(n int, mode modeFlags) error {
	if mode.sideBySide {
		if n < 2 {
			return code2pdf.ErrTooFewFiles
		}
		if n > 3 {
			return code2pdf.ErrTooManyFiles
		}
	}
	if mode.browser && n != 1 {
		return code2pdf.ErrBrowserCount
	}
	return nil
}

// confirmOverwrite asks before replacing an existing output. Without
// positional args stdin held the inputs, so the answer cannot be read.
func confirmOverwrite(ctx context.Context, pr *prompter, output string, force, interactive bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(output); err != nil {
		return nil
	}
	if !interactive {
		return ErrOutputExists
	}
	return pr.confirm(ctx, fmt.Sprintf("Overwrite %s?", output))
}

// ensureDir offers to create the output's missing parent directory.
func ensureDir(ctx context.Context, pr *prompter, output string) error {
	abs, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrDirectoryMissing, output, err)
	}
	dir := filepath.Dir(abs)
	if fileutil.DirExists(dir) {
		return nil
	}
	if err := pr.confirm(ctx, fmt.Sprintf("Create %s?", dir)); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("%w %s: %v", ErrDirectoryMissing, dir, err)
	}
	return nil
}

// progress forwards renderer progress to the console.
func progress(p *console.Printer) code2pdf.ProgressFunc {
	return func(stage code2pdf.Stage, target string) {
		switch stage {
		case code2pdf.StageRendering:
			p.Rendering(target)
		case code2pdf.StageRendered:
			p.Rendered(target)
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
