package flashcards

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/natefinch/atomic"

	"github.com/alnah/go-flashcards/internal/fileutil"
	"github.com/alnah/go-flashcards/internal/process"
)

// Engine is a headless rendering engine that turns HTML into a PDF.
// An Engine holds an external process; Close must always be called.
type Engine interface {
	// Load replaces the engine's content with html. Relative URLs
	// (card images) resolve against baseDir.
	Load(ctx context.Context, html, baseDir string) error

	// ExportPDF prints the loaded content to a PDF file at path using the
	// given paper (nil means A4 portrait).
	ExportPDF(ctx context.Context, path string, page *PageSettings) error

	// Close releases the engine and its process. Safe to call twice.
	Close() error
}

// Launcher starts an Engine.
type Launcher func(ctx context.Context) (Engine, error)

// Compile-time interface check.
var _ Engine = (*rodEngine)(nil)

// rodEngine implements Engine with headless Chrome through go-rod.
// Rod downloads Chromium on first run if no browser is found.
type rodEngine struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	timeout  time.Duration
	cleanup  func() // removes the temp file backing the loaded page
}

// RodLauncher returns a Launcher starting headless Chrome. timeout bounds
// page loading when ctx has no deadline.
func RodLauncher(timeout time.Duration) Launcher {
	return func(ctx context.Context) (Engine, error) {
		return launchRod(ctx, timeout)
	}
}

// launchRod starts and connects to a browser.
func launchRod(ctx context.Context, timeout time.Duration) (*rodEngine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := launcher.New().Context(ctx)

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	e := &rodEngine{launcher: l, timeout: timeout}

	u, err := l.Launch()
	if err != nil {
		_ = e.Close()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		_ = e.Close()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	e.browser = browser

	return e, nil
}

// Load writes html next to its assets and navigates a fresh tab to it.
// Chrome refuses file:// images from about:blank, so content is loaded
// from a temp file in baseDir (or the system temp directory when baseDir
// is read-only).
func (e *rodEngine) Load(ctx context.Context, html, baseDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.closePage()

	path, cleanup, err := fileutil.WriteTempFile(baseDir, html, "htm")
	if err != nil {
		path, cleanup, err = fileutil.WriteTempFile("", html, "htm")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPageLoad, err)
		}
	}
	e.cleanup = cleanup

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	page, err := e.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: "file://" + filepath.ToSlash(absPath)})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	e.page = page

	// Wait for page to load with timeout from context or default
	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	return nil
}

// ExportPDF prints the loaded page and writes the PDF atomically.
func (e *rodEngine) ExportPDF(ctx context.Context, path string, page *PageSettings) error {
	if e.page == nil {
		return ErrNoContent
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	reader, err := e.page.Context(ctx).PDF(buildPDFOptions(page))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	if err := atomic.WriteFile(path, reader); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}

// Close releases the tab, the browser and its process tree.
func (e *rodEngine) Close() error {
	var errs []error

	e.closePage()

	if e.browser != nil {
		if err := e.browser.Close(); err != nil {
			errs = append(errs, err)
		}
		e.browser = nil
	}

	if e.launcher != nil {
		// Chrome forks renderer and GPU helpers; kill the whole group.
		process.KillTree(e.launcher.PID())
		e.launcher.Kill()
		e.launcher.Cleanup()
		e.launcher = nil
	}

	return errors.Join(errs...)
}

// closePage drops the current tab and its backing file.
func (e *rodEngine) closePage() {
	if e.page != nil {
		_ = e.page.Close()
		e.page = nil
	}
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// buildPDFOptions constructs proto.PagePrintToPDF for the paper.
func buildPDFOptions(page *PageSettings) *proto.PagePrintToPDF {
	if page == nil {
		page = DefaultPageSettings()
	}
	width, height := page.Dimensions()

	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(page.Margin),
		MarginBottom:    floatPtr(page.Margin),
		MarginLeft:      floatPtr(page.Margin),
		MarginRight:     floatPtr(page.Margin),
		PrintBackground: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
