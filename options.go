package flashcards

import (
	"log/slog"
	"time"
)

// TemplateLoader loads a template fragment by name ("header", "flash",
// "page2x3", ...). Returns an error wrapping ErrTemplateNotFound when the
// template does not exist.
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

// Option configures a Document at creation.
type Option func(*settings)

// settings holds the options collected before a Document is created.
type settings struct {
	loader      TemplateLoader
	templateDir string
	builtin     bool
	fallback    bool
	outputDir   string
	title       string
	page        *PageSettings
	timeout     time.Duration
	logger      *slog.Logger
	launcher    Launcher
	notes       notesRenderer
}

func defaultSettings() settings {
	return settings{
		templateDir: DefaultTemplateDir,
		title:       DefaultTitle,
		page:        DefaultPageSettings(),
		timeout:     defaultTimeout,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// WithTemplateLoader sets a custom template source. It takes precedence
// over WithTemplateDir and WithBuiltinTemplates.
func WithTemplateLoader(l TemplateLoader) Option {
	return func(s *settings) {
		s.loader = l
	}
}

// WithTemplateDir reads templates from dir (default "templates").
// A template missing from dir is fatal unless fallback is set, in which
// case the built-in copy is used.
func WithTemplateDir(dir string, fallback bool) Option {
	return func(s *settings) {
		s.templateDir = dir
		s.fallback = fallback
	}
}

// WithBuiltinTemplates uses only the templates compiled into the binary.
func WithBuiltinTemplates() Option {
	return func(s *settings) {
		s.builtin = true
	}
}

// WithOutputDir sets the directory of the .htm and .pdf files (default ".").
func WithOutputDir(dir string) Option {
	return func(s *settings) {
		s.outputDir = dir
	}
}

// WithTitle sets the ${title} substituted into the header.
func WithTitle(title string) Option {
	return func(s *settings) {
		if title != "" {
			s.title = title
		}
	}
}

// WithPageSettings sets the PDF paper. Nil keeps A4 portrait.
func WithPageSettings(p *PageSettings) Option {
	return func(s *settings) {
		if p != nil {
			s.page = p
		}
	}
}

// WithTimeout sets how long the browser may take to load the document.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger used for progress messages. The default
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLauncher sets the rendering engine used by RenderToPDF when it is
// called with a nil Launcher. The default starts headless Chrome via go-rod.
func WithLauncher(l Launcher) Option {
	return func(s *settings) {
		s.launcher = l
	}
}
