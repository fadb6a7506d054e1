package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: flashcards [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build flashcard HTML and PDF from a deck (default)")
	fmt.Fprintln(w, "  init       Write default templates and a sample deck")
	fmt.Fprintln(w, "  doctor     Check Chrome, environment and templates")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'flashcards help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: flashcards build [deck] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build <name>.htm and <name>.pdf from a YAML deck.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  deck    Deck file path or name (default: deck, or $FLASHCARDS_DECK)")
	fmt.Fprintln(w, "          A name is looked up as <name>.yaml in the working directory,")
	fmt.Fprintln(w, "          then in the user config directory under go-flashcards/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <name>       Output base name (.htm/.pdf appended)")
	fmt.Fprintln(w, "      --out-dir <dir>       Output directory")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF rendering timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --grid <CxR>          Cards per page: 1x2, 2x3")
	fmt.Fprintln(w, "      --sequential          One continuous flow, no pages")
	fmt.Fprintln(w, "      --image-size <px>     Spacer size for cards without image")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "      --templates <dir>     Template directory (default: templates)")
	fmt.Fprintln(w, "      --builtin-templates   Use compiled-in templates only")
	fmt.Fprintln(w, "      --fallback-templates  Use compiled-in copies of missing templates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: flashcards init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write <dir>/templates/*.htm.in and a sample <dir>/deck.yaml.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force               Overwrite existing files")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: flashcards doctor [deck] [--json] [--templates <dir>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome, environment, templates and the deck a build would use.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: flashcards version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: flashcards help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
