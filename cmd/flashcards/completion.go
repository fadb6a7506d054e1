package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long   string
	Short  string
	Desc   string
	Bool   bool
	Values []string // enum values
	Dir    bool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name      string
	Desc      string
	Flags     []flagDef
	TakesDeck bool
}

// flagValues holds the enum values offered for value flags.
var flagValues = map[string][]string{
	"page-size":   {"a4", "letter", "legal"},
	"orientation": {"portrait", "landscape"},
	"grid":        {"1x2", "2x3"},
}

// dirFlags lists flags completed with directories.
var dirFlags = map[string]bool{
	"out-dir":   true,
	"templates": true,
}

// extractFlags converts a FlagSet into completion definitions.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		flags = append(flags, flagDef{
			Long:   f.Name,
			Short:  f.Shorthand,
			Desc:   f.Usage,
			Bool:   f.Value.Type() == "bool",
			Values: flagValues[f.Name],
			Dir:    dirFlags[f.Name],
		})
	})
	return flags
}

// getCommands returns the command registry for completion. Flags come from
// the same FlagSets the parsers use.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "build", Desc: "Build flashcard HTML and PDF from a deck", Flags: extractFlags(newBuildFlagSet(&buildFlags{})), TakesDeck: true},
		{Name: "init", Desc: "Write default templates and a sample deck", Flags: extractFlags(newInitFlagSet(&initFlags{}))},
		{Name: "doctor", Desc: "Check Chrome, environment and templates", Flags: []flagDef{
			{Long: "json", Desc: "output as JSON", Bool: true},
			{Long: "templates", Desc: "template directory to check", Dir: true},
		}},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()
	switch shell {
	case ShellBash:
		return generateBash(w, cmds)
	case ShellZsh:
		return generateZsh(w, cmds)
	case ShellFish:
		return generateFish(w, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if err := GenerateCompletion(env.Stdout, Shell(args[0])); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

func generateBash(w io.Writer, cmds []commandDef) error {
	var b strings.Builder
	b.WriteString("# bash completion for flashcards\n")
	b.WriteString("_flashcards_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"build\"\n")
	b.WriteString("    if [[ ${COMP_CWORD} -gt 1 ]]; then cmd=\"${COMP_WORDS[1]}\"; fi\n\n")
	b.WriteString("    case \"${prev}\" in\n")
	for _, name := range sortedKeys(flagValues) {
		fmt.Fprintf(&b, "        --%s) COMPREPLY=($(compgen -W %q -- \"${cur}\")); return ;;\n",
			name, strings.Join(flagValues[name], " "))
	}
	for _, name := range sortedKeys(dirFlags) {
		fmt.Fprintf(&b, "        --%s) COMPREPLY=($(compgen -d -- \"${cur}\")); return ;;\n", name)
	}
	b.WriteString("    esac\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 && \"${cur}\" != -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"${cur}\") $(compgen -f -X '!*.y*ml' -- \"${cur}\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -W %q -- \"${cur}\")) ;;\n", c.Name, flagWords(c.Flags))
	}
	b.WriteString("        completion) COMPREPLY=($(compgen -W \"bash zsh fish\" -- \"${cur}\")) ;;\n")
	b.WriteString("        *) COMPREPLY=($(compgen -f -X '!*.y*ml' -- \"${cur}\")) ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _flashcards_completions flashcards\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateZsh(w io.Writer, cmds []commandDef) error {
	var b strings.Builder
	b.WriteString("#compdef flashcards\n\n")
	b.WriteString("_flashcards() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        _files -g '*.y(a|)ml'\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n            _arguments \\\n", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "                %s \\\n", zshSpec(f))
		}
		if c.TakesDeck {
			b.WriteString("                '*:deck:_files -g \"*.y(a|)ml\"'\n")
		} else {
			b.WriteString("                '*:dir:_files -/'\n")
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("        completion) _values 'shell' bash zsh fish ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _flashcards flashcards\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func zshSpec(f flagDef) string {
	names := "--" + f.Long
	if f.Short != "" {
		names = fmt.Sprintf("(-%s --%s)'{-%s,--%s}'", f.Short, f.Long, f.Short, f.Long)
	}
	desc := zshEscape(f.Desc)
	switch {
	case f.Bool:
		return fmt.Sprintf("'%s[%s]'", names, desc)
	case len(f.Values) > 0:
		return fmt.Sprintf("'%s[%s]:value:(%s)'", names, desc, strings.Join(f.Values, " "))
	case f.Dir:
		return fmt.Sprintf("'%s[%s]:dir:_files -/'", names, desc)
	default:
		return fmt.Sprintf("'%s[%s]:value:'", names, desc)
	}
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

func generateFish(w io.Writer, cmds []commandDef) error {
	var b strings.Builder
	b.WriteString("# fish completion for flashcards\n\n")
	b.WriteString("function __fish_flashcards_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_flashcards_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c flashcards -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c flashcards -n __fish_flashcards_needs_command -a %s -d %q\n", c.Name, c.Desc)
	}
	b.WriteString("complete -c flashcards -n __fish_flashcards_needs_command -k -a '(__fish_complete_suffix .yaml)'\n")
	for _, c := range cmds {
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c flashcards -n '__fish_flashcards_using_command %s' -l %s", c.Name, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			switch {
			case len(f.Values) > 0:
				fmt.Fprintf(&b, " -x -a %q", strings.Join(f.Values, " "))
			case f.Dir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			case !f.Bool:
				b.WriteString(" -x")
			}
			fmt.Fprintf(&b, " -d %q\n", f.Desc)
		}
	}
	b.WriteString("complete -c flashcards -n '__fish_flashcards_using_command completion' -a 'bash zsh fish'\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: flashcards completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w, "  Bash:  eval \"$(flashcards completion bash)\"        # in ~/.bashrc")
	fmt.Fprintln(w, "  Zsh:   eval \"$(flashcards completion zsh)\"         # in ~/.zshrc, before compinit")
	fmt.Fprintln(w, "  Fish:  flashcards completion fish > ~/.config/fish/completions/flashcards.fish")
}
