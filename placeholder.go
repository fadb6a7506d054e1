package flashcards

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// placeholderPattern matches ${name} tokens.
var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Fill replaces every ${name} in tmpl whose name is a key of values.
// Replacement is a single left-to-right pass, so values are inserted
// literally even when they contain ${...} themselves. Unknown
// placeholders are left in place.
func Fill(tmpl string, values map[string]string) string {
	if len(values) == 0 {
		return tmpl
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, token(name), values[name])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Placeholders returns the distinct placeholder names in tmpl in order of
// first appearance.
func Placeholders(tmpl string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(tmpl, -1)
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// CheckPageTemplate reports ErrIncompleteTemplate when tmpl lacks any of
// the ${card0}..${cardN-1} slots grid needs.
func CheckPageTemplate(tmpl string, grid Grid) error {
	present := make(map[string]bool)
	for _, name := range Placeholders(tmpl) {
		present[name] = true
	}

	var missing []string
	for slot := range grid.PerPage() {
		if !present[slotName(slot)] {
			missing = append(missing, token(slotName(slot)))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s has no %s", ErrIncompleteTemplate, grid.templateName(), strings.Join(missing, ", "))
	}
	return nil
}

// token returns the ${name} form of a placeholder name.
func token(name string) string {
	return "${" + name + "}"
}
