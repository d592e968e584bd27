package render

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/tint/pkg/types"
)

// placeholderPattern matches tokens that look like placeholders. It is only
// used to report unresolved tokens; substitution itself matches declared
// keys literally.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_.\-]+)\}`)

// Token returns the placeholder token for a color key
func Token(key string) string {
	return "{" + key + "}"
}

// Substitute replaces every {key} token of scheme's colors in text.
func Substitute(text string, scheme *types.CompiledColorscheme) string {
	if scheme == nil || scheme.Len() == 0 {
		return text
	}
	return newReplacer(scheme).Replace(text)
}

// newReplacer builds a single-pass replacer. Longer tokens come first so
// that when one token is a prefix of another at the same position, the
// longer one wins.
func newReplacer(scheme *types.CompiledColorscheme) *strings.Replacer {
	keys := scheme.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		value, _ := scheme.Get(key)
		pairs = append(pairs, Token(key), value)
	}
	return strings.NewReplacer(pairs...)
}

// Placeholders returns the distinct placeholder names found in text, sorted
func Placeholders(text string) []string {
	seen := make(map[string]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		seen[match[1]] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unresolved returns the placeholder names in text that scheme has no color
// for, sorted
func Unresolved(text string, scheme *types.CompiledColorscheme) []string {
	var missing []string
	for _, name := range Placeholders(text) {
		if scheme != nil {
			if _, ok := scheme.Get(name); ok {
				continue
			}
		}
		missing = append(missing, name)
	}
	return missing
}
