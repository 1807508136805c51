package walker

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Prettify turns a raw file or folder name into a human-readable label:
// underscores become spaces, runs of whitespace collapse, and every word is
// capitalized. Applying it twice changes nothing.
func Prettify(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// FileLabel resolves the display label for a file: the .label override when
// present, otherwise the name without extension, prettified in pretty mode.
func FileLabel(name string, cfg *FolderConfig, pretty bool) string {
	if label, ok := cfg.Labels[name]; ok {
		return label
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if pretty {
		return Prettify(stem)
	}
	return stem
}

// FolderLabel resolves the outline label for a folder: the .title override
// when present, otherwise the folder name, prettified in pretty mode.
func FolderLabel(name string, cfg *FolderConfig, pretty bool) string {
	if cfg.Title != "" {
		return cfg.Title
	}
	if pretty {
		return Prettify(name)
	}
	return name
}
