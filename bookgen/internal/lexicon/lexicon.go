// Package lexicon holds the per-locale word lists and phrase patterns the
// text generators draw from. The lists are embedded YAML, parsed once at
// startup and read-only afterwards.
package lexicon

import (
	"embed"
	"path"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/errs"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/seedrand"
)

//go:embed data/*.yaml
var files embed.FS

// Lexicon maps word categories and pattern names to their entries. A pattern
// is literal text with {category} placeholders.
type Lexicon struct {
	Code     string              `yaml:"code"`
	Words    map[string][]string `yaml:"words"`
	Patterns map[string][]string `yaml:"patterns"`
}

// Load parses the embedded lexicon for a locale code.
func Load(code string) (*Lexicon, error) {
	data, err := files.ReadFile(path.Join("data", code+".yaml"))
	if err != nil {
		return nil, errors.Wrapf(err, "lexicon %s", code)
	}
	return Parse(data)
}

func Parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, errors.Wrap(err, "yaml.Unmarshal")
	}
	if err := lex.validate(); err != nil {
		return nil, errors.Wrapf(err, "lexicon %s", lex.Code)
	}
	return &lex, nil
}

func (l *Lexicon) validate() error {
	for name, words := range l.Words {
		if len(words) == 0 {
			return errors.Wrap(errs.ErrEmptyCategory, name)
		}
	}
	for name, patterns := range l.Patterns {
		if len(patterns) == 0 {
			return errors.Wrap(errs.ErrEmptyCategory, name)
		}
		for _, p := range patterns {
			for _, ref := range placeholders(p) {
				if len(l.Words[ref]) == 0 {
					return errors.Wrapf(errs.ErrUnknownCategory, "%q in pattern %s", ref, name)
				}
			}
		}
	}
	return nil
}

// Require checks that the given word categories and pattern names exist.
func (l *Lexicon) Require(words, patterns []string) error {
	for _, w := range words {
		if len(l.Words[w]) == 0 {
			return errors.Wrapf(errs.ErrUnknownCategory, "lexicon %s: word %s", l.Code, w)
		}
	}
	for _, p := range patterns {
		if len(l.Patterns[p]) == 0 {
			return errors.Wrapf(errs.ErrUnknownCategory, "lexicon %s: pattern %s", l.Code, p)
		}
	}
	return nil
}

// Word draws one entry of a category.
func (l *Lexicon) Word(src *seedrand.Source, category string) string {
	return seedrand.Pick(src, l.Words[category])
}

// Fill draws one pattern of the given name and expands it.
func (l *Lexicon) Fill(src *seedrand.Source, name string) string {
	return l.Expand(src, seedrand.Pick(src, l.Patterns[name]))
}

// Expand replaces placeholders left to right, one draw per placeholder.
func (l *Lexicon) Expand(src *seedrand.Source, pattern string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(pattern, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(pattern[start:], '}')
		if end < 0 {
			break
		}
		end += start
		b.WriteString(pattern[:start])
		b.WriteString(l.Word(src, pattern[start+1:end]))
		pattern = pattern[end+1:]
	}
	b.WriteString(pattern)
	return b.String()
}

// Vocabulary is the set of lower-cased tokens any output of this lexicon can
// be made of.
func (l *Lexicon) Vocabulary() map[string]struct{} {
	vocab := make(map[string]struct{})
	add := func(s string) {
		for _, tok := range Tokens(s) {
			vocab[tok] = struct{}{}
		}
	}
	for _, words := range l.Words {
		for _, w := range words {
			add(w)
		}
	}
	for _, patterns := range l.Patterns {
		for _, p := range patterns {
			for _, ref := range placeholders(p) {
				p = strings.ReplaceAll(p, "{"+ref+"}", " ")
			}
			add(p)
		}
	}
	return vocab
}

// Categories lists word categories in sorted order.
func (l *Lexicon) Categories() []string {
	names := make([]string, 0, len(l.Words))
	for name := range l.Words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tokens splits s into lower-cased runs of letters.
func Tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func placeholders(pattern string) []string {
	var refs []string
	for {
		start := strings.IndexByte(pattern, '{')
		if start < 0 {
			return refs
		}
		end := strings.IndexByte(pattern[start:], '}')
		if end < 0 {
			return refs
		}
		refs = append(refs, pattern[start+1:start+end])
		pattern = pattern[start+end+1:]
	}
}
