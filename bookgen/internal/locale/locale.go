package locale

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/lexicon"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/model"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/seedrand"
)

type Code string

const (
	English  Code = "en"
	German   Code = "de"
	Japanese Code = "ja"
)

var supported = []model.Locale{
	{Code: string(English), Label: "English (US)"},
	{Code: string(German), Label: "German (Germany)"},
	{Code: string(Japanese), Label: "Japanese (Japan)"},
}

// Supported returns the fixed locale table in display order.
func Supported() []model.Locale {
	out := make([]model.Locale, len(supported))
	copy(out, supported)
	return out
}

// Resolve maps a requested code to a supported one, falling back to English.
func Resolve(code string) Code {
	for _, l := range supported {
		if l.Code == code {
			return Code(code)
		}
	}
	return English
}

// TextGenerator produces the locale-specific text of a book. Every method
// consumes draws from src; callers fix the call order.
type TextGenerator interface {
	Title(src *seedrand.Source) string
	AuthorName(src *seedrand.Source) string
	PublisherName(src *seedrand.Source) string
	ReviewText(src *seedrand.Source) string
	ISBN(src *seedrand.Source) string
}

// Registry holds one generator per supported locale. It is built once and
// only read afterwards.
type Registry struct {
	generators map[Code]TextGenerator
}

func NewRegistry() (*Registry, error) {
	builders := map[Code]func(*lexicon.Lexicon) (TextGenerator, error){
		English:  newEnglish,
		German:   newGerman,
		Japanese: newJapanese,
	}
	r := &Registry{generators: make(map[Code]TextGenerator, len(builders))}
	for code, build := range builders {
		lex, err := lexicon.Load(string(code))
		if err != nil {
			return nil, err
		}
		gen, err := build(lex)
		if err != nil {
			return nil, errors.Wrapf(err, "locale %s", code)
		}
		r.generators[code] = gen
	}
	return r, nil
}

// Generator returns the variant for an already resolved code.
func (r *Registry) Generator(code Code) TextGenerator {
	if gen, ok := r.generators[code]; ok {
		return gen
	}
	return r.generators[English]
}

const (
	isbnMin = 1000000000000
	isbnMax = 9999999999999
)

// base carries what all variants share.
type base struct {
	lex *lexicon.Lexicon
}

func (b base) ISBN(src *seedrand.Source) string {
	return strconv.FormatInt(src.Int64Between(isbnMin, isbnMax), 10)
}

func (b base) AuthorName(src *seedrand.Source) string {
	return b.lex.Fill(src, "fullName")
}

func (b base) PublisherName(src *seedrand.Source) string {
	return b.lex.Fill(src, "publisher")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
