package locale_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/lexicon"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/locale"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/model"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/seedrand"
)

var isbnRe = regexp.MustCompile(`^[1-9][0-9]{12}$`)

func TestSupported(t *testing.T) {
	want := []model.Locale{
		{Code: "en", Label: "English (US)"},
		{Code: "de", Label: "German (Germany)"},
		{Code: "ja", Label: "Japanese (Japan)"},
	}
	got := locale.Supported()
	require.Equal(t, want, got)

	got[0].Code = "xx"
	assert.Equal(t, want, locale.Supported())
}

func TestResolve(t *testing.T) {
	tests := map[string]locale.Code{
		"en":    locale.English,
		"de":    locale.German,
		"ja":    locale.Japanese,
		"":      locale.English,
		"fr":    locale.English,
		"en_US": locale.English,
		"DE":    locale.English,
	}
	for in, want := range tests {
		assert.Equal(t, want, locale.Resolve(in), in)
	}
}

func newRegistry(t *testing.T) *locale.Registry {
	t.Helper()
	r, err := locale.NewRegistry()
	require.NoError(t, err)
	return r
}

func TestRegistry_Generator(t *testing.T) {
	r := newRegistry(t)
	for _, code := range []locale.Code{locale.English, locale.German, locale.Japanese} {
		assert.NotNil(t, r.Generator(code), code)
	}
	assert.Equal(t, r.Generator(locale.English), r.Generator(locale.Code("xx")))
}

func TestGenerators_CommonRules(t *testing.T) {
	r := newRegistry(t)
	for _, code := range []locale.Code{locale.English, locale.German, locale.Japanese} {
		gen := r.Generator(code)
		t.Run(string(code), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				src := seedrand.New(fmt.Sprintf("common-%d", i))
				assert.Regexp(t, isbnRe, gen.ISBN(src))

				title := gen.Title(src)
				require.NotEmpty(t, title)
				first, _ := utf8.DecodeRuneInString(title)
				assert.False(t, unicode.IsLower(first), title)

				assert.NotEmpty(t, strings.TrimSpace(gen.AuthorName(src)))
				assert.NotEmpty(t, strings.TrimSpace(gen.PublisherName(src)))
				assert.NotEmpty(t, gen.ReviewText(src))
			}
		})
	}
}

func TestGenerators_Deterministic(t *testing.T) {
	r := newRegistry(t)
	for _, code := range []locale.Code{locale.English, locale.German, locale.Japanese} {
		gen := r.Generator(code)
		draw := func() []string {
			src := seedrand.New("fixed")
			return []string{gen.ISBN(src), gen.Title(src), gen.AuthorName(src), gen.PublisherName(src), gen.ReviewText(src)}
		}
		assert.Equal(t, draw(), draw(), code)
	}
}

func TestEnglish_ReviewText(t *testing.T) {
	gen := newRegistry(t).Generator(locale.English)
	for i := 0; i < 200; i++ {
		text := gen.ReviewText(seedrand.New(fmt.Sprintf("en-%d", i)))
		assert.True(t, strings.HasSuffix(text, "."), text)
		assert.True(t, unicode.IsUpper([]rune(text)[0]), text)
		n := strings.Count(text, ".")
		assert.True(t, n >= 2 && n <= 4, "phrases %d in %q", n, text)
	}
}

func TestGerman_Rules(t *testing.T) {
	gen := newRegistry(t).Generator(locale.German)
	lex, err := lexicon.Load("de")
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		src := seedrand.New(fmt.Sprintf("de-%d", i))

		words := strings.Fields(gen.Title(src))
		require.Len(t, words, 2)
		assert.Contains(t, lex.Words["adjective"], strings.ToLower(words[0]))
		assert.Contains(t, lex.Words["noun"], words[1])

		text := gen.ReviewText(src)
		n := strings.Count(text, ".")
		assert.True(t, n == 2 || n == 3, "sentences %d in %q", n, text)
		for _, sentence := range strings.SplitAfter(text, ". ") {
			sentence = strings.TrimSpace(sentence)
			assert.True(t, strings.HasPrefix(sentence, "Der "), sentence)
			assert.Contains(t, sentence, " die ")
			assert.True(t, strings.HasSuffix(sentence, "."), sentence)
		}
	}
}

func TestJapanese_Rules(t *testing.T) {
	gen := newRegistry(t).Generator(locale.Japanese)
	for i := 0; i < 200; i++ {
		src := seedrand.New(fmt.Sprintf("ja-%d", i))

		words := strings.Split(gen.Title(src), " ")
		assert.True(t, len(words) >= 2 && len(words) <= 5, "words %d", len(words))

		text := gen.ReviewText(src)
		n := strings.Count(text, "。")
		assert.True(t, n >= 2 && n <= 4, "sentences %d in %q", n, text)
		for _, r := range text {
			assert.False(t, r < unicode.MaxASCII && unicode.IsLetter(r), "latin letter in %q", text)
		}
	}
}

func TestGenerators_LocaleIsolation(t *testing.T) {
	r := newRegistry(t)
	lexicons := map[locale.Code]map[string]struct{}{}
	for _, code := range []locale.Code{locale.English, locale.German, locale.Japanese} {
		lex, err := lexicon.Load(string(code))
		require.NoError(t, err)
		lexicons[code] = lex.Vocabulary()
	}
	englishOnly := func(own map[string]struct{}) map[string]struct{} {
		out := map[string]struct{}{}
		for tok := range lexicons[locale.English] {
			if _, shared := own[tok]; !shared {
				out[tok] = struct{}{}
			}
		}
		return out
	}

	for _, code := range []locale.Code{locale.German, locale.Japanese} {
		gen := r.Generator(code)
		foreign := englishOnly(lexicons[code])
		t.Run(string(code), func(t *testing.T) {
			for i := 0; i < 300; i++ {
				src := seedrand.New(fmt.Sprintf("iso-%d", i))
				fields := []string{gen.Title(src), gen.AuthorName(src), gen.PublisherName(src), gen.ReviewText(src)}
				for _, f := range fields {
					for _, tok := range lexicon.Tokens(f) {
						assert.NotContains(t, foreign, tok, "english token %q in %q", tok, f)
					}
				}
			}
		})
	}
}
