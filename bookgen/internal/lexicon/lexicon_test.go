package lexicon_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/errs"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/lexicon"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/seedrand"
)

func TestLoad(t *testing.T) {
	for _, code := range []string{"en", "de", "ja"} {
		lex, err := lexicon.Load(code)
		require.NoError(t, err, code)
		assert.Equal(t, code, lex.Code)
		assert.NotEmpty(t, lex.Categories())
		assert.NoError(t, lex.Require([]string{"firstName", "lastName"}, []string{"fullName", "publisher"}))
	}

	_, err := lexicon.Load("fr")
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "unknown placeholder",
			data: "code: xx\nwords:\n  a: [x]\npatterns:\n  p: [\"{b}\"]\n",
			want: errs.ErrUnknownCategory,
		},
		{
			name: "empty category",
			data: "code: xx\nwords:\n  a: []\n",
			want: errs.ErrEmptyCategory,
		},
		{
			name: "empty pattern list",
			data: "code: xx\nwords:\n  a: [x]\npatterns:\n  p: []\n",
			want: errs.ErrEmptyCategory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lexicon.Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), err.Error())
		})
	}

	_, err := lexicon.Parse([]byte("words: [unterminated"))
	assert.Error(t, err)
}

func TestLexicon_Require(t *testing.T) {
	lex, err := lexicon.Parse([]byte("code: xx\nwords:\n  a: [x]\npatterns:\n  p: [\"{a}\"]\n"))
	require.NoError(t, err)
	assert.NoError(t, lex.Require([]string{"a"}, []string{"p"}))
	assert.True(t, errors.Is(lex.Require([]string{"b"}, nil), errs.ErrUnknownCategory))
	assert.True(t, errors.Is(lex.Require(nil, []string{"q"}), errs.ErrUnknownCategory))
}

func TestLexicon_Expand(t *testing.T) {
	lex, err := lexicon.Parse([]byte("code: xx\nwords:\n  color: [red]\n  thing: [fox]\n"))
	require.NoError(t, err)
	src := seedrand.New("expand")

	assert.Equal(t, "the red fox jumps", lex.Expand(src, "the {color} {thing} jumps"))
	assert.Equal(t, "redfox", lex.Expand(src, "{color}{thing}"))
	assert.Equal(t, "no placeholders", lex.Expand(src, "no placeholders"))
	assert.Equal(t, "open {brace", lex.Expand(src, "open {brace"))
}

func TestLexicon_ExpandDeterministic(t *testing.T) {
	lex, err := lexicon.Load("en")
	require.NoError(t, err)
	a, b := seedrand.New("1"), seedrand.New("1")
	for i := 0; i < 50; i++ {
		require.Equal(t, lex.Fill(a, "reviewPhrase"), lex.Fill(b, "reviewPhrase"))
	}
}

func TestLexicon_Vocabulary(t *testing.T) {
	lex, err := lexicon.Parse([]byte("code: xx\nwords:\n  a: [Hard Drive, back-end]\npatterns:\n  p: [\"we {a} it\"]\n"))
	require.NoError(t, err)
	vocab := lex.Vocabulary()
	for _, tok := range []string{"hard", "drive", "back", "end", "we", "it"} {
		assert.Contains(t, vocab, tok)
	}
	assert.NotContains(t, vocab, "a")
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"you", "can", "t", "parse", "the", "utf"}, lexicon.Tokens("You can't parse the UTF8!"))
	assert.Equal(t, []string{"schöne", "straße"}, lexicon.Tokens("Schöne Straße."))
	assert.Empty(t, lexicon.Tokens("24/7"))
}
