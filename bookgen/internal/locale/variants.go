package locale

import (
	"strings"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/lexicon"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/seedrand"
)

// english: catch-phrase titles, jargon reviews.
type english struct{ base }

func newEnglish(lex *lexicon.Lexicon) (TextGenerator, error) {
	if err := lex.Require(nil, []string{"fullName", "publisher", "title", "reviewPhrase"}); err != nil {
		return nil, err
	}
	return english{base{lex: lex}}, nil
}

func (e english) Title(src *seedrand.Source) string {
	return capitalize(e.lex.Fill(src, "title"))
}

func (e english) ReviewText(src *seedrand.Source) string {
	n := src.IntBetween(2, 4)
	phrases := make([]string, 0, n)
	for i := 0; i < n; i++ {
		phrases = append(phrases, capitalize(e.lex.Fill(src, "reviewPhrase")))
	}
	return strings.Join(phrases, ". ") + "."
}

// german: "{adjective} {noun}" titles, "der ... die ..." review sentences.
type german struct{ base }

func newGerman(lex *lexicon.Lexicon) (TextGenerator, error) {
	if err := lex.Require(nil, []string{"fullName", "publisher", "title", "reviewSentence"}); err != nil {
		return nil, err
	}
	return german{base{lex: lex}}, nil
}

func (g german) Title(src *seedrand.Source) string {
	return capitalize(g.lex.Fill(src, "title"))
}

func (g german) ReviewText(src *seedrand.Source) string {
	n := src.IntBetween(2, 3)
	sentences := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sentences = append(sentences, capitalize(g.lex.Fill(src, "reviewSentence")))
	}
	return strings.Join(sentences, " ")
}

// japanese: space-separated word titles, uncased sentences.
type japanese struct{ base }

func newJapanese(lex *lexicon.Lexicon) (TextGenerator, error) {
	if err := lex.Require([]string{"word"}, []string{"fullName", "publisher", "reviewSentence"}); err != nil {
		return nil, err
	}
	return japanese{base{lex: lex}}, nil
}

func (j japanese) Title(src *seedrand.Source) string {
	n := src.IntBetween(2, 5)
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, j.lex.Word(src, "word"))
	}
	return capitalize(strings.Join(words, " "))
}

func (j japanese) ReviewText(src *seedrand.Source) string {
	n := src.IntBetween(2, 4)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(j.lex.Fill(src, "reviewSentence"))
	}
	return b.String()
}
