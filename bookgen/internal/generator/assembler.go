package generator

import (
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/locale"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/model"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/seedrand"
)

const (
	minAuthors = 1
	maxAuthors = 3
)

// Assemble builds the book at globalIndex from a source seeded with seedKey.
//
// Draw order: isbn, title, author count, authors, publisher, likes, review
// count, then text and author of each review. Reordering these changes every
// book for every seed.
func Assemble(globalIndex int, text locale.TextGenerator, seedKey string, avgLikes, avgReviews float64) model.Book {
	src := seedrand.New(seedKey)

	book := model.Book{Index: globalIndex}
	book.ISBN = text.ISBN(src)
	book.Title = text.Title(src)

	n := src.IntBetween(minAuthors, maxAuthors)
	book.Authors = make([]string, 0, n)
	for i := 0; i < n; i++ {
		book.Authors = append(book.Authors, text.AuthorName(src))
	}
	book.Publisher = text.PublisherName(src)

	book.Likes = SampleCount(src, avgLikes)

	n = SampleCount(src, avgReviews)
	book.Reviews = make([]model.Review, 0, n)
	for i := 0; i < n; i++ {
		var r model.Review
		r.Text = text.ReviewText(src)
		r.Author = text.AuthorName(src)
		book.Reviews = append(book.Reviews, r)
	}
	return book
}
