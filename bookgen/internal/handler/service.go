package handler

import (
	"context"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/model"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type GeneratorService interface {
	Locales() []model.Locale
	Books(ctx context.Context, params model.GenerationParameters) (model.BooksResponse, error)
	Cover(ctx context.Context, title, author string) []byte
}

var _ GeneratorService = (*service.Service)(nil)
