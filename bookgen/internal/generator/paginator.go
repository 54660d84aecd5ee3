package generator

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/locale"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/model"
)

// Generator pages through the infinite catalog. It holds no per-request state
// and is safe for concurrent use.
type Generator struct {
	registry *locale.Registry
	workers  int
	log      *zap.Logger
}

// New returns a Generator assembling at most workers books of a page at once.
// workers <= 0 means GOMAXPROCS.
func New(registry *locale.Registry, workers int, log *zap.Logger) *Generator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{
		registry: registry,
		workers:  workers,
		log:      log,
	}
}

// Page generates params.PageSize books starting at global index
// (Page-1)*PageSize+1. Each slot has its own seed key, so the result is the
// same as sequential generation. The only error is ctx being done.
func (g *Generator) Page(ctx context.Context, params model.GenerationParameters) ([]model.Book, error) {
	page, size := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return []model.Book{}, nil
	}
	code := locale.Resolve(params.Locale)
	text := g.registry.Generator(code)
	first := (page - 1) * size

	books := make([]model.Book, size)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for offset := 0; offset < size; offset++ {
		offset := offset
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			key := DeriveItemSeed(params.Seed, page, offset)
			books[offset] = Assemble(first+offset+1, text, key, params.AvgLikes, params.AvgReviews)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.log.Debug("page generated",
		zap.String("locale", string(code)),
		zap.String("seed", params.Seed),
		zap.Int("page", page),
		zap.Int("pageSize", size),
	)
	return books, nil
}
