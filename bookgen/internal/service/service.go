package service

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/locale"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/model"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/queue"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/kafka"
)

type Pager interface {
	Page(ctx context.Context, params model.GenerationParameters) ([]model.Book, error)
}

type Drawer interface {
	Draw(title, author string) ([]byte, error)
	Fallback() []byte
}

type coverKey struct {
	title, author string
}

type Service struct {
	log    *zap.Logger
	pager  Pager
	drawer Drawer
	queue  queue.Enqueuer
	covers *lru.Cache[coverKey, []byte]
	now    func() time.Time
}

// NewService wires the use cases. cacheSize <= 0 disables the cover cache.
func NewService(pager Pager, drawer Drawer, cacheSize int, q queue.Enqueuer, log *zap.Logger) (*Service, error) {
	s := &Service{
		log:    log.Named("service"),
		pager:  pager,
		drawer: drawer,
		queue:  q,
		now:    time.Now,
	}
	if cacheSize > 0 {
		cache, err := lru.New[coverKey, []byte](cacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "lru.New")
		}
		s.covers = cache
	}
	return s, nil
}

func (s *Service) Locales() []model.Locale {
	return locale.Supported()
}

func (s *Service) Books(ctx context.Context, params model.GenerationParameters) (model.BooksResponse, error) {
	books, err := s.pager.Page(ctx, params)
	if err != nil {
		return model.BooksResponse{}, err
	}
	s.queue.Enqueue(kafka.EventStats{
		Event:     kafka.EventBooksGenerated,
		Locale:    string(locale.Resolve(params.Locale)),
		Seed:      params.Seed,
		Page:      params.Page,
		PageSize:  params.PageSize,
		Timestamp: s.now(),
	})
	return model.BooksResponse{Books: books}, nil
}

// Cover always returns a PNG. Failed renders fall back to the blank cover and
// are not cached.
func (s *Service) Cover(_ context.Context, title, author string) []byte {
	key := coverKey{title: title, author: author}
	if s.covers != nil {
		if data, ok := s.covers.Get(key); ok {
			s.coverEvent(title, true)
			return data
		}
	}

	data, err := s.drawer.Draw(title, author)
	if err != nil {
		s.log.Warn("cover fallback", zap.String("title", title), zap.Error(err))
		return s.drawer.Fallback()
	}
	if s.covers != nil {
		s.covers.Add(key, data)
	}
	s.coverEvent(title, false)
	return data
}

func (s *Service) coverEvent(title string, cached bool) {
	s.queue.Enqueue(kafka.EventStats{
		Event:     kafka.EventCoverRendered,
		Title:     title,
		Cached:    cached,
		Timestamp: s.now(),
	})
}
