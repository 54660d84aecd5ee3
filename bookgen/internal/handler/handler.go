package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	md "github.com/Nephophile06/Bookstore-Data-Generator/pkg/middleware"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/validate"
	_ "github.com/Nephophile06/Bookstore-Data-Generator/swagger"
)

type Handler struct {
	generatorSvc GeneratorService
	params       paramsParser
	apiRPS       rate.Limit
	log          *zap.Logger
}

const (
	baseRPS       = 10
	defaultAPIRPS = 100
)

// New builds the handler. apiRPS <= 0 uses the default limit.
func New(generatorSvc GeneratorService, limits Limits, apiRPS float64, log *zap.Logger) *Handler {
	if apiRPS <= 0 {
		apiRPS = defaultAPIRPS
	}
	return &Handler{
		generatorSvc: generatorSvc,
		params:       paramsParser{limits: limits, validator: validate.NewCustomValidator()},
		apiRPS:       rate.Limit(apiRPS),
		log:          log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Validator = h.params.validator

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
		md.NewRateLimiter(h.apiRPS),
	)
	api.GET("/locales", h.GetLocales)
	api.GET("/books", h.GetBooks)
	api.GET("/cover", h.GetCover)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetLocales godoc
// @Summary      Supported locales
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  model.Locale
// @Router       /locales [get]
func (h *Handler) GetLocales(c echo.Context) error {
	return c.JSON(http.StatusOK, h.generatorSvc.Locales())
}

// GetBooks godoc
// @Summary      One page of the generated catalog
// @Description  Invalid numbers fall back to their defaults, unknown locales to en.
// @Tags         catalog
// @Produce      json
// @Param        locale      query  string  false  "locale code"         default(en)
// @Param        seed        query  string  false  "user seed"           default(42)
// @Param        avgLikes    query  number  false  "average likes"       default(3.7)
// @Param        avgReviews  query  number  false  "average reviews"     default(4.7)
// @Param        page        query  int     false  "1-based page"        default(1)
// @Param        pageSize    query  int     false  "books per page"      default(20)
// @Success      200  {object}  model.BooksResponse
// @Failure      503  {object}  echo.HTTPError
// @Router       /books [get]
func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()
	params := h.params.parse(c.QueryParams())

	resp, err := h.generatorSvc.Books(ctx, params)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// GetCover godoc
// @Summary      Cover image of a book
// @Tags         catalog
// @Produce      png
// @Param        title   query  string  false  "book title"
// @Param        author  query  string  false  "book author"
// @Success      200  {file}  binary
// @Router       /cover [get]
func (h *Handler) GetCover(c echo.Context) error {
	title, author := c.QueryParam("title"), c.QueryParam("author")
	data := h.generatorSvc.Cover(c.Request().Context(), title, author)
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, "image/png", data)
}
