package handler

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/model"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/validate"
)

// Limits bound the work a single request can ask for.
type Limits struct {
	MaxPage     int
	MaxPageSize int
	MaxAverage  float64
}

func DefaultLimits() Limits {
	return Limits{
		MaxPage:     math.MaxInt32,
		MaxPageSize: 1000,
		MaxAverage:  100,
	}
}

// paramsParser turns query strings into generation parameters. Invalid
// values never fail the request: each field falls back to its default on
// its own.
type paramsParser struct {
	limits    Limits
	validator *validate.CustomValidator
}

func (p paramsParser) parse(q url.Values) model.GenerationParameters {
	params := model.DefaultParameters()
	if v := q.Get("locale"); v != "" {
		params.Locale = v
	}
	if v := q.Get("seed"); v != "" {
		params.Seed = v
	}
	params.AvgLikes = p.average(q.Get("avgLikes"), model.DefaultAvgLikes)
	params.AvgReviews = p.average(q.Get("avgReviews"), model.DefaultAvgReviews)
	params.Page = p.integer(q.Get("page"), model.DefaultPage, p.limits.MaxPage)
	params.PageSize = p.integer(q.Get("pageSize"), model.DefaultPageSize, p.limits.MaxPageSize)
	return params
}

func (p paramsParser) integer(raw string, def, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || p.validator.Var(n, "gte=1") != nil {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

func (p paramsParser) average(raw string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || p.validator.Var(f, "gte=0") != nil {
		return def
	}
	if p.limits.MaxAverage > 0 && f > p.limits.MaxAverage {
		return p.limits.MaxAverage
	}
	return f
}
