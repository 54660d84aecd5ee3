package model

type Locale struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type Book struct {
	Index     int      `json:"index"`
	ISBN      string   `json:"isbn"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Publisher string   `json:"publisher"`
	Likes     int      `json:"likes"`
	Reviews   []Review `json:"reviews"`
}

type Review struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

type BooksResponse struct {
	Books []Book `json:"books"`
}

const (
	DefaultLocale     = "en"
	DefaultSeed       = "42"
	DefaultAvgLikes   = 3.7
	DefaultAvgReviews = 4.7
	DefaultPage       = 1
	DefaultPageSize   = 20
)

// GenerationParameters fully determine the content of one page.
type GenerationParameters struct {
	Locale     string
	Seed       string
	AvgLikes   float64
	AvgReviews float64
	Page       int
	PageSize   int
}

func DefaultParameters() GenerationParameters {
	return GenerationParameters{
		Locale:     DefaultLocale,
		Seed:       DefaultSeed,
		AvgLikes:   DefaultAvgLikes,
		AvgReviews: DefaultAvgReviews,
		Page:       DefaultPage,
		PageSize:   DefaultPageSize,
	}
}
