package errs

import (
	"errors"
)

var (
	ErrUnknownCategory = errors.New("unknown lexicon category")
	ErrEmptyCategory   = errors.New("empty lexicon category")
	ErrRender          = errors.New("cover render failed")
)
