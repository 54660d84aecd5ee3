package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/validate"
)

func TestCustomValidator(t *testing.T) {
	v := validate.NewCustomValidator()

	type query struct {
		Page int `validate:"gte=1"`
	}
	assert.NoError(t, v.Validate(query{Page: 1}))
	assert.Error(t, v.Validate(query{Page: 0}))

	assert.NoError(t, v.Var(3.7, "gte=0"))
	assert.Error(t, v.Var(-0.1, "gte=0"))
	assert.Error(t, v.Var(1001, "lte=1000"))
}
