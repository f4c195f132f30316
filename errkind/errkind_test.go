package errkind

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	err := Typef("element %d is a %T", 3, "x")
	assert.True(t, IsType(err))
	assert.False(t, IsValue(err))
	assert.Equal(t, "element 3 is a string", err.Error())

	err = Valuef("need at least %d elements", 2)
	assert.True(t, IsValue(err))
	assert.False(t, IsType(err))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := errors.Wrap(Valuef("empty sample"), "computing mean")
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Contains(t, err.Error(), "computing mean")
}
