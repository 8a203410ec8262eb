package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	t.Run("formats message with cause", func(t *testing.T) {
		err := NewUserError("could not read the answers file", errors.New("permission denied"))
		assert.Equal(t, "could not read the answers file: permission denied", err.Error())
	})

	t.Run("formats message without cause", func(t *testing.T) {
		err := &UserError{UserMessage: "nothing to assess"}
		assert.Equal(t, "nothing to assess", err.Error())
	})

	t.Run("unwraps to the sentinel", func(t *testing.T) {
		err := NewUserError("the answers file contains no answers", ErrNoAnswers)
		assert.ErrorIs(t, err, ErrNoAnswers)
	})
}

func TestSentinelsWrapThroughErrorf(t *testing.T) {
	err := fmt.Errorf("%w: %q", ErrUnknownUnit, "finance")
	assert.ErrorIs(t, err, ErrUnknownUnit)
	assert.NotErrorIs(t, err, ErrNotFound)
}
