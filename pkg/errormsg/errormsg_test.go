package errormsg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Run("falls back to the message key", func(t *testing.T) {
		assert.Equal(t, UserNotFoundMessage, (&UserNotFoundError{}).Error())
		assert.Equal(t, FundNotFoundMessage, (&FundNotFoundError{}).Error())
		assert.Equal(t, UserNotAuthorizedMessage, (&UserNotAuthorizedError{}).Error())
	})

	t.Run("uses the translated message when set", func(t *testing.T) {
		err := &FundNotFoundError{Message: "Fonds introuvable"}

		assert.Equal(t, "Fonds introuvable", err.Error())
		assert.Equal(t, "fund.notFound", err.Code())
	})

	t.Run("exposes code and param as extensions", func(t *testing.T) {
		ext := (&UserNotAuthorizedError{}).Extensions()

		assert.Equal(t, "user.notAuthorized", ext["code"])
		assert.Equal(t, "userAuthorization", ext["param"])
	})
}

func TestClassification(t *testing.T) {
	wrapped := fmt.Errorf("removing fund: %w", &FundNotFoundError{})

	assert.True(t, IsNotFound(wrapped))
	assert.True(t, IsNotFound(&UserNotFoundError{}))
	assert.False(t, IsNotFound(&UserNotAuthorizedError{}))

	assert.True(t, IsNotAuthorized(&UserNotAuthorizedError{}))
	assert.False(t, IsNotAuthorized(fmt.Errorf("boom")))
}
