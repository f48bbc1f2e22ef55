package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMatchesSentinelByCode(t *testing.T) {
	req := require.New(t)

	detailed := Detail(ErrInvalidMembership, "too few members")
	req.ErrorIs(detailed, ErrInvalidMembership)
	req.NotErrorIs(detailed, ErrInvalidArgument)
	req.Equal("too few members", detailed.Error())

	wrapped := fmt.Errorf("creating chat: %w", detailed)
	req.ErrorIs(wrapped, ErrInvalidMembership)
	req.Equal(KindValidation, KindOf(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	req := require.New(t)
	cause := errors.New("duplicate key value violates unique constraint")

	err := Wrap(ErrEmailAlreadyExists, cause)

	req.ErrorIs(err, ErrEmailAlreadyExists)
	req.ErrorIs(err, cause)
	req.Contains(err.Error(), "email already exists")
	req.Equal(KindConflict, KindOf(err))
}

func TestKindOfUnknownError(t *testing.T) {
	require.Equal(t, KindInfrastructure, KindOf(errors.New("connection refused")))
}
