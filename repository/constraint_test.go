package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"workspace-chat-app/apperror"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		description string
		err         error
		want        error
	}{
		{"duplicate email", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUserEmail}, apperror.ErrEmailAlreadyExists},
		{"duplicate workspace", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintWorkspaceName}, apperror.ErrDuplicateWorkspace},
		{"wrapped violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUserEmail}), apperror.ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			got := translateError(tt.err)
			req.ErrorIs(got, tt.want)
			req.Equal(apperror.KindConflict, apperror.KindOf(got))
		})
	}
}

func TestTranslateErrorPassesThroughOtherFailures(t *testing.T) {
	req := require.New(t)

	other := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "t_chat_member_pkey"}
	req.Same(other, translateError(other))

	fk := &pgconn.PgError{Code: "23503", ConstraintName: constraintUserEmail}
	req.Same(fk, translateError(fk))

	plain := errors.New("connection refused")
	req.Equal(plain, translateError(plain))
	req.NoError(translateError(nil))
}
