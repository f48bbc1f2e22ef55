package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"workspace-chat-app/apperror"
)

const (
	pgUniqueViolation = "23505"

	constraintUserEmail     = "idx_user_email"
	constraintWorkspaceName = "idx_workspace_name"
)

// translateError maps unique violations on the known indexes to conflict
// errors and leaves everything else untouched.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case constraintUserEmail:
		return apperror.Wrap(apperror.ErrEmailAlreadyExists, err)
	case constraintWorkspaceName:
		return apperror.Wrap(apperror.ErrDuplicateWorkspace, err)
	default:
		return err
	}
}
