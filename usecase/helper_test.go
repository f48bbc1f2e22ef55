package usecase_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"workspace-chat-app/mocks"
	"workspace-chat-app/security"
)

// passThroughTx runs every transaction body once against a nil handle and
// returns its error, which is what a commit or rollback would report.
func passThroughTx(ctrl *gomock.Controller) *mocks.MockTransactor {
	tx := mocks.NewMockTransactor(ctrl)
	tx.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*gorm.DB) error) error {
			return fn(nil)
		}).
		AnyTimes()
	return tx
}

func newTestJWT(t *testing.T) *security.JWT {
	t.Helper()
	keys, err := security.GenerateKeyPair()
	require.NoError(t, err)
	return security.NewJWT(keys, security.TokenConfig{})
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func ptr[T any](v T) *T {
	return &v
}
