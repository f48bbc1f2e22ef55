//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_repository.go -package=mocks
package repository

import (
	"context"

	"gorm.io/gorm"

	"workspace-chat-app/entity"
)

// Transactor runs fn inside one database transaction. fn receives the
// transaction handle and must pass it to every repository call that has to
// commit or roll back together.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Finders return a nil record and a nil error when nothing matches.

type UserRepository interface {
	Save(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error)
	CountInWorkspace(ctx context.Context, db *gorm.DB, workspaceID int64, ids []int64) (int64, error)
	FindAllByWorkspace(ctx context.Context, db *gorm.DB, workspaceID int64) ([]entity.User, error)
}

type WorkspaceRepository interface {
	Save(ctx context.Context, db *gorm.DB, workspace *entity.Workspace) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Workspace, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Workspace, error)
	// EnsureByName inserts the workspace unless the name exists, then
	// returns the row locked FOR UPDATE. Only meaningful inside a transaction.
	EnsureByName(ctx context.Context, db *gorm.DB, name string) (*entity.Workspace, error)
	// UpdateOwner sets the owner when ownerID is a user of the workspace and
	// returns the number of rows changed.
	UpdateOwner(ctx context.Context, db *gorm.DB, workspaceID, ownerID int64) (int64, error)
	// ClaimOwner is UpdateOwner restricted to a workspace that is still unowned.
	ClaimOwner(ctx context.Context, db *gorm.DB, workspaceID, ownerID int64) (int64, error)
}

type ChatRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Chat, error)
	FindAllByWorkspace(ctx context.Context, db *gorm.DB, workspaceID int64) ([]entity.Chat, error)
	CreateWithMembers(ctx context.Context, db *gorm.DB, chat *entity.Chat) error
	UpdateWithMembers(ctx context.Context, db *gorm.DB, chat *entity.Chat) (int64, error)
	DeleteByID(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}

type MessageRepository interface {
	Save(ctx context.Context, db *gorm.DB, message *entity.Message) error
	// FindAllByChat pages backwards: newest first, only ids below lastID when
	// lastID is positive.
	FindAllByChat(ctx context.Context, db *gorm.DB, chatID, lastID int64, limit int) ([]entity.Message, error)
}
