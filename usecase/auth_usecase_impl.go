package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"workspace-chat-app/apperror"
	"workspace-chat-app/config/logger"
	"workspace-chat-app/dto/req"
	"workspace-chat-app/entity"
	"workspace-chat-app/repository"
	"workspace-chat-app/security"
	"workspace-chat-app/util"
)

type AuthUsecaseImpl struct {
	UserRepository      repository.UserRepository
	WorkspaceRepository repository.WorkspaceRepository
	*validator.Validate
	DB  *gorm.DB
	Tx  repository.Transactor
	Log *logger.AppLogger
	*security.JWT

	// dummyHash is compared against when the email is unknown so signin costs
	// one Argon2id run on every path.
	dummyHash string
}

func NewAuthUsecase(
	userRepository repository.UserRepository,
	workspaceRepository repository.WorkspaceRepository,
	validate *validator.Validate,
	DB *gorm.DB,
	tx repository.Transactor,
	log *logger.AppLogger,
	JWT *security.JWT,
) (AuthUsecase, error) {
	dummyHash, err := util.HashPassword("workspace-chat-app")
	if err != nil {
		return nil, err
	}
	return &AuthUsecaseImpl{
		UserRepository:      userRepository,
		WorkspaceRepository: workspaceRepository,
		Validate:            validate,
		DB:                  DB,
		Tx:                  tx,
		Log:                 log,
		JWT:                 JWT,
		dummyHash:           dummyHash,
	}, nil
}

func (uc *AuthUsecaseImpl) Signup(ctx context.Context, request *req.SignupRequest) (entity.Identity, string, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return entity.Identity{}, "", apperror.Wrap(apperror.ErrInvalidRequest, err)
	}

	exists, err := uc.UserRepository.ExistsByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		uc.Log.Auth.Error.Error().Err(err).Msg("Failed to check email")
		return entity.Identity{}, "", err
	}
	if exists {
		return entity.Identity{}, "", apperror.ErrEmailAlreadyExists
	}

	passwordHash, err := util.HashPassword(request.Password)
	if err != nil {
		uc.Log.Auth.Error.Error().Err(err).Msg("Failed to hash password")
		return entity.Identity{}, "", err
	}

	user := &entity.User{
		FullName:     request.FullName,
		Email:        request.Email,
		PasswordHash: passwordHash,
	}

	// workspace lookup, user insert and ownership claim commit together; the
	// row lock makes concurrent signups into a new workspace take turns.
	err = uc.Tx.WithTx(ctx, func(tx *gorm.DB) error {
		workspace, err := uc.WorkspaceRepository.EnsureByName(ctx, tx, request.Workspace)
		if err != nil {
			return err
		}

		user.WorkspaceID = workspace.ID
		if err := uc.UserRepository.Save(ctx, tx, user); err != nil {
			return err
		}

		if workspace.IsOwned() {
			return nil
		}
		claimed, err := uc.WorkspaceRepository.ClaimOwner(ctx, tx, workspace.ID, user.ID)
		if err != nil {
			return err
		}
		if claimed == 0 {
			uc.Log.Auth.Warning.Warn().
				Int64("workspaceId", workspace.ID).
				Int64("userId", user.ID).
				Msg("Workspace ownership was not claimed")
		}
		return nil
	})
	if err != nil {
		uc.Log.Auth.Error.Error().Err(err).Str("workspace", request.Workspace).Msg("Failed to sign up")
		return entity.Identity{}, "", err
	}

	identity := user.Identity()
	token, err := uc.JWT.GenerateToken(identity)
	if err != nil {
		uc.Log.Auth.Error.Error().Err(err).Int64("userId", identity.ID).Msg("Failed to generate token")
		return entity.Identity{}, "", err
	}

	uc.Log.Auth.Info.Info().
		Int64("userId", identity.ID).
		Int64("workspaceId", identity.WorkspaceID).
		Msg("User signed up")
	return identity, token, nil
}

// Signin returns ErrInvalidCredentials both for an unknown email and for a
// wrong password.
func (uc *AuthUsecaseImpl) Signin(ctx context.Context, request *req.SigninRequest) (string, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return "", apperror.Wrap(apperror.ErrInvalidRequest, err)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		uc.Log.Auth.Error.Error().Err(err).Msg("Failed to find user by email")
		return "", err
	}

	passwordHash := uc.dummyHash
	if user != nil {
		passwordHash = user.PasswordHash
	}
	match, err := util.ComparePassword(request.Password, passwordHash)
	if err != nil {
		uc.Log.Auth.Error.Error().Err(err).Msg("Stored password hash is unreadable")
		return "", err
	}
	if user == nil || !match {
		uc.Log.Auth.Trace.Trace().Msg("Signin rejected")
		return "", apperror.ErrInvalidCredentials
	}

	token, err := uc.JWT.GenerateToken(user.Identity())
	if err != nil {
		uc.Log.Auth.Error.Error().Err(err).Int64("userId", user.ID).Msg("Failed to generate token")
		return "", err
	}
	return token, nil
}
