package commands

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/pkg/jwt"
	"gearshare/internal/pkg/password"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type RegisterRequest struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	AccountType string
}

type AuthResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	userRepo   UserRepository
	userReads  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthUseCase(
	uow shared.UnitOfWork,
	userRepo UserRepository,
	userReads queries.UserReadStore,
	jwtService *jwt.Service,
) AuthCommands {
	return &authUseCaseImpl{
		uow:        uow,
		userRepo:   userRepo,
		userReads:  userReads,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	plain, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	accountType, err := user.NewAccountType(req.AccountType)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(plain.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(email, hash, name, accountType)
	err = a.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return a.userRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return a.issueToken(ctx, entity.ID())
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	view, hash, err := a.userReads.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch so emails cannot be probed.
		return nil, errs.ErrInvalidCredentials
	}

	if err = password.ComparePassword(hash, plainPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	accountType, err := user.NewAccountType(view.AccountType)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, accountType)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{Token: token, User: view}, nil
}

func (a *authUseCaseImpl) issueToken(ctx context.Context, userID uuid.UUID) (*AuthResult, error) {
	view, err := a.userReads.FindAuthorizedView(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	accountType, err := user.NewAccountType(view.AccountType)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, accountType)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{Token: token, User: view}, nil
}
