package commands

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/gear"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotAnOwnerAccount = errs.New("account type cannot list gear")

type CreateGearRequest struct {
	Name            string
	Description     string
	Category        string
	DailyPriceCents int64
	Location        string
}

type GearCommands interface {
	CreateGear(ctx context.Context, req CreateGearRequest, ownerID uuid.UUID) (*queries.GearView, error)
}

type gearUseCaseImpl struct {
	uow         shared.UnitOfWork
	gearRepo    GearRepository
	userReads   queries.UserReadStore
	gearQueries queries.GearQueries
}

func NewGearUseCase(
	uow shared.UnitOfWork,
	gearRepo GearRepository,
	userReads queries.UserReadStore,
	gearQueries queries.GearQueries,
) GearCommands {
	return &gearUseCaseImpl{
		uow:         uow,
		gearRepo:    gearRepo,
		userReads:   userReads,
		gearQueries: gearQueries,
	}
}

// CreateGear lists a new item. Only owner and both account types may list.
func (uc *gearUseCaseImpl) CreateGear(ctx context.Context, req CreateGearRequest, ownerID uuid.UUID) (*queries.GearView, error) {
	owner, err := uc.userReads.FindAuthorizedView(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !user.AccountType(owner.AccountType).CanListGear() {
		return nil, ErrNotAnOwnerAccount
	}

	category, err := gear.NewCategory(req.Category)
	if err != nil {
		return nil, err
	}

	entity, err := gear.NewGear(ownerID, req.Name, req.Description, category, booking.NewMoney(req.DailyPriceCents), req.Location)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return uc.gearRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return uc.gearQueries.GetByID(ctx, entity.ID())
}
