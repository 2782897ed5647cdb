package commands

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/review"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
	GearID   uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, renterID uuid.UUID) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow         shared.UnitOfWork
	bookingRepo BookingRepository
	reviewRepo  ReviewRepository
	gearRepo    GearRepository
}

func NewReviewUseCase(
	uow shared.UnitOfWork,
	bookingRepo BookingRepository,
	reviewRepo ReviewRepository,
	gearRepo GearRepository,
) ReviewCommands {
	return &reviewUseCaseImpl{
		uow:         uow,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		gearRepo:    gearRepo,
	}
}

// CreateReview posts a review against a completed booking. Only the renter
// of the booking may review, once per booking; the listing's average rating
// is recomputed in the same transaction.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, renterID uuid.UUID) (*CreateReviewResult, error) {
	var result *CreateReviewResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		snap, txErr := uc.bookingRepo.FindByID(ctx, tx, req.BookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return txErr
		}
		if snap.RenterID != renterID {
			return errs.ErrUnauthorized
		}
		if snap.Status != booking.StatusCompleted {
			return errs.ErrBookingNotReviewable
		}

		entity, txErr := review.NewReview(renterID, snap.GearID, req.BookingID, req.Rating, req.Comment)
		if txErr != nil {
			return txErr
		}
		if txErr = uc.reviewRepo.Create(ctx, tx, entity); txErr != nil {
			return txErr
		}
		if txErr = uc.gearRepo.RecalcAverageRating(ctx, tx, snap.GearID); txErr != nil {
			return txErr
		}
		result = &CreateReviewResult{ReviewID: entity.ID(), GearID: snap.GearID}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrReviewAlreadyExists
		}
		if infra.IsKind(err, infra.KindDBFailure) {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil, err
	}
	return result, nil
}
