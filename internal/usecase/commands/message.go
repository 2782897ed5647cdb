package commands

import (
	"context"
	"errors"
	"log/slog"

	"gearshare/internal/domain/message"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	GearID uuid.UUID
	Body   string
}

type SendMessageResult struct {
	Message *queries.MessageView
	Warning string
}

type MessageCommands interface {
	// SendMessage delivers a note about a listing to its owner.
	SendMessage(ctx context.Context, req SendMessageRequest, senderID uuid.UUID) (*SendMessageResult, error)
	MarkMessageRead(ctx context.Context, messageID, userID uuid.UUID) error
	// MarkConversationRead is invoked when the user opens a listing's
	// thread; everything addressed to them there becomes read.
	MarkConversationRead(ctx context.Context, gearID, userID uuid.UUID) error
}

type messageUseCaseImpl struct {
	uow         shared.UnitOfWork
	messageRepo MessageRepository
	gearRepo    GearRepository
	userRepo    UserRepository
	notifier    Notifier
}

func NewMessageUseCase(
	uow shared.UnitOfWork,
	messageRepo MessageRepository,
	gearRepo GearRepository,
	userRepo UserRepository,
	notifier Notifier,
) MessageCommands {
	return &messageUseCaseImpl{
		uow:         uow,
		messageRepo: messageRepo,
		gearRepo:    gearRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// SendMessage threads the note under the listing with the owner as receiver.
// An owner writing on their own listing is rejected before any row exists.
func (uc *messageUseCaseImpl) SendMessage(ctx context.Context, req SendMessageRequest, senderID uuid.UUID) (*SendMessageResult, error) {
	gearSnap, err := uc.loadGear(ctx, req.GearID)
	if err != nil {
		return nil, err
	}

	entity, err := message.NewMessage(req.GearID, senderID, gearSnap.OwnerID, req.Body)
	if err != nil {
		return nil, err
	}

	sender, receiver, err := uc.loadParties(ctx, senderID, gearSnap.OwnerID)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return uc.messageRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view := &queries.MessageView{
		ID:           entity.ID(),
		GearID:       entity.GearID(),
		SenderID:     entity.SenderID(),
		SenderName:   fullName(sender),
		ReceiverID:   entity.ReceiverID(),
		ReceiverName: fullName(receiver),
		Body:         entity.Body(),
		IsRead:       false,
	}

	result := &SendMessageResult{Message: view}
	notice := MessageNotice{
		GearName:      gearSnap.Name,
		SenderName:    fullName(sender),
		ReceiverEmail: receiver.Email,
		ReceiverName:  fullName(receiver),
		Body:          entity.Body(),
	}
	if notifyErr := uc.notifier.MessageReceived(ctx, notice); notifyErr != nil {
		slog.Warn("message notification failed", "message_id", entity.ID(), "error", notifyErr)
		result.Warning = "message sent but notification email failed"
	}
	return result, nil
}

func (uc *messageUseCaseImpl) MarkMessageRead(ctx context.Context, messageID, userID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		snap, txErr := uc.messageRepo.FindByID(ctx, tx, messageID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrMessageNotFound
			}
			return txErr
		}
		if snap.ReceiverID != userID {
			return errs.ErrNotMessageRecipient
		}
		if snap.IsRead {
			return nil
		}
		return uc.messageRepo.MarkRead(ctx, tx, messageID)
	})
	if err != nil {
		if errors.Is(err, errs.ErrMessageNotFound) || errors.Is(err, errs.ErrNotMessageRecipient) {
			return err
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *messageUseCaseImpl) MarkConversationRead(ctx context.Context, gearID, userID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return uc.messageRepo.MarkConversationRead(ctx, tx, gearID, userID)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *messageUseCaseImpl) loadGear(ctx context.Context, gearID uuid.UUID) (*GearSnapshot, error) {
	var snap *GearSnapshot
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, dbErr := uc.gearRepo.FindByID(ctx, dbtx, gearID)
		if dbErr != nil {
			return dbErr
		}
		snap = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrGearNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (uc *messageUseCaseImpl) loadParties(ctx context.Context, senderID, receiverID uuid.UUID) (sender, receiver *ContactSnapshot, err error) {
	err = uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var dbErr error
		sender, dbErr = uc.userRepo.FindContact(ctx, dbtx, senderID)
		if dbErr != nil {
			return dbErr
		}
		receiver, dbErr = uc.userRepo.FindContact(ctx, dbtx, receiverID)
		return dbErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrUserNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return sender, receiver, nil
}

func fullName(c *ContactSnapshot) string {
	return c.FirstName + " " + c.LastName
}
