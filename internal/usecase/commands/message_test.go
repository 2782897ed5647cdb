//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"gearshare/internal/domain/message"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/tests/common/builder"
	"gearshare/tests/common/testutil"
	commandsmock "gearshare/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessageCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	messageRepo *commandsmock.MockMessageRepository
	gearRepo    *commandsmock.MockGearRepository
	userRepo    *commandsmock.MockUserRepository
	notifier    *commandsmock.MockNotifier
	uc          commands.MessageCommands
}

func (s *MessageCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.messageRepo = commandsmock.NewMockMessageRepository(s.ctrl)
	s.gearRepo = commandsmock.NewMockGearRepository(s.ctrl)
	s.userRepo = commandsmock.NewMockUserRepository(s.ctrl)
	s.notifier = commandsmock.NewMockNotifier(s.ctrl)
	s.uc = commands.NewMessageUseCase(&testutil.StubUnitOfWork{}, s.messageRepo, s.gearRepo, s.userRepo, s.notifier)
}

func (s *MessageCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMessageCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(MessageCommandsTestSuite))
}

func (s *MessageCommandsTestSuite) contact(id uuid.UUID, first, last, email string) *commands.ContactSnapshot {
	return &commands.ContactSnapshot{ID: id, Email: email, FirstName: first, LastName: last}
}

func (s *MessageCommandsTestSuite) TestSendMessageSuccess() {
	gear := builder.NewGearBuilder()
	senderID := uuid.New()

	s.gearRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), gear.ID).Return(gear.BuildSnapshot(), nil)
	s.userRepo.EXPECT().FindContact(gomock.Any(), gomock.Any(), senderID).
		Return(s.contact(senderID, "Riko", "Tanaka", "riko@example.com"), nil)
	s.userRepo.EXPECT().FindContact(gomock.Any(), gomock.Any(), gear.OwnerID).
		Return(s.contact(gear.OwnerID, "Ann", "Baker", "ann@example.com"), nil)
	s.messageRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, msg *message.Message) error {
			s.Equal(gear.ID, msg.GearID())
			s.Equal(senderID, msg.SenderID())
			s.Equal(gear.OwnerID, msg.ReceiverID())
			s.Equal("Is the bike free next weekend?", msg.Body())
			s.False(msg.IsRead())
			return nil
		})
	s.notifier.EXPECT().MessageReceived(gomock.Any(), commands.MessageNotice{
		GearName:      gear.Name,
		SenderName:    "Riko Tanaka",
		ReceiverEmail: "ann@example.com",
		ReceiverName:  "Ann Baker",
		Body:          "Is the bike free next weekend?",
	}).Return(nil)

	result, err := s.uc.SendMessage(context.Background(), commands.SendMessageRequest{
		GearID: gear.ID,
		Body:   "Is the bike free next weekend?",
	}, senderID)

	s.Require().NoError(err)
	s.Equal(gear.ID, result.Message.GearID)
	s.Equal(senderID, result.Message.SenderID)
	s.Equal("Riko Tanaka", result.Message.SenderName)
	s.Equal(gear.OwnerID, result.Message.ReceiverID)
	s.Equal("Ann Baker", result.Message.ReceiverName)
	s.False(result.Message.IsRead)
	s.Empty(result.Warning)
}

func (s *MessageCommandsTestSuite) TestSendMessageNotificationFailureWarnsOnly() {
	gear := builder.NewGearBuilder()
	senderID := uuid.New()

	s.gearRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), gear.ID).Return(gear.BuildSnapshot(), nil)
	s.userRepo.EXPECT().FindContact(gomock.Any(), gomock.Any(), senderID).
		Return(s.contact(senderID, "Riko", "Tanaka", "riko@example.com"), nil)
	s.userRepo.EXPECT().FindContact(gomock.Any(), gomock.Any(), gear.OwnerID).
		Return(s.contact(gear.OwnerID, "Ann", "Baker", "ann@example.com"), nil)
	s.messageRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().MessageReceived(gomock.Any(), gomock.Any()).
		Return(errors.New("smtp unreachable"))

	result, err := s.uc.SendMessage(context.Background(), commands.SendMessageRequest{
		GearID: gear.ID,
		Body:   "Still available?",
	}, senderID)

	s.Require().NoError(err)
	s.Equal("message sent but notification email failed", result.Warning)
}

func (s *MessageCommandsTestSuite) TestSendMessageOwnerCannotMessageOwnListing() {
	gear := builder.NewGearBuilder()

	s.gearRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), gear.ID).Return(gear.BuildSnapshot(), nil)

	_, err := s.uc.SendMessage(context.Background(), commands.SendMessageRequest{
		GearID: gear.ID,
		Body:   "Nice bike!",
	}, gear.OwnerID)

	s.Require().ErrorIs(err, message.ErrSelfMessage)
}

func (s *MessageCommandsTestSuite) TestSendMessageGearNotFound() {
	gearID := uuid.New()

	s.gearRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), gearID).
		Return(nil, infra.WrapRepoErr("gear not found", nil, infra.KindNotFound))

	_, err := s.uc.SendMessage(context.Background(), commands.SendMessageRequest{
		GearID: gearID,
		Body:   "Hello",
	}, uuid.New())

	s.Require().ErrorIs(err, errs.ErrGearNotFound)
}

func (s *MessageCommandsTestSuite) TestMarkMessageReadSuccess() {
	messageID := uuid.New()
	userID := uuid.New()

	s.messageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), messageID).
		Return(&commands.MessageSnapshot{ID: messageID, ReceiverID: userID}, nil)
	s.messageRepo.EXPECT().MarkRead(gomock.Any(), gomock.Any(), messageID).Return(nil)

	err := s.uc.MarkMessageRead(context.Background(), messageID, userID)

	s.Require().NoError(err)
}

func (s *MessageCommandsTestSuite) TestMarkMessageReadNotFound() {
	messageID := uuid.New()

	s.messageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), messageID).
		Return(nil, infra.WrapRepoErr("message not found", nil, infra.KindNotFound))

	err := s.uc.MarkMessageRead(context.Background(), messageID, uuid.New())

	s.Require().ErrorIs(err, errs.ErrMessageNotFound)
}

func (s *MessageCommandsTestSuite) TestMarkMessageReadOnlyRecipient() {
	messageID := uuid.New()

	s.messageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), messageID).
		Return(&commands.MessageSnapshot{ID: messageID, ReceiverID: uuid.New()}, nil)

	err := s.uc.MarkMessageRead(context.Background(), messageID, uuid.New())

	s.Require().ErrorIs(err, errs.ErrNotMessageRecipient)
}

func (s *MessageCommandsTestSuite) TestMarkMessageReadAlreadyReadIsNoOp() {
	messageID := uuid.New()
	userID := uuid.New()

	s.messageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), messageID).
		Return(&commands.MessageSnapshot{ID: messageID, ReceiverID: userID, IsRead: true}, nil)

	err := s.uc.MarkMessageRead(context.Background(), messageID, userID)

	s.Require().NoError(err)
}

func (s *MessageCommandsTestSuite) TestMarkConversationRead() {
	gearID := uuid.New()
	userID := uuid.New()

	s.messageRepo.EXPECT().MarkConversationRead(gomock.Any(), gomock.Any(), gearID, userID).Return(nil)

	err := s.uc.MarkConversationRead(context.Background(), gearID, userID)

	s.Require().NoError(err)
}
