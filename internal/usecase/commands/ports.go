package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/gear"
	"gearshare/internal/domain/message"
	"gearshare/internal/domain/review"
	"gearshare/internal/domain/trust"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side query types.

type GearSnapshot struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	DailyPriceCents int64
	IsAvailable     bool
}

type RenterSnapshot struct {
	ID               uuid.UUID
	Tier             trust.Tier
	CompletedRentals int
	Verified         bool
}

type BookingSnapshot struct {
	ID             uuid.UUID
	GearID         uuid.UUID
	RenterID       uuid.UUID
	Dates          booking.DateRange
	TotalDays      int
	DailyRateCents int64
	TotalCostCents int64
	DepositCents   int64
	Status         booking.Status
}

type PayoutAccountSnapshot struct {
	OwnerID         uuid.UUID
	StripeAccountID *string
	PayoutsReady    bool
}

type ContactSnapshot struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

type MessageSnapshot struct {
	ID         uuid.UUID
	GearID     uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	IsRead     bool
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	// HasConflict applies the inclusive overlap rule against blocking
	// bookings.
	HasConflict(ctx context.Context, dbtx db.DBTX, gearID uuid.UUID, dates booking.DateRange) (bool, error)
	// UpdateStatus is guarded by the expected current status; the guard
	// failing surfaces as a conflict so racing transitions lose cleanly.
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to booking.Status) error
	// CountCompletedByRenter counts within the current transaction, so a
	// just-committed transition is included.
	CountCompletedByRenter(ctx context.Context, tx db.DBTX, renterID uuid.UUID) (int, error)
}

type GearRepository interface {
	Create(ctx context.Context, tx db.DBTX, g *gear.Gear) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*GearSnapshot, error)
	// RecalcAverageRating recomputes the listing's average from its reviews.
	RecalcAverageRating(ctx context.Context, tx db.DBTX, gearID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	FindRenterSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*RenterSnapshot, error)
	FindPayoutAccount(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*PayoutAccountSnapshot, error)
	FindContact(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ContactSnapshot, error)
	UpdateTrust(ctx context.Context, tx db.DBTX, id uuid.UUID, completedRentals int, tier trust.Tier) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *review.Review) error
}

type MessageRepository interface {
	Create(ctx context.Context, tx db.DBTX, msg *message.Message) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*MessageSnapshot, error)
	MarkRead(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// MarkConversationRead flags every message on the gear addressed to the
	// user as read.
	MarkConversationRead(ctx context.Context, tx db.DBTX, gearID, userID uuid.UUID) error
}

type PaymentRecord struct {
	BookingID        uuid.UUID
	PaymentType      string // rental or deposit
	AmountCents      int64
	ProviderIntentID string
}

type PaymentRepository interface {
	CreatePending(ctx context.Context, tx db.DBTX, rec PaymentRecord) error
}

// PaymentIntentRequest describes the marketplace split for the processor:
// the platform fee is retained, the remainder transfers to the owner's
// connected account, the deposit rides along as a hold.
type PaymentIntentRequest struct {
	BookingID        uuid.UUID
	RenterID         uuid.UUID
	OwnerAccountID   string
	TotalAmountCents int64
	PlatformFeeCents int64
	DepositCents     int64
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway is the payment collaborator. Intent creation is the one
// collaborator call allowed to fail a request: a booking is never confirmed
// without a successful charge setup.
type PaymentGateway interface {
	CreateBookingIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
}

type BookingNotice struct {
	BookingID   uuid.UUID
	GearName    string
	RenterEmail string
	RenterName  string
	OwnerEmail  string
	OwnerName   string
	StartDate   time.Time
	EndDate     time.Time
	TotalCents  int64
	Status      string
}

type MessageNotice struct {
	GearName      string
	SenderName    string
	ReceiverEmail string
	ReceiverName  string
	Body          string
}

/// Notifier is best effort: failures are logged and surfaced as warnings,
// never as request errors.
type Notifier interface {
	BookingCreated(ctx context.Context, n BookingNotice) error
	BookingStatusChanged(ctx context.Context, n BookingNotice) error
	MessageReceived(ctx context.Context, n MessageNotice) error
}
