package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	GearID         uuid.UUID `json:"gear_id"`
	GearName       string    `json:"gear_name"`
	OwnerID        uuid.UUID `json:"owner_id"`
	OwnerEmail     string    `json:"owner_email"`
	OwnerName      string    `json:"owner_name"`
	RenterID       uuid.UUID `json:"renter_id"`
	RenterEmail    string    `json:"renter_email"`
	RenterName     string    `json:"renter_name"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	TotalDays      int32     `json:"total_days"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	TotalCostCents int64     `json:"total_cost_cents"`
	DepositCents   int64     `json:"deposit_cents"`
	DepositPercent int32     `json:"deposit_percent"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID             uuid.UUID `json:"id"`
	GearID         uuid.UUID `json:"gear_id"`
	GearName       string    `json:"gear_name"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	TotalDays      int32     `json:"total_days"`
	TotalCostCents int64     `json:"total_cost_cents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type GearView struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	OwnerName       string    `json:"owner_name"`
	OwnerTrustTier  string    `json:"owner_trust_tier"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	DailyPriceCents int64     `json:"daily_price_cents"`
	Location        string    `json:"location"`
	IsAvailable     bool      `json:"is_available"`
	AverageRating   float64   `json:"average_rating"`
	CreatedAt       time.Time `json:"created_at"`
}

type TrustSnapshot struct {
	Tier               string  `json:"trust_level"`
	TierLabel          string  `json:"trust_label"`
	CompletedRentals   int     `json:"completed_rentals"`
	MaxDailyPriceCents *int64  `json:"max_daily_price_cents,omitempty"`
	IsVerified         bool    `json:"is_verified"`
	NextTier           *string `json:"next_tier,omitempty"`
	RentalsToNextTier  *int    `json:"rentals_to_next_tier,omitempty"`
}

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	GearID     uuid.UUID `json:"gear_id"`
	RenterID   uuid.UUID `json:"renter_id"`
	RenterName string    `json:"renter_name"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type MessageView struct {
	ID           uuid.UUID `json:"id"`
	GearID       uuid.UUID `json:"gear_id"`
	SenderID     uuid.UUID `json:"sender_id"`
	SenderName   string    `json:"sender_name"`
	ReceiverID   uuid.UUID `json:"receiver_id"`
	ReceiverName string    `json:"receiver_name"`
	Body         string    `json:"message"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

/// ConversationView summarizes one listing thread with one partner: the
// latest message plus how many of the partner's messages are still unread.
type ConversationView struct {
	GearID        uuid.UUID `json:"gear_id"`
	GearName      string    `json:"gear_name"`
	PartnerID     uuid.UUID `json:"partner_id"`
	PartnerName   string    `json:"partner_name"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_time"`
	UnreadCount   int       `json:"unread_count"`
}

type GearPerformanceView struct {
	GearID            uuid.UUID `json:"gear_id"`
	GearName          string    `json:"gear_name"`
	TotalBookings     int       `json:"total_bookings"`
	CompletedBookings int       `json:"completed_bookings"`
	EarningsCents     int64     `json:"earnings_cents"`
	AverageRating     float64   `json:"average_rating"`
	DailyPriceCents   int64     `json:"daily_price_cents"`
}

// OwnerDashboardView aggregates an owner's listings. Earnings are the
// owner's share after the platform commission, in cents.
type OwnerDashboardView struct {
	TotalGear            int                    `json:"total_gear"`
	TotalBookings        int                    `json:"total_bookings"`
	TotalEarningsCents   int64                  `json:"total_earnings_cents"`
	PendingEarningsCents int64                  `json:"pending_earnings_cents"`
	ActiveRentals        int                    `json:"active_rentals"`
	CompletedRentals     int                    `json:"completed_rentals"`
	AverageRating        float64                `json:"average_rating"`
	TotalReviews         int                    `json:"total_reviews"`
	GearPerformance      []*GearPerformanceView `json:"gear_performance"`
}

type AuthorizedUserView struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	AccountType      string    `json:"account_type"`
	TrustTier        string    `json:"trust_level"`
	CompletedRentals int       `json:"completed_rentals"`
	IsVerified       bool      `json:"is_verified"`
}
