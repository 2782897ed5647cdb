package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is a renter's rating of gear after a completed booking. One review
// per booking; eligibility is checked in the usecase layer against the
// booking's renter and status.
type Review struct {
	id        uuid.UUID
	renterID  uuid.UUID
	gearID    uuid.UUID
	bookingID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(renterID, gearID, bookingID uuid.UUID, ratingValue int, commentText string) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		renterID:  renterID,
		gearID:    gearID,
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) RenterID() uuid.UUID  { return r.renterID }
func (r *Review) GearID() uuid.UUID    { return r.gearID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
