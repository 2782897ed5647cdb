package gear

import (
	"errors"
	"strings"
	"time"

	"gearshare/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("gear name cannot be empty")
	ErrEmptyDescription = errors.New("gear description cannot be empty")
	ErrInvalidCategory  = errors.New("invalid gear category")
	ErrInvalidPrice     = errors.New("daily price must be positive")
)

// Category buckets listings for browsing.
type Category string

const (
	CategoryBikes   Category = "bikes"
	CategoryWater   Category = "water"
	CategoryCamping Category = "camping"
	CategoryPower   Category = "power"
	CategoryGear    Category = "gear"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBikes, CategoryWater, CategoryCamping, CategoryPower, CategoryGear:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

type Gear struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	name          string
	description   string
	category      Category
	dailyPrice    booking.Money
	location      string
	isAvailable   bool
	averageRating float64
	createdAt     time.Time
	updatedAt     time.Time
}

func NewGear(ownerID uuid.UUID, name, description string, category Category, dailyPrice booking.Money, location string) (*Gear, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	if !dailyPrice.IsPositive() {
		return nil, ErrInvalidPrice
	}

	return &Gear{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		category:    category,
		dailyPrice:  dailyPrice,
		location:    strings.TrimSpace(location),
		isAvailable: true,
	}, nil
}

func ReconstructGear(
	id, ownerID uuid.UUID,
	name, description string,
	category Category,
	dailyPrice booking.Money,
	location string,
	isAvailable bool,
	averageRating float64,
	createdAt, updatedAt time.Time,
) *Gear {
	return &Gear{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		description:   description,
		category:      category,
		dailyPrice:    dailyPrice,
		location:      location,
		isAvailable:   isAvailable,
		averageRating: averageRating,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (g *Gear) ID() uuid.UUID             { return g.id }
func (g *Gear) OwnerID() uuid.UUID        { return g.ownerID }
func (g *Gear) Name() string              { return g.name }
func (g *Gear) Description() string       { return g.description }
func (g *Gear) Category() Category        { return g.category }
func (g *Gear) DailyPrice() booking.Money { return g.dailyPrice }
func (g *Gear) Location() string          { return g.location }
func (g *Gear) IsAvailable() bool         { return g.isAvailable }
func (g *Gear) AverageRating() float64    { return g.averageRating }
func (g *Gear) CreatedAt() time.Time      { return g.createdAt }
func (g *Gear) UpdatedAt() time.Time      { return g.updatedAt }
