package bookingrepo

import (
	"time"

	"sauna/internal/core/domain/model/booking"
	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingDTO is the gorm row for a booking.
type BookingDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SessionID      uuid.UUID       `gorm:"type:uuid;index"`
	Quantity       int             `gorm:"not null"`
	Duration       int             `gorm:"not null"`
	PickupDate     string          `gorm:"not null"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FormattedPrice string          `gorm:"not null"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

func fromDomain(b *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:             b.ID().Bytes(),
		SessionID:      b.SessionID().Bytes(),
		Quantity:       b.Quantity(),
		Duration:       int(b.Duration()),
		PickupDate:     b.PickupDate(),
		Price:          b.Price().Amount(),
		FormattedPrice: b.FormattedPrice(),
		CreatedAt:      b.CreatedAt().UTC(),
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sessionID, err := kernel.UUIDFromBytes(dto.SessionID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id,
		sessionID,
		dto.Quantity,
		catalog.Duration(dto.Duration),
		dto.PickupDate,
		price,
		dto.FormattedPrice,
		dto.CreatedAt,
	)
}
