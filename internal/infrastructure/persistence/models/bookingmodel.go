package models

import "gorm.io/datatypes"

type BookingModel struct {
	ID              uint           `gorm:"primaryKey"`
	CustomerID      uint           `gorm:"not null;index"`
	ReferenceNumber string         `gorm:"uniqueIndex;size:64;not null"`
	BookingType     string         `gorm:"size:50;not null"`
	Status          string         `gorm:"size:20;not null;index"`
	Price           float64        `gorm:"not null;check:chk_bookings_price,price > 0"`
	Currency        string         `gorm:"size:3;not null;default:USD"`
	StartDate       string         `gorm:"size:10;not null"`
	EndDate         *string        `gorm:"size:10"`
	Details         datatypes.JSON `gorm:"not null"`
	CreatedAt       int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt       int64          `gorm:"autoUpdateTime:milli;not null"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
}

func (BookingModel) TableName() string {
	return "bookings"
}

type BookingModificationModel struct {
	ID               uint   `gorm:"primaryKey"`
	BookingID        uint   `gorm:"not null;index"`
	RequestedChanges string `gorm:"type:text;not null"`
	Reason           string `gorm:"type:text"`
	Status           string `gorm:"size:20;not null;default:pending"`
	AgentID          *uint  `gorm:"index"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null;index"`

	Booking *BookingModel `gorm:"foreignKey:BookingID"`
}

func (BookingModificationModel) TableName() string {
	return "booking_modifications"
}

type BookingModificationRow struct {
	BookingModificationModel
	AgentName *string
}
