package models

type CustomerModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:100;not null;index"`
	Email           string `gorm:"size:255;index"`
	Phone           string `gorm:"size:50;index"`
	MembershipLevel string `gorm:"size:30"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
