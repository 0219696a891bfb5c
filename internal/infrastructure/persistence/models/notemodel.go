package models

type NoteModel struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID *uint  `gorm:"index;check:chk_notes_anchor,customer_id IS NOT NULL OR booking_id IS NOT NULL"`
	BookingID  *uint  `gorm:"index"`
	CallID     *uint  `gorm:"index"`
	AgentID    *uint  `gorm:"index"`
	Content    string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (NoteModel) TableName() string {
	return "notes"
}

type NoteRow struct {
	NoteModel
	AgentName *string
}
