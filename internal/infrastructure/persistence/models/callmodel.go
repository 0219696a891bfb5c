package models

type CallModel struct {
	ID               uint    `gorm:"primaryKey"`
	CustomerID       uint    `gorm:"not null;index"`
	IssueType        string  `gorm:"size:100;not null"`
	Description      string  `gorm:"type:text"`
	Priority         string  `gorm:"size:20;not null;default:medium"`
	Status           string  `gorm:"size:20;not null;default:waiting;index"`
	AgentID          *uint   `gorm:"index"`
	StartTime        *int64  `gorm:"default:null"`
	EndTime          *int64  `gorm:"default:null"`
	TransferReason   string  `gorm:"type:text"`
	TransferCount    int     `gorm:"not null;default:0"`
	ResolutionStatus *string `gorm:"size:20"`
	ResolutionNote   string  `gorm:"type:text"`
	CreatedAt        int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64   `gorm:"autoUpdateTime:milli;not null"`

	// Declared for the foreign keys only; reads join explicitly in the repository.
	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
	Agent    *AgentModel    `gorm:"foreignKey:AgentID"`
}

func (CallModel) TableName() string {
	return "calls"
}

// CallRow is a call joined with its customer and agent.
type CallRow struct {
	CallModel
	CustomerName    *string
	CustomerPhone   *string
	CustomerEmail   *string
	MembershipLevel *string
	AgentName       *string
}
