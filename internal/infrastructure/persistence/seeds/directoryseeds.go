package seeds

import (
	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/infrastructure/persistence/models"
)

// SeedDirectory inserts the demo agents and customers used by local setups.
// Rows are matched by email, so running it twice adds nothing.
func SeedDirectory(db *gorm.DB) error {
	agents := []models.AgentModel{
		{Name: "Sarah Johnson", Email: "sarah.johnson@travelease.com", Status: "online"},
		{Name: "Michael Chen", Email: "michael.chen@travelease.com", Status: "online"},
		{Name: "Emily Rodriguez", Email: "emily.rodriguez@travelease.com", Status: "offline"},
		{Name: "David Kim", Email: "david.kim@travelease.com", Status: "busy"},
	}

	customers := []models.CustomerModel{
		{Name: "John Smith", Email: "john.smith@example.com", Phone: "+1-555-0101", MembershipLevel: "gold"},
		{Name: "Maria Garcia", Email: "maria.garcia@example.com", Phone: "+1-555-0102", MembershipLevel: "platinum"},
		{Name: "Robert Wilson", Email: "robert.wilson@example.com", Phone: "+1-555-0103", MembershipLevel: "silver"},
		{Name: "Lisa Anderson", Email: "lisa.anderson@example.com", Phone: "+1-555-0104", MembershipLevel: "standard"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, agent := range agents {
			if err := tx.Where(models.AgentModel{Email: agent.Email}).FirstOrCreate(&agent).Error; err != nil {
				return err
			}
		}
		for _, customer := range customers {
			if err := tx.Where(models.CustomerModel{Email: customer.Email}).FirstOrCreate(&customer).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
