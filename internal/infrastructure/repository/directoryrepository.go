package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/domain/agent"
	"github.com/travelease/callcenter/internal/domain/customer"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/mappers"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/models"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/db"
)

type AgentRepository struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

func (r *AgentRepository) List(ctx context.Context) ([]*agent.Agent, error) {
	var rows []models.AgentModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	agents := make([]*agent.Agent, 0, len(rows))
	for i := range rows {
		agents = append(agents, mappers.AgentToDomain(&rows[i]))
	}
	return agents, nil
}

func (r *AgentRepository) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	var model models.AgentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, agent.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return mappers.AgentToDomain(&model), nil
}

func (r *AgentRepository) UpdateStatus(ctx context.Context, id uint, status agent.Status, at time.Time) (*agent.Agent, error) {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AgentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": biztime.ToMillis(at),
		}).Error; err != nil {
		return nil, fmt.Errorf("failed to update agent status: %w", err)
	}
	return r.GetByID(ctx, id)
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	var rows []models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return toCustomers(rows), nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return mappers.CustomerToDomain(&model), nil
}

// Search uses LOWER(...) LIKE rather than ILIKE so that it runs on every
// supported driver.
func (r *CustomerRepository) Search(ctx context.Context, query string, limit int) ([]*customer.Customer, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	cond := db.GetTxFromContext(ctx, r.db).
		Where("LOWER(name) LIKE ?", pattern).
		Or("LOWER(email) LIKE ?", pattern).
		Or("LOWER(phone) LIKE ?", pattern)
	if id, err := strconv.ParseUint(strings.TrimSpace(query), 10, 64); err == nil {
		cond = cond.Or("id = ?", id)
	}

	var rows []models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where(cond).
		Order("id ASC").
		Scopes(db.Limit(limit)).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return toCustomers(rows), nil
}

func toCustomers(rows []models.CustomerModel) []*customer.Customer {
	out := make([]*customer.Customer, 0, len(rows))
	for i := range rows {
		out = append(out, mappers.CustomerToDomain(&rows[i]))
	}
	return out
}
