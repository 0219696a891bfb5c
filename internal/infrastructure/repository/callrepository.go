package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/domain/call"
	vo "github.com/travelease/callcenter/internal/domain/call/valueobjects"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/mappers"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/models"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/db"
	"github.com/travelease/callcenter/internal/shared/logger"
)

const callViewColumns = "calls.*, " +
	"customers.name AS customer_name, customers.phone AS customer_phone, " +
	"customers.email AS customer_email, customers.membership_level AS membership_level, " +
	"agents.name AS agent_name"

type CallRepository struct {
	db     *gorm.DB
	mapper mappers.CallMapper
	logger logger.Interface
}

func NewCallRepository(db *gorm.DB, logger logger.Interface) *CallRepository {
	return &CallRepository{
		db:     db,
		mapper: mappers.NewCallMapper(),
		logger: logger,
	}
}

func (r *CallRepository) Create(ctx context.Context, c *call.Call) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create call: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CallRepository) viewQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Model(&models.CallModel{}).
		Select(callViewColumns).
		Joins("LEFT JOIN customers ON customers.id = calls.customer_id").
		Joins("LEFT JOIN agents ON agents.id = calls.agent_id")
}

func (r *CallRepository) GetByID(ctx context.Context, id uint) (*call.View, error) {
	var rows []models.CallRow
	if err := r.viewQuery(ctx).Where("calls.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get call: %w", err)
	}
	if len(rows) == 0 {
		return nil, call.ErrCallNotFound
	}
	return r.mapper.RowToView(&rows[0])
}

// ListWaiting returns waiting calls in insertion order; queue ordering is
// applied by the caller.
func (r *CallRepository) ListWaiting(ctx context.Context) ([]*call.View, error) {
	var rows []models.CallRow
	if err := r.viewQuery(ctx).
		Where("calls.status = ?", vo.StatusWaiting.String()).
		Order("calls.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list waiting calls: %w", err)
	}

	views := make([]*call.View, 0, len(rows))
	for i := range rows {
		v, err := r.mapper.RowToView(&rows[i])
		if err != nil {
			r.logger.Warnw("skipping unreadable call row", "call_id", rows[i].ID, "error", err)
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

type agentStatsRow struct {
	TotalCalls    int64
	AvgDurationMs *float64
	ResolvedCalls int64
}

func (r *CallRepository) StatsForAgentSince(ctx context.Context, agentID uint, since time.Time) (call.AgentStats, error) {
	var row agentStatsRow
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CallModel{}).
		Select(`COUNT(*) AS total_calls,
			AVG(CASE WHEN start_time IS NOT NULL AND end_time IS NOT NULL THEN end_time - start_time END) AS avg_duration_ms,
			COALESCE(SUM(CASE WHEN resolution_status = ? THEN 1 ELSE 0 END), 0) AS resolved_calls`,
			vo.ResolutionResolved.String()).
		Where("agent_id = ? AND created_at > ?", agentID, biztime.ToMillis(since)).
		Scan(&row).Error; err != nil {
		return call.AgentStats{}, fmt.Errorf("failed to aggregate agent calls: %w", err)
	}

	stats := call.AgentStats{
		TotalCalls:    int(row.TotalCalls),
		ResolvedCalls: int(row.ResolvedCalls),
	}
	if row.AvgDurationMs != nil {
		minutes := *row.AvgDurationMs / float64(time.Minute/time.Millisecond)
		stats.AvgDurationMinutes = &minutes
	}
	return stats, nil
}

// AssignIfWaiting claims a waiting call in one conditional UPDATE. Of any
// number of concurrent attempts on the same call at most one matches the
// status predicate.
func (r *CallRepository) AssignIfWaiting(ctx context.Context, id, agentID uint, at time.Time) (*call.Call, error) {
	ms := biztime.ToMillis(at)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CallModel{}).
		Where("id = ? AND status = ?", id, vo.StatusWaiting.String()).
		Updates(map[string]any{
			"status":     vo.StatusActive.String(),
			"agent_id":   agentID,
			"start_time": ms,
			"updated_at": ms,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to assign call: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, call.ErrCallNotAssignable
	}
	return r.load(ctx, id)
}

func (r *CallRepository) UpdateStatus(ctx context.Context, id uint, status vo.CallStatus, at time.Time) (*call.Call, error) {
	ms := biztime.ToMillis(at)
	updates := map[string]any{
		"status":     status.String(),
		"updated_at": ms,
	}
	if status.IsCompleted() {
		updates["end_time"] = ms
	}
	return r.updateAndLoad(ctx, id, updates, "update call status")
}

func (r *CallRepository) Transfer(ctx context.Context, id, agentID uint, reason string, at time.Time) (*call.Call, error) {
	return r.updateAndLoad(ctx, id, map[string]any{
		"agent_id":        agentID,
		"transfer_reason": reason,
		"transfer_count":  gorm.Expr("transfer_count + ?", 1),
		"updated_at":      biztime.ToMillis(at),
	}, "transfer call")
}

func (r *CallRepository) Complete(ctx context.Context, id uint, resolution vo.Resolution, note string, at time.Time) (*call.Call, error) {
	ms := biztime.ToMillis(at)
	return r.updateAndLoad(ctx, id, map[string]any{
		"status":            vo.StatusCompleted.String(),
		"resolution_status": resolution.String(),
		"resolution_note":   note,
		"end_time":          ms,
		"updated_at":        ms,
	}, "complete call")
}

// updateAndLoad applies an unconditional update and re-reads the row, which
// also detects a missing call regardless of driver RowsAffected semantics.
func (r *CallRepository) updateAndLoad(ctx context.Context, id uint, updates map[string]any, op string) (*call.Call, error) {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CallModel{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return r.load(ctx, id)
}

func (r *CallRepository) load(ctx context.Context, id uint) (*call.Call, error) {
	var model models.CallModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, call.ErrCallNotFound
		}
		return nil, fmt.Errorf("failed to load call: %w", err)
	}
	return r.mapper.ToDomain(&model)
}
