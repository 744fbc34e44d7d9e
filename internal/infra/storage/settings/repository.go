package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	"github.com/AM-Studio-19/am-booking/pkg/dbmetrics"
	"github.com/AM-Studio-19/am-booking/pkg/psqlbuilder"
	"github.com/AM-Studio-19/am-booking/pkg/types"
)

// Repository репозиторий настроек локаций
// Списки дат и слотов хранятся в JSONB - структура документа полностью
// определяется админкой, реляционная схема здесь не нужна
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLocation получает настройки локации
func (r *Repository) GetByLocation(ctx context.Context, locationID string) (*domain.LocationSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"location_id",
		"allowed_dates",
		"time_slots",
		"special_rules",
		"created_at",
		"updated_at",
	).
		From("location_settings").
		Where(squirrel.Eq{"location_id": locationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.LocationSettings
	var allowedDates, timeSlots, specialRules []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.LocationID,
		&allowedDates,
		&timeSlots,
		&specialRules,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - scan settings: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(allowedDates, &s.AllowedDates); err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - allowed_dates: %v", ErrDecodeJSON, err)
	}
	if err := json.Unmarshal(timeSlots, &s.TimeSlots); err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - time_slots: %v", ErrDecodeJSON, err)
	}
	if err := json.Unmarshal(specialRules, &s.SpecialRules); err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - special_rules: %v", ErrDecodeJSON, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert создает или полностью заменяет настройки локации
func (r *Repository) Upsert(ctx context.Context, settings *domain.LocationSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	allowedDates, timeSlots, specialRules, err := encodeFields(settings)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert("location_settings").
		Columns("location_id", "allowed_dates", "time_slots", "special_rules").
		Values(settings.LocationID, allowedDates, timeSlots, specialRules).
		Suffix(`ON CONFLICT (location_id) DO UPDATE SET
			allowed_dates = EXCLUDED.allowed_dates,
			time_slots = EXCLUDED.time_slots,
			special_rules = EXCLUDED.special_rules,
			updated_at = now()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

func encodeFields(settings *domain.LocationSettings) ([]byte, []byte, []byte, error) {
	if settings.AllowedDates == nil {
		settings.AllowedDates = []string{}
	}
	if settings.TimeSlots == nil {
		settings.TimeSlots = []types.TimeString{}
	}
	if settings.SpecialRules == nil {
		settings.SpecialRules = map[string][]types.TimeString{}
	}

	allowedDates, err := json.Marshal(settings.AllowedDates)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: allowed_dates: %v", ErrEncodeJSON, err)
	}
	timeSlots, err := json.Marshal(settings.TimeSlots)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: time_slots: %v", ErrEncodeJSON, err)
	}
	specialRules, err := json.Marshal(settings.SpecialRules)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: special_rules: %v", ErrEncodeJSON, err)
	}

	return allowedDates, timeSlots, specialRules, nil
}
