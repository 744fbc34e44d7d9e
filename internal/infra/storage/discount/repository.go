package discount

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	"github.com/AM-Studio-19/am-booking/pkg/dbmetrics"
	"github.com/AM-Studio-19/am-booking/pkg/psqlbuilder"
)

// Repository репозиторий скидок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория скидок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает список скидок
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Discount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "amount", "active", "created_at", "updated_at").
		From("discounts").
		OrderBy("id ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	discounts := make([]*domain.Discount, 0)
	for rows.Next() {
		var d domain.Discount
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&d.ID, &d.Name, &d.Amount, &d.Active, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan discount: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time
		discounts = append(discounts, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return discounts, nil
}

// GetByID получает скидку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Discount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "amount", "active", "created_at", "updated_at").
		From("discounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.Discount
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&d.ID, &d.Name, &d.Amount, &d.Active, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan discount: %v", ErrScanRow, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

// Create создает новую скидку
func (r *Repository) Create(ctx context.Context, discount *domain.Discount) (*domain.Discount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("discounts").
		Columns("name", "amount", "active").
		Values(discount.Name, discount.Amount, discount.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&discount.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	discount.CreatedAt = createdAt.Time
	discount.UpdatedAt = updatedAt.Time

	return discount, nil
}

// Update обновляет скидку
func (r *Repository) Update(ctx context.Context, discount *domain.Discount) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("discounts").
		Set("name", discount.Name).
		Set("amount", discount.Amount).
		Set("active", discount.Active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": discount.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Update")
}

// Delete удаляет скидку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("discounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrDiscountNotFound
	}

	return nil
}
