package admin

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlasov/venue-booking-service/pkg/dbmetrics"
	"github.com/avlasov/venue-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий списка администраторов.
// Членство плоское: user_id либо есть в таблице admins, либо нет.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// IsAdmin проверяет, есть ли пользователь в списке администраторов
func (r *Repository) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("admins").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsAdmin - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: IsAdmin - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: IsAdmin - rows error: %v", ErrScanRow, err)
	}

	return found, nil
}

// ListUserIDs возвращает user_id всех администраторов.
// Используется для рассылки уведомлений о новых заявках.
func (r *Repository) ListUserIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id").
		From("admins").
		OrderBy("user_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUserIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUserIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	userIDs := make([]int64, 0)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: ListUserIDs - scan user_id: %v", ErrScanRow, err)
		}
		userIDs = append(userIDs, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUserIDs - rows error: %v", ErrScanRow, err)
	}

	return userIDs, nil
}
