package comment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlasov/venue-booking-service/internal/domain"
	"github.com/avlasov/venue-booking-service/pkg/dbmetrics"
	"github.com/avlasov/venue-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий комментариев к бронированиям.
// Комментарии неизменяемы; удаляются каскадно вместе с бронированием (FK ON DELETE CASCADE).
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория комментариев
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает комментарий к бронированию
func (r *Repository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("comments").
		Columns("booking_id", "comment").
		Values(c.BookingID, c.Text).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetByBookingID получает комментарии бронирования в порядке создания
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]domain.Comment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "comment").
		From("comments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.BookingID, &c.Text); err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return comments, nil
}

// GetByBookingIDs получает комментарии сразу для набора бронирований,
// сгруппированные по booking_id. Используется при выдаче списков.
func (r *Repository) GetByBookingIDs(ctx context.Context, bookingIDs []int64) (map[int64][]domain.Comment, error) {
	grouped := make(map[int64][]domain.Comment)
	if len(bookingIDs) == 0 {
		return grouped, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "comment").
		From("comments").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.BookingID, &c.Text); err != nil {
			return nil, fmt.Errorf("%w: GetByBookingIDs - scan row: %v", ErrScanRow, err)
		}
		grouped[c.BookingID] = append(grouped[c.BookingID], c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingIDs - rows error: %v", ErrScanRow, err)
	}

	return grouped, nil
}
