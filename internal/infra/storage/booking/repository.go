package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avlasov/venue-booking-service/internal/domain"
	"github.com/avlasov/venue-booking-service/pkg/dbmetrics"
	"github.com/avlasov/venue-booking-service/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"user_id",
	"start_date",
	"end_date",
	"people_count",
	"people_count_overall",
	"theme",
	"name",
	"description",
	"target_audience",
	"registration",
	"logistics",
	"program_type",
	"place",
	"participants_accommodation",
	"experts_count",
	"curator_name",
	"curator_position",
	"curator_contact",
	"other_info",
	"status",
	"created_at",
	"updated_at",
}

// sortableColumns колонки, по которым разрешена сортировка списка
var sortableColumns = map[string]struct{}{
	"id":           {},
	"start_date":   {},
	"end_date":     {},
	"people_count": {},
	"status":       {},
	"created_at":   {},
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, запрос выполняется внутри неё.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"start_date",
			"end_date",
			"people_count",
			"people_count_overall",
			"theme",
			"name",
			"description",
			"target_audience",
			"registration",
			"logistics",
			"program_type",
			"place",
			"participants_accommodation",
			"experts_count",
			"curator_name",
			"curator_position",
			"curator_contact",
			"other_info",
			"status",
		).
		Values(
			b.UserID,
			b.StartDate,
			b.EndDate,
			b.PeopleCount,
			b.PeopleCountOverall,
			b.Theme,
			b.Name,
			b.Description,
			b.TargetAudience,
			b.Registration,
			b.Logistics,
			b.ProgramType,
			b.Place,
			b.ParticipantsAccommodation,
			b.ExpertsCount,
			b.CuratorName,
			b.CuratorPosition,
			b.CuratorContact,
			b.OtherInfo,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// List получает список бронирований с сортировкой.
// Если в фильтре указан UserID, возвращаются только бронирования этого пользователя.
func (r *Repository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}

	// Сортировка только по известным колонкам
	sortBy := filter.SortBy
	if _, ok := sortableColumns[sortBy]; !ok {
		sortBy = "id"
	}
	order := "ASC"
	if filter.SortOrder == "desc" {
		order = "DESC"
	}
	selectBuilder = selectBuilder.OrderBy(sortBy + " " + order)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetApprovedOverlapping получает подтвержденные бронирования, пересекающиеся
// с диапазоном [start, end] (включительно, день к дню):
// existing.start_date <= end AND existing.end_date >= start.
// Pending и rejected бронирования площадку не занимают и сюда не попадают.
//
// Внутри транзакции добавляется FOR UPDATE: конкурентные проверки вместимости
// не должны одновременно пройти по одному и тому же состоянию.
func (r *Repository) GetApprovedOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetContainedInWindow получает бронирования любых статусов, целиком лежащие
// внутри [start, end], в порядке start_date, end_date. Используется экспортом расписания.
func (r *Repository) GetContainedInWindow(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"start_date": start}).
		Where(squirrel.LtOrEq{"end_date": end}).
		OrderBy("start_date ASC", "end_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetContainedInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetContainedInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Update перезаписывает изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_date", b.StartDate).
		Set("end_date", b.EndDate).
		Set("people_count", b.PeopleCount).
		Set("people_count_overall", b.PeopleCountOverall).
		Set("theme", b.Theme).
		Set("name", b.Name).
		Set("description", b.Description).
		Set("target_audience", b.TargetAudience).
		Set("registration", b.Registration).
		Set("logistics", b.Logistics).
		Set("program_type", b.ProgramType).
		Set("place", b.Place).
		Set("participants_accommodation", b.ParticipantsAccommodation).
		Set("experts_count", b.ExpertsCount).
		Set("curator_name", b.CuratorName).
		Set("curator_position", b.CuratorPosition).
		Set("curator_contact", b.CuratorContact).
		Set("other_info", b.OtherInfo).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatusFrom обновляет статус бронирования, только если текущий статус
// входит в from. Перевод, проигравший гонку другому переводу, затрагивает
// ноль строк и возвращает ErrBookingNotFound.
func (r *Repository) UpdateStatusFrom(ctx context.Context, id int64, status domain.BookingStatus, from ...domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование. Комментарии удаляются каскадно на уровне схемы.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.StartDate,
		&b.EndDate,
		&b.PeopleCount,
		&b.PeopleCountOverall,
		&b.Theme,
		&b.Name,
		&b.Description,
		&b.TargetAudience,
		&b.Registration,
		&b.Logistics,
		&b.ProgramType,
		&b.Place,
		&b.ParticipantsAccommodation,
		&b.ExpertsCount,
		&b.CuratorName,
		&b.CuratorPosition,
		&b.CuratorContact,
		&b.OtherInfo,
		&b.Status,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
