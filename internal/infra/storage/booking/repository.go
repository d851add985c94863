package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"name",
	"phone",
	"email",
	"car_type",
	"service_type",
	"booking_date",
	"booking_time",
	"address",
	"status",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, dialect Dialect) *Repository {
	return &Repository{db: db, builder: dialect.Builder()}
}

// Create создает новое бронирование и заполняет его ID.
// Пустой статус заменяется на domain.DefaultBookingStatus.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.Status == "" {
		booking.Status = domain.DefaultBookingStatus
	}

	query, args, err := r.builder.Insert("bookings").
		Columns(
			"user_id",
			"name",
			"phone",
			"email",
			"car_type",
			"service_type",
			"booking_date",
			"booking_time",
			"address",
			"status",
		).
		Values(
			booking.UserID,
			booking.Name,
			booking.Phone,
			booking.Email,
			booking.CarType,
			booking.ServiceType,
			booking.Date,
			booking.Time,
			booking.Address,
			booking.Status,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&booking.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByUserID получает бронирования владельца, новые первыми (по убыванию id)
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	query, args, err := r.builder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// List получает все бронирования (административный дамп)
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := r.builder.Select(bookingColumns...).
		From("bookings").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatusByOwner обновляет статус бронирования, только если оно принадлежит userID.
// Чужое и несуществующее бронирование неразличимы: оба дают ErrBookingNotFound.
func (r *Repository) UpdateStatusByOwner(ctx context.Context, id, userID int64, status string) error {
	query, args, err := r.builder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatusByOwner - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusByOwner - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusByOwner - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteByOwner удаляет бронирование, только если оно принадлежит userID
func (r *Repository) DeleteByOwner(ctx context.Context, id, userID int64) error {
	query, args, err := r.builder.Delete("bookings").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByOwner - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByOwner - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByOwner - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var userID sql.NullInt64

		err := rows.Scan(
			&booking.ID,
			&userID,
			&booking.Name,
			&booking.Phone,
			&booking.Email,
			&booking.CarType,
			&booking.ServiceType,
			&booking.Date,
			&booking.Time,
			&booking.Address,
			&booking.Status,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if userID.Valid {
			id := userID.Int64
			booking.UserID = &id
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
