package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/types"
)

const table = "bookings"

var bookingColumns = []string{
	"id",
	"confirmation_code",
	"status",
	"location_id",
	"appointment_date",
	"appointment_time",
	"customer_name",
	"customer_email",
	"customer_phone",
	"vehicle",
	"quote_id",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование.
// Если в контексте передана активная транзакция, использует её: так проверка слота
// и вставка выполняются атомарно.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsertQuery(booking)
	if err != nil {
		return err
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByConfirmationCode получает бронирование по коду подтверждения.
// Заполняется только Location.ID, остальные поля точки подставляет сервис.
func (r *Repository) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(table).
		Where(squirrel.Eq{"confirmation_code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmationCode - build select query: %v", ErrBuildQuery, err)
	}

	var (
		booking   domain.Booking
		date      time.Time
		vehicle   []byte
		quoteID   sql.NullString
		createdAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ConfirmationCode,
		&booking.Status,
		&booking.Location.ID,
		&date,
		&booking.Appointment.Time,
		&booking.Customer.Name,
		&booking.Customer.Email,
		&booking.Customer.Phone,
		&vehicle,
		&quoteID,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmationCode - scan booking: %v", ErrScanRow, err)
	}

	booking.Appointment.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	booking.Vehicle = decodeVehicle(vehicle)
	if quoteID.Valid {
		booking.QuoteID = &quoteID.String
	}
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// GetReservedTimes возвращает время всех неотмененных бронирований точки на дату
func (r *Repository) GetReservedTimes(ctx context.Context, locationID string, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildReservedTimesQuery(locationID, date)
	if err != nil {
		return nil, err
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedTimes - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var times []types.TimeString
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetReservedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservedTimes - iterate rows: %w", ErrExecQuery, err)
	}

	return times, nil
}

func buildInsertQuery(booking *domain.Booking) (string, []interface{}, error) {
	vehicle := booking.Vehicle
	if vehicle == nil {
		vehicle = map[string]interface{}{}
	}
	vehicleJSON, err := json.Marshal(vehicle)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrEncodeVehicle, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(bookingColumns...).
		Values(
			booking.ID,
			booking.ConfirmationCode,
			booking.Status,
			booking.Location.ID,
			booking.Appointment.DateString(),
			booking.Appointment.Time,
			booking.Customer.Name,
			booking.Customer.Email,
			booking.Customer.Phone,
			string(vehicleJSON),
			booking.QuoteID,
			booking.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

func buildReservedTimesQuery(locationID string, date time.Time) (string, []interface{}, error) {
	query, args, err := psqlbuilder.Select("appointment_time").
		From(table).
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.Eq{"appointment_date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("appointment_time").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: GetReservedTimes - build select query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

func decodeVehicle(raw []byte) map[string]interface{} {
	vehicle := map[string]interface{}{}
	if len(raw) == 0 {
		return vehicle
	}
	if err := json.Unmarshal(raw, &vehicle); err != nil || vehicle == nil {
		return map[string]interface{}{}
	}
	return vehicle
}
