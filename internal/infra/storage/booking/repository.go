package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// Repository PostgreSQL-репозиторий бронирований.
// Бронирование хранится в двух таблицах: bookings (запись и контакт) и
// booking_services (снапшоты услуг с сохранением позиции в заказе).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе со снапшотами услуг.
// Если в контексте есть активная транзакция (через txmanager), использует её.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"contact_name",
			"contact_phone",
			"status",
			"created_at",
		).
		Values(
			b.ID,
			b.Appointment.Date,
			b.Appointment.Time,
			b.Appointment.DurationMinutes,
			b.Contact.Name,
			b.Contact.Phone,
			b.Status,
			b.CreatedAt,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if err := r.insertServices(ctx, executor, b.ID, b.Services); err != nil {
		return nil, err
	}

	return b.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := bookingSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	services, err := r.loadServices(ctx, executor, []string{b.ID})
	if err != nil {
		return nil, err
	}
	b.Services = services[b.ID]

	return b, nil
}

// List возвращает все бронирования в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, nil)
}

// ListByDate возвращает бронирования на указанный календарный день
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return r.list(ctx, &date)
}

func (r *Repository) list(ctx context.Context, date *time.Time) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := bookingSelect().OrderBy("created_at ASC, id ASC")

	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *date})
	}

	// Внутри транзакции выборка на конкретный день блокируется (FOR UPDATE):
	// между проверкой пересечений и записью бронирования не должно быть других писателей
	if txmanager.IsInTransaction(ctx) && date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	ids := make([]string, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
		ids = append(ids, b.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return bookings, nil
	}

	services, err := r.loadServices(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		b.Services = services[b.ID]
	}

	return bookings, nil
}

// Update полностью заменяет запись бронирования и снапшоты его услуг
func (r *Repository) Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("appointment_date", b.Appointment.Date).
		Set("start_time", b.Appointment.Time).
		Set("duration_minutes", b.Appointment.DurationMinutes).
		Set("contact_name", b.Contact.Name).
		Set("contact_phone", b.Contact.Phone).
		Set("status", b.Status).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrBookingNotFound
	}

	// Снапшоты услуг заменяются целиком, позиции перенумеровываются
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("booking_services").
		Where(squirrel.Eq{"booking_id": b.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build delete services query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Update - delete services: %v", ErrExecQuery, err)
	}

	if err := r.insertServices(ctx, executor, b.ID, b.Services); err != nil {
		return nil, err
	}

	return b.Clone(), nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
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

// Delete удаляет бронирование. Снапшоты услуг удаляются каскадно.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

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

// HasServiceReference проверяет, ссылается ли хоть одно бронирование на услугу
func (r *Repository) HasServiceReference(ctx context.Context, serviceID int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("booking_services").
		Where(squirrel.Eq{"service_id": serviceID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasServiceReference - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasServiceReference - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ReplaceServiceSnapshot заменяет снапшоты услуги во всех бронированиях
// на обновленные значения (по совпадению service_id, позиция сохраняется).
// Единственный сквозной побочный эффект каталога на бронирования.
func (r *Repository) ReplaceServiceSnapshot(ctx context.Context, svc domain.Service) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_services").
		Set("name", svc.Name).
		Set("price", svc.Price).
		Set("duration_minutes", svc.DurationMinutes).
		Where(squirrel.Eq{"service_id": svc.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceServiceSnapshot - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceServiceSnapshot - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Вспомогательные функции

func bookingSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"appointment_date",
		"start_time",
		"duration_minutes",
		"contact_name",
		"contact_phone",
		"status",
		"created_at",
	).From("bookings")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Appointment.Date,
		&b.Appointment.Time,
		&b.Appointment.DurationMinutes,
		&b.Contact.Name,
		&b.Contact.Phone,
		&b.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	return &b, nil
}

func (r *Repository) insertServices(ctx context.Context, executor DBExecutor, bookingID string, services []domain.Service) error {
	if len(services) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("booking_services").
		Columns(
			"booking_id",
			"position",
			"service_id",
			"name",
			"price",
			"duration_minutes",
		)

	for i, svc := range services {
		insertBuilder = insertBuilder.Values(bookingID, i, svc.ID, svc.Name, svc.Price, svc.DurationMinutes)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) loadServices(ctx context.Context, executor DBExecutor, bookingIDs []string) (map[string][]domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"booking_id",
		"service_id",
		"name",
		"price",
		"duration_minutes",
	).
		From("booking_services").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("booking_id ASC, position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Service)
	for rows.Next() {
		var bookingID string
		var svc domain.Service
		if err := rows.Scan(&bookingID, &svc.ID, &svc.Name, &svc.Price, &svc.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: loadServices - scan row: %v", ErrScanRow, err)
		}
		out[bookingID] = append(out[bookingID], svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadServices - rows error: %v", ErrScanRow, err)
	}

	return out, nil
}
