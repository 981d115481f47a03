package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/estate-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
)

const appointmentsTable = "appointments"

// AppointmentRepository é a fonte das visitas agendadas por compradores
type AppointmentRepository interface {
	CreateAppointment(appointment *domain.Appointment) (*domain.Appointment, error)
	ListAppointments() ([]*domain.Appointment, error)
	ListAppointmentsByBuyer(buyerEmail string) ([]*domain.Appointment, error)
}

type appointmentRepository struct {
	conn *postgres.Connection
}

func NewAppointmentRepository(conn *postgres.Connection) AppointmentRepository {
	return &appointmentRepository{
		conn: conn,
	}
}

func (r *appointmentRepository) CreateAppointment(appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment.Status == "" {
		appointment.Status = domain.AppointmentStatusScheduled
	}

	queryBuilder := squirrel.
		Insert(appointmentsTable).
		Columns("buyer_email", "property_id", "status", "scheduled_at").
		Values(appointment.BuyerEmail, appointment.PropertyID, appointment.Status, appointment.ScheduledAt).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	appointmentSQL, appointmentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(appointmentSQL, appointmentArgs...).Scan(&appointment.ID, &appointment.CreatedAt)
	if err != nil {
		return nil, err
	}

	return appointment, nil
}

func (r *appointmentRepository) ListAppointments() ([]*domain.Appointment, error) {
	querySQL, queryArgs, err := selectAppointments().ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryAppointments(querySQL, queryArgs)
}

func (r *appointmentRepository) ListAppointmentsByBuyer(buyerEmail string) ([]*domain.Appointment, error) {
	querySQL, queryArgs, err := selectAppointments().
		Where(squirrel.Eq{"buyer_email": buyerEmail}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryAppointments(querySQL, queryArgs)
}

func (r *appointmentRepository) queryAppointments(querySQL string, queryArgs []interface{}) ([]*domain.Appointment, error) {
	rows, err := r.conn.Query(querySQL, queryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}

	return appointments, rows.Err()
}

func selectAppointments() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "buyer_email", "property_id", "status", "scheduled_at", "created_at").
		From(appointmentsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment domain.Appointment
		status      sql.NullString
	)

	err := row.Scan(
		&appointment.ID,
		&appointment.BuyerEmail,
		&appointment.PropertyID,
		&status,
		&appointment.ScheduledAt,
		&appointment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.Status = status.String

	return &appointment, nil
}
