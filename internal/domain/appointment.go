package domain

import "time"

// Status possíveis de um agendamento de visita
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment representa uma visita agendada por um comprador.
// O dashboard consome apenas a contagem e o status ("completed" conta
// como compra concretizada).
type Appointment struct {
	ID          int       `json:"id"`
	BuyerEmail  string    `json:"buyer_email"`
	PropertyID  string    `json:"property_id"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateAppointmentRequest struct {
	PropertyID  string `json:"property_id"`
	ScheduledAt string `json:"scheduled_at"` // Formato yyyy-mm-dd
}
