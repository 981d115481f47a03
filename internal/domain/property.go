package domain

import "time"

// Status possíveis de um imóvel dentro do marketplace
const (
	PropertyStatusPending  = "pending"
	PropertyStatusApproved = "approved"
	PropertyStatusSold     = "sold"
)

// Property representa um imóvel anunciado no marketplace.
// Os campos opcionais na origem (price, agency_id) são normalizados na
// ingestão: ausente vira zero/vazio e a projeção do dashboard aplica o
// fallback de exibição.
type Property struct {
	ID         string    `json:"id"` // Código de referência curto (nanoid)
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	AgencyID   string    `json:"agency_id,omitempty"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsValidPropertyStatus valida o status recebido nas rotas de moderação
func IsValidPropertyStatus(status string) bool {
	switch status {
	case PropertyStatusPending, PropertyStatusApproved, PropertyStatusSold:
		return true
	}
	return false
}

type CreatePropertyRequest struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	AgencyID string  `json:"agency_id"`
}

type UpdatePropertyStatusRequest struct {
	Status string `json:"status"`
}
