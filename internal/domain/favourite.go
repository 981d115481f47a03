package domain

import "time"

// Favourite representa um imóvel salvo por um comprador.
// Title e Price são desnormalizados do imóvel no momento em que ele é salvo,
// para que o dashboard não dependa do catálogo para exibir a lista.
type Favourite struct {
	ID         int       `json:"id"`
	UserEmail  string    `json:"user_email"`
	PropertyID string    `json:"property_id"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

type AddFavouriteRequest struct {
	PropertyID string `json:"property_id"`
}
