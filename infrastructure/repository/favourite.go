package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/estate-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
)

const favouritesTable = "favourites"

// FavouriteRepository é a fonte dos imóveis salvos por compradores
type FavouriteRepository interface {
	AddFavourite(favourite *domain.Favourite) (*domain.Favourite, error)
	RemoveFavourite(id int, userEmail string) error
	ListFavourites() ([]*domain.Favourite, error)
	ListFavouritesByUser(userEmail string) ([]*domain.Favourite, error)
}

type favouriteRepository struct {
	conn *postgres.Connection
}

func NewFavouriteRepository(conn *postgres.Connection) FavouriteRepository {
	return &favouriteRepository{
		conn: conn,
	}
}

func (r *favouriteRepository) AddFavourite(favourite *domain.Favourite) (*domain.Favourite, error) {
	queryBuilder := squirrel.
		Insert(favouritesTable).
		Columns("user_email", "property_id", "title", "price").
		Values(favourite.UserEmail, favourite.PropertyID, favourite.Title, favourite.Price).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	favouriteSQL, favouriteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(favouriteSQL, favouriteArgs...).Scan(&favourite.ID, &favourite.CreatedAt)
	if err != nil {
		return nil, err
	}

	return favourite, nil
}

func (r *favouriteRepository) RemoveFavourite(id int, userEmail string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(favouritesTable).
		Where(squirrel.Eq{"id": id, "user_email": userEmail}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *favouriteRepository) ListFavourites() ([]*domain.Favourite, error) {
	querySQL, queryArgs, err := selectFavourites().ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryFavourites(querySQL, queryArgs)
}

func (r *favouriteRepository) ListFavouritesByUser(userEmail string) ([]*domain.Favourite, error) {
	querySQL, queryArgs, err := selectFavourites().
		Where(squirrel.Eq{"user_email": userEmail}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryFavourites(querySQL, queryArgs)
}

func (r *favouriteRepository) queryFavourites(querySQL string, queryArgs []interface{}) ([]*domain.Favourite, error) {
	rows, err := r.conn.Query(querySQL, queryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favourites := make([]*domain.Favourite, 0)
	for rows.Next() {
		favourite, err := scanFavourite(rows)
		if err != nil {
			return nil, err
		}
		favourites = append(favourites, favourite)
	}

	return favourites, rows.Err()
}

func selectFavourites() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "user_email", "property_id", "title", "price", "created_at").
		From(favouritesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func scanFavourite(row rowScanner) (*domain.Favourite, error) {
	var (
		favourite domain.Favourite
		title     sql.NullString
		price     sql.NullFloat64
	)

	err := row.Scan(
		&favourite.ID,
		&favourite.UserEmail,
		&favourite.PropertyID,
		&title,
		&price,
		&favourite.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	favourite.Title = title.String
	favourite.Price = price.Float64

	return &favourite, nil
}
