package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/estate-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
	"github.com/vfg2006/estate-dashboard-api/pkg/utils"
)

const propertiesTable = "properties"

// PropertyRepository é a fonte do catálogo de imóveis: a coleção completa
// (admin) e o recorte por proprietário (seller) saem daqui.
type PropertyRepository interface {
	CreateProperty(property *domain.Property) (*domain.Property, error)
	GetPropertyByID(id string) (*domain.Property, error)
	ListProperties() ([]*domain.Property, error)
	ListPropertiesByOwner(ownerEmail string) ([]*domain.Property, error)
	UpdatePropertyStatus(id string, status string) error
}

type propertyRepository struct {
	conn *postgres.Connection
}

func NewPropertyRepository(conn *postgres.Connection) PropertyRepository {
	return &propertyRepository{
		conn: conn,
	}
}

func (r *propertyRepository) CreateProperty(property *domain.Property) (*domain.Property, error) {
	if property.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}
		property.ID = id
	}

	if property.Status == "" {
		property.Status = domain.PropertyStatusPending
	}

	queryBuilder := squirrel.
		Insert(propertiesTable).
		Columns("id", "title", "price", "status", "agency_id", "owner_email").
		Values(property.ID, property.Title, property.Price, property.Status, nullable(property.AgencyID), property.OwnerEmail).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	propertySQL, propertyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(propertySQL, propertyArgs...).Scan(&property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return property, nil
}

func (r *propertyRepository) GetPropertyByID(id string) (*domain.Property, error) {
	querySQL, queryArgs, err := selectProperties().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(querySQL, queryArgs...)

	property, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return property, nil
}

func (r *propertyRepository) ListProperties() ([]*domain.Property, error) {
	querySQL, queryArgs, err := selectProperties().ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryProperties(querySQL, queryArgs)
}

func (r *propertyRepository) ListPropertiesByOwner(ownerEmail string) ([]*domain.Property, error) {
	querySQL, queryArgs, err := selectProperties().
		Where(squirrel.Eq{"owner_email": ownerEmail}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryProperties(querySQL, queryArgs)
}

func (r *propertyRepository) UpdatePropertyStatus(id string, status string) error {
	updateSQL, updateArgs, err := squirrel.
		Update(propertiesTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(updateSQL, updateArgs...)
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

func (r *propertyRepository) queryProperties(querySQL string, queryArgs []interface{}) ([]*domain.Property, error) {
	rows, err := r.conn.Query(querySQL, queryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := make([]*domain.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}

	return properties, rows.Err()
}

// selectProperties monta o select base na ordem de inserção, que é a ordem
// que o dashboard preserva na projeção tabular
func selectProperties() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "title", "price", "status", "agency_id", "owner_email", "created_at", "updated_at").
		From(propertiesTable).
		OrderBy("created_at ASC, id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProperty normaliza campos opcionais na ingestão: price/title/agency_id
// nulos viram zero/vazio e os fallbacks de exibição ficam a cargo do agregador
func scanProperty(row rowScanner) (*domain.Property, error) {
	var (
		property domain.Property
		title    sql.NullString
		price    sql.NullFloat64
		status   sql.NullString
		agencyID sql.NullString
	)

	err := row.Scan(
		&property.ID,
		&title,
		&price,
		&status,
		&agencyID,
		&property.OwnerEmail,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	property.Title = title.String
	property.Price = price.Float64
	property.Status = status.String
	property.AgencyID = agencyID.String

	return &property, nil
}

// nullable converte string vazia em NULL para colunas opcionais
func nullable(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
