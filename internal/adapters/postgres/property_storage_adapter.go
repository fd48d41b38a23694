package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS properties (
	id          UUID PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	location    TEXT NOT NULL,
	bedrooms    INTEGER NOT NULL CHECK (bedrooms >= 0),
	bathrooms   DOUBLE PRECISION NOT NULL CHECK (bathrooms >= 0),
	area        DOUBLE PRECISION NOT NULL CHECK (area >= 0),
	type        TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'available',
	images      TEXT[] NOT NULL DEFAULT '{}',
	amenities   TEXT[] NOT NULL DEFAULT '{}',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_properties_created_at ON properties (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_properties_type_status ON properties (type, status);
`

// PostgresPropertyStorageAdapter - реализация хранилища объявлений на PostgreSQL
type PostgresPropertyStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPostgresPropertyStorageAdapter(pool *pgxpool.Pool) (*PostgresPropertyStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresPropertyStorageAdapter{pool: pool}, nil
}

// EnsureSchema создает таблицу и индексы, если их нет
func (a *PostgresPropertyStorageAdapter) EnsureSchema(ctx context.Context) error {
	if _, err := a.pool.Exec(ctx, createSchemaSQL); err != nil {
		return domain.NewStoreError("ensure schema", err)
	}
	return nil
}

func (a *PostgresPropertyStorageAdapter) List(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyStorageAdapter",
		"method":    "List",
	})

	query, args := buildListQuery(filters)
	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, domain.NewStoreError("list", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, domain.NewStoreError("list", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during properties iteration", err, nil)
		return nil, domain.NewStoreError("list", err)
	}

	repoLogger.Debug("Properties listed", port.Fields{"count": len(properties)})
	return properties, nil
}

func (a *PostgresPropertyStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	query := "SELECT " + selectColumns + " FROM properties WHERE id = $1"
	p, err := scanProperty(a.pool.QueryRow(ctx, query, parsed.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPropertyNotFound
	}
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to fetch property", err, port.Fields{
			"component":   "PostgresPropertyStorageAdapter",
			"property_id": id,
		})
		return nil, domain.NewStoreError("get", err)
	}
	return &p, nil
}

func (a *PostgresPropertyStorageAdapter) Create(ctx context.Context, property domain.Property) (*domain.Property, error) {
	property.Normalize()
	query := `
		INSERT INTO properties (id, title, description, price, location, bedrooms, bathrooms, area,
			type, status, images, amenities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
		RETURNING ` + selectColumns

	p, err := scanProperty(a.pool.QueryRow(ctx, query,
		uuid.NewString(),
		property.Title,
		property.Description,
		property.Price,
		property.Location,
		property.Bedrooms,
		property.Bathrooms,
		property.Area,
		string(property.Type),
		string(property.Status),
		property.Images,
		property.Amenities,
	))
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to insert property", err, port.Fields{
			"component": "PostgresPropertyStorageAdapter",
		})
		return nil, domain.NewStoreError("create", err)
	}
	return &p, nil
}

func (a *PostgresPropertyStorageAdapter) Replace(ctx context.Context, property domain.Property) (*domain.Property, error) {
	parsed, err := uuid.Parse(property.ID)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}
	property.Normalize()

	query := `
		UPDATE properties SET
			title = $2, description = $3, price = $4, location = $5, bedrooms = $6,
			bathrooms = $7, area = $8, type = $9, status = $10, images = $11,
			amenities = $12, updated_at = now()
		WHERE id = $1
		RETURNING ` + selectColumns

	p, err := scanProperty(a.pool.QueryRow(ctx, query,
		parsed.String(),
		property.Title,
		property.Description,
		property.Price,
		property.Location,
		property.Bedrooms,
		property.Bathrooms,
		property.Area,
		string(property.Type),
		string(property.Status),
		property.Images,
		property.Amenities,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPropertyNotFound
	}
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to update property", err, port.Fields{
			"component":   "PostgresPropertyStorageAdapter",
			"property_id": property.ID,
		})
		return nil, domain.NewStoreError("replace", err)
	}
	return &p, nil
}

func (a *PostgresPropertyStorageAdapter) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	cmdTag, err := a.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", parsed.String())
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to delete property", err, port.Fields{
			"component":   "PostgresPropertyStorageAdapter",
			"property_id": id,
		})
		return domain.NewStoreError("delete", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (a *PostgresPropertyStorageAdapter) Ping(ctx context.Context) error {
	if err := a.pool.Ping(ctx); err != nil {
		return domain.NewStoreError("ping", err)
	}
	return nil
}

func (a *PostgresPropertyStorageAdapter) Close(ctx context.Context) error {
	a.pool.Close()
	return nil
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var (
		p              domain.Property
		propertyType   string
		propertyStatus string
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.Location,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Area,
		&propertyType,
		&propertyStatus,
		&p.Images,
		&p.Amenities,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}
	p.Type = domain.PropertyType(propertyType)
	p.Status = domain.PropertyStatus(propertyStatus)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	p.Normalize()
	return p, nil
}
