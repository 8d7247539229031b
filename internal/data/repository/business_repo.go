package repository

import (
	"context"
	"fmt"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Business, error)
	List(ctx context.Context, category string, limit, offset int) ([]*entity.Business, error)
	Count(ctx context.Context, category string) (int64, error)
	Update(ctx context.Context, business *entity.Business) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type businessRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBusinessRepository(db database.PgxIface, log *zap.Logger) BusinessRepository {
	return &businessRepository{
		db:  db,
		log: log.With(zap.String("repository", "business")),
	}
}

const businessColumns = `id, owner_id, slug, name, category, description, address, city, country_code, contact_email, contact_phone, base_price, discounted_price, currency, min_booking_days, max_capacity, is_available, is_bookable, created_at, updated_at, deleted_at`

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var business entity.Business
	err := row.Scan(
		&business.ID,
		&business.OwnerID,
		&business.Slug,
		&business.Name,
		&business.Category,
		&business.Description,
		&business.Address,
		&business.City,
		&business.CountryCode,
		&business.ContactEmail,
		&business.ContactPhone,
		&business.BasePrice,
		&business.DiscountedPrice,
		&business.Currency,
		&business.MinBookingDays,
		&business.MaxCapacity,
		&business.IsAvailable,
		&business.IsBookable,
		&business.CreatedAt,
		&business.UpdatedAt,
		&business.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	query := `
		INSERT INTO businesses (id, owner_id, slug, name, category, description, address, city, country_code, contact_email, contact_phone, base_price, discounted_price, currency, min_booking_days, max_capacity, is_available, is_bookable, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.db.Exec(ctx, query,
		business.ID,
		business.OwnerID,
		business.Slug,
		business.Name,
		business.Category,
		business.Description,
		business.Address,
		business.City,
		business.CountryCode,
		business.ContactEmail,
		business.ContactPhone,
		business.BasePrice,
		business.DiscountedPrice,
		business.Currency,
		business.MinBookingDays,
		business.MaxCapacity,
		business.IsAvailable,
		business.IsBookable,
		business.CreatedAt,
		business.UpdatedAt,
	)

	if err != nil {
		if wrapped := wrapUniqueViolation(err); wrapped == ErrDuplicate {
			return ErrDuplicate
		}
		r.log.Error("Failed to create business",
			zap.Error(err),
			zap.String("slug", business.Slug),
		)
		return fmt.Errorf("create business %s: %w", business.Slug, err)
	}

	return nil
}

func (r *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE id = $1 AND deleted_at IS NULL`, businessColumns)

	business, err := scanBusiness(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find business by ID",
			zap.Error(err),
			zap.String("business_id", id.String()),
		)
		return nil, fmt.Errorf("find business by ID %s: %w", id.String(), err)
	}

	return business, nil
}

func (r *businessRepository) FindBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE slug = $1 AND deleted_at IS NULL`, businessColumns)

	business, err := scanBusiness(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		r.log.Error("Failed to find business by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find business by slug %s: %w", slug, err)
	}

	return business, nil
}

func (r *businessRepository) List(ctx context.Context, category string, limit, offset int) ([]*entity.Business, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM businesses
		WHERE deleted_at IS NULL AND ($1 = '' OR category = $1)
		ORDER BY name
		LIMIT $2 OFFSET $3
	`, businessColumns)

	rows, err := r.db.Query(ctx, query, category, limit, offset)
	if err != nil {
		r.log.Error("Failed to list businesses",
			zap.Error(err),
			zap.String("category", category),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	var businesses []*entity.Business
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			r.log.Error("Failed to scan business row", zap.Error(err))
			return nil, fmt.Errorf("scan business row: %w", err)
		}
		businesses = append(businesses, business)
	}

	return businesses, nil
}

func (r *businessRepository) Count(ctx context.Context, category string) (int64, error) {
	query := `SELECT COUNT(*) FROM businesses WHERE deleted_at IS NULL AND ($1 = '' OR category = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, category).Scan(&count); err != nil {
		r.log.Error("Failed to count businesses", zap.Error(err), zap.String("category", category))
		return 0, fmt.Errorf("count businesses: %w", err)
	}

	return count, nil
}

func (r *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	query := `
		UPDATE businesses
		SET slug = $2, name = $3, category = $4, description = $5, address = $6, city = $7,
		    country_code = $8, contact_email = $9, contact_phone = $10, base_price = $11,
		    discounted_price = $12, currency = $13, min_booking_days = $14, max_capacity = $15,
		    is_available = $16, is_bookable = $17, updated_at = $18
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		business.ID,
		business.Slug,
		business.Name,
		business.Category,
		business.Description,
		business.Address,
		business.City,
		business.CountryCode,
		business.ContactEmail,
		business.ContactPhone,
		business.BasePrice,
		business.DiscountedPrice,
		business.Currency,
		business.MinBookingDays,
		business.MaxCapacity,
		business.IsAvailable,
		business.IsBookable,
		business.UpdatedAt,
	)

	if err != nil {
		if wrapped := wrapUniqueViolation(err); wrapped == ErrDuplicate {
			return ErrDuplicate
		}
		r.log.Error("Failed to update business",
			zap.Error(err),
			zap.String("business_id", business.ID.String()),
		)
		return fmt.Errorf("update business %s: %w", business.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("business %s not found", business.ID.String())
	}

	return nil
}

func (r *businessRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM businesses WHERE slug = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		r.log.Error("Failed to check business slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return false, fmt.Errorf("check business slug %s: %w", slug, err)
	}

	return exists, nil
}
