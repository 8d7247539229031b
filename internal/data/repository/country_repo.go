package repository

import (
	"context"
	"fmt"

	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
	"github.com/AliHsynvv/airen-media-sub002/pkg/database"
	"github.com/AliHsynvv/airen-media-sub002/pkg/locale"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/google/uuid"
)

type CountryRepository interface {
	Create(ctx context.Context, country *entity.Country) error
	FindByCode(ctx context.Context, code string) (*entity.Country, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Country, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Country, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, country *entity.Country) error
	UpdateTranslations(ctx context.Context, id uuid.UUID, translations locale.Translations) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type countryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCountryRepository(db database.PgxIface, log *zap.Logger) CountryRepository {
	return &countryRepository{
		db:  db,
		log: log.With(zap.String("repository", "country")),
	}
}

const countryColumns = `id, code, slug, name, default_language, description, capital, currency, best_season, flag_url, translations, created_at, updated_at, deleted_at`

func scanCountry(row pgx.Row) (*entity.Country, error) {
	var country entity.Country
	var rawTranslations []byte
	err := row.Scan(
		&country.ID,
		&country.Code,
		&country.Slug,
		&country.Name,
		&country.DefaultLanguage,
		&country.Description,
		&country.Capital,
		&country.Currency,
		&country.BestSeason,
		&country.FlagURL,
		&rawTranslations,
		&country.CreatedAt,
		&country.UpdatedAt,
		&country.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := scanTranslations(rawTranslations, &country.Translations); err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) Create(ctx context.Context, country *entity.Country) error {
	translations, err := marshalTranslations(country.Translations)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO countries (id, code, slug, name, default_language, description, capital, currency, best_season, flag_url, translations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.db.Exec(ctx, query,
		country.ID,
		country.Code,
		country.Slug,
		country.Name,
		country.DefaultLanguage,
		country.Description,
		country.Capital,
		country.Currency,
		country.BestSeason,
		country.FlagURL,
		translations,
		country.CreatedAt,
		country.UpdatedAt,
	)

	if err != nil {
		if wrapped := wrapUniqueViolation(err); wrapped == ErrDuplicate {
			return ErrDuplicate
		}
		r.log.Error("Failed to create country",
			zap.Error(err),
			zap.String("code", country.Code),
		)
		return fmt.Errorf("create country %s: %w", country.Code, err)
	}

	return nil
}

func (r *countryRepository) FindByCode(ctx context.Context, code string) (*entity.Country, error) {
	query := fmt.Sprintf(`SELECT %s FROM countries WHERE code = $1 AND deleted_at IS NULL`, countryColumns)

	country, err := scanCountry(r.db.QueryRow(ctx, query, code))
	if err != nil {
		r.log.Error("Failed to find country by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find country by code %s: %w", code, err)
	}

	return country, nil
}

func (r *countryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Country, error) {
	query := fmt.Sprintf(`SELECT %s FROM countries WHERE slug = $1 AND deleted_at IS NULL`, countryColumns)

	country, err := scanCountry(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		r.log.Error("Failed to find country by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find country by slug %s: %w", slug, err)
	}

	return country, nil
}

func (r *countryRepository) List(ctx context.Context, limit, offset int) ([]*entity.Country, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM countries
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`, countryColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list countries",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var countries []*entity.Country
	for rows.Next() {
		country, err := scanCountry(rows)
		if err != nil {
			r.log.Error("Failed to scan country row", zap.Error(err))
			return nil, fmt.Errorf("scan country row: %w", err)
		}
		countries = append(countries, country)
	}

	return countries, nil
}

func (r *countryRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM countries WHERE deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count countries", zap.Error(err))
		return 0, fmt.Errorf("count countries: %w", err)
	}

	return count, nil
}

func (r *countryRepository) Update(ctx context.Context, country *entity.Country) error {
	translations, err := marshalTranslations(country.Translations)
	if err != nil {
		return err
	}

	query := `
		UPDATE countries
		SET slug = $2, name = $3, default_language = $4, description = $5, capital = $6,
		    currency = $7, best_season = $8, flag_url = $9, translations = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		country.ID,
		country.Slug,
		country.Name,
		country.DefaultLanguage,
		country.Description,
		country.Capital,
		country.Currency,
		country.BestSeason,
		country.FlagURL,
		translations,
		country.UpdatedAt,
	)

	if err != nil {
		if wrapped := wrapUniqueViolation(err); wrapped == ErrDuplicate {
			return ErrDuplicate
		}
		r.log.Error("Failed to update country",
			zap.Error(err),
			zap.String("country_id", country.ID.String()),
		)
		return fmt.Errorf("update country %s: %w", country.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("country %s not found", country.ID.String())
	}

	return nil
}

func (r *countryRepository) UpdateTranslations(ctx context.Context, id uuid.UUID, translations locale.Translations) error {
	raw, err := marshalTranslations(translations)
	if err != nil {
		return err
	}

	query := `UPDATE countries SET translations = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, raw)
	if err != nil {
		r.log.Error("Failed to update country translations",
			zap.Error(err),
			zap.String("country_id", id.String()),
		)
		return fmt.Errorf("update country %s translations: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("country %s not found", id.String())
	}

	return nil
}

func (r *countryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM countries WHERE slug = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		r.log.Error("Failed to check country slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return false, fmt.Errorf("check country slug %s: %w", slug, err)
	}

	return exists, nil
}
