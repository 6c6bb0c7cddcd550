package postgres

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/storage"
)

// CategoryService implements domain.CategoryService on Postgres.
type CategoryService struct {
	db      *DB
	storage storage.Storage
	logger  *slog.Logger
}

var _ domain.CategoryService = (*CategoryService)(nil)

func NewCategoryService(db *DB, store storage.Storage, logger *slog.Logger) *CategoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryService{db: db, storage: store, logger: logger}
}

const categoryColumns = `id, category_id, name, description, status, image_path, created_at, updated_at`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(
		&c.ID, &c.CategoryID, &c.Name, &c.Description,
		&c.Status, &c.ImagePath, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories, newest first.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	const op = "category.list"

	rows, err := s.db.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list categories")
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to scan category")
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, op, "failed to read categories")
	}

	return categories, nil
}

// Get looks a category up by business id first, then by surrogate key.
func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	const op = "category.get"

	c, err := s.getByIdentifier(ctx, s.db.pool, id)
	if err == pgx.ErrNoRows {
		return nil, domain.NotFound(op, "category", id)
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to get category")
	}
	return c, nil
}

func (s *CategoryService) getByIdentifier(ctx context.Context, q queryer, id string) (*domain.Category, error) {
	if domain.IsBusinessID(id, domain.CategoryIDPrefix) {
		return scanCategory(q.QueryRow(ctx,
			`SELECT `+categoryColumns+` FROM categories WHERE category_id = $1`, id))
	}

	rowID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, pgx.ErrNoRows
	}
	return scanCategory(q.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, rowID))
}

// NextID previews the next category business id. The value is advisory; the
// authoritative id is assigned inside Create.
func (s *CategoryService) NextID(ctx context.Context) (string, error) {
	const op = "category.next_id"

	max, err := maxIDSuffix(ctx, s.db.pool, "categories", "category_id")
	if err != nil {
		return "", domain.Internal(err, op, "failed to generate category id")
	}
	return domain.NextID(domain.CategoryIDPrefix, max), nil
}

// Create validates, stores the optional image, then inserts with a bounded
// retry on business id collision.
func (s *CategoryService) Create(ctx context.Context, params domain.CreateCategoryParams) (*domain.Category, error) {
	const op = "category.create"

	if err := validateCategoryParams(op, params.Name, params.Status); err != nil {
		return nil, err
	}

	var imagePath *string
	if params.Image != nil {
		key := storage.Key("categories", params.Image.Filename)
		if _, err := s.storage.Put(ctx, key, params.Image.Content, params.Image.ContentType); err != nil {
			return nil, domain.Internal(err, op, "failed to store category image")
		}
		imagePath = &key
	}

	for attempt := 0; attempt < idRetryAttempts; attempt++ {
		max, err := maxIDSuffix(ctx, s.db.pool, "categories", "category_id")
		if err != nil {
			s.cleanupFile(ctx, imagePath)
			return nil, domain.Internal(err, op, "failed to generate category id")
		}
		categoryID := domain.NextID(domain.CategoryIDPrefix, max)

		c, err := scanCategory(s.db.pool.QueryRow(ctx, `
			INSERT INTO categories (category_id, name, description, status, image_path)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+categoryColumns,
			categoryID, params.Name, params.Description, params.Status, imagePath,
		))
		if isUniqueViolation(err) {
			s.logger.Warn("category id collision, retrying",
				"category_id", categoryID, "attempt", attempt+1)
			continue
		}
		if err != nil {
			s.cleanupFile(ctx, imagePath)
			return nil, domain.Internal(err, op, "failed to create category")
		}

		s.logger.Info("category created", "category_id", c.CategoryID, "name", c.Name)
		return c, nil
	}

	s.cleanupFile(ctx, imagePath)
	return nil, domain.Conflict(op, "could not allocate a category id, please retry")
}

// Update replaces the mutable fields. A non-nil image replaces the stored
// asset and the previous file is removed.
func (s *CategoryService) Update(ctx context.Context, id string, params domain.UpdateCategoryParams) (*domain.Category, error) {
	const op = "category.update"

	if err := validateCategoryParams(op, params.Name, params.Status); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	imagePath := existing.ImagePath
	if params.Image != nil {
		key := storage.Key("categories", params.Image.Filename)
		if _, err := s.storage.Put(ctx, key, params.Image.Content, params.Image.ContentType); err != nil {
			return nil, domain.Internal(err, op, "failed to store category image")
		}
		imagePath = &key
	}

	c, err := scanCategory(s.db.pool.QueryRow(ctx, `
		UPDATE categories
		SET name = $2, description = $3, status = $4, image_path = $5, updated_at = now()
		WHERE category_id = $1
		RETURNING `+categoryColumns,
		existing.CategoryID, params.Name, params.Description, params.Status, imagePath,
	))
	if err != nil {
		if params.Image != nil {
			s.cleanupFile(ctx, imagePath)
		}
		return nil, domain.Internal(err, op, "failed to update category")
	}

	if params.Image != nil && existing.ImagePath != nil {
		s.cleanupFile(ctx, existing.ImagePath)
	}

	return c, nil
}

// Delete removes the category row and its stored image. Subcategories and
// products keep their category reference; the public projection renders a
// fallback name for orphans.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	const op = "category.delete"

	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	tag, err := s.db.pool.Exec(ctx,
		`DELETE FROM categories WHERE category_id = $1`, existing.CategoryID)
	if err != nil {
		return domain.Internal(err, op, "failed to delete category")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(op, "category", id)
	}

	s.cleanupFile(ctx, existing.ImagePath)
	s.logger.Info("category deleted", "category_id", existing.CategoryID)
	return nil
}

func (s *CategoryService) cleanupFile(ctx context.Context, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := s.storage.Delete(ctx, *key); err != nil {
		s.logger.Error("failed to remove stored file", "key", *key, "error", err)
	}
}

func validateCategoryParams(op, name string, status domain.CategoryStatus) error {
	var err error
	if strings.TrimSpace(name) == "" {
		err = domain.AddFieldError(err, "name", "The name field is required.")
	}
	if !status.Valid() {
		err = domain.AddFieldError(err, "status", "The selected status is invalid.")
	}
	if ve, ok := err.(*domain.ValidationError); ok {
		ve.Op = op
		return ve
	}
	return err
}
