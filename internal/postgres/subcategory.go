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

// SubcategoryService implements domain.SubcategoryService on Postgres.
type SubcategoryService struct {
	db      *DB
	storage storage.Storage
	logger  *slog.Logger
}

var _ domain.SubcategoryService = (*SubcategoryService)(nil)

func NewSubcategoryService(db *DB, store storage.Storage, logger *slog.Logger) *SubcategoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubcategoryService{db: db, storage: store, logger: logger}
}

// subcategorySelect joins the owning category so reads carry its display
// name. The LEFT JOIN tolerates orphaned parents.
const subcategorySelect = `
	SELECT s.id, s.sub_category_id, s.category_id, s.name, s.description,
	       s.status, s.image_path, s.created_at, s.updated_at,
	       COALESCE(c.name, '')
	FROM sub_categories s
	LEFT JOIN categories c ON c.category_id = s.category_id`

func scanSubcategory(row pgx.Row) (*domain.Subcategory, error) {
	var sc domain.Subcategory
	err := row.Scan(
		&sc.ID, &sc.SubcategoryID, &sc.CategoryID, &sc.Name, &sc.Description,
		&sc.Status, &sc.ImagePath, &sc.CreatedAt, &sc.UpdatedAt,
		&sc.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// List returns all subcategories, newest first.
func (s *SubcategoryService) List(ctx context.Context) ([]domain.Subcategory, error) {
	const op = "subcategory.list"

	rows, err := s.db.pool.Query(ctx,
		subcategorySelect+` ORDER BY s.created_at DESC, s.id DESC`)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list subcategories")
	}
	defer rows.Close()

	return collectSubcategories(rows, op)
}

// ListByCategory returns the active subcategories of one category, used by
// the product form's dependent dropdown. Inactive rows stay hidden there.
func (s *SubcategoryService) ListByCategory(ctx context.Context, categoryID string) ([]domain.Subcategory, error) {
	return listSubcategoriesByCategory(ctx, s.db.pool, categoryID)
}

func listSubcategoriesByCategory(ctx context.Context, q queryer, categoryID string) ([]domain.Subcategory, error) {
	const op = "subcategory.list_by_category"

	rows, err := q.Query(ctx,
		subcategorySelect+` WHERE s.category_id = $1 AND s.status = 'active' ORDER BY s.name`,
		categoryID)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list subcategories")
	}
	defer rows.Close()

	return collectSubcategories(rows, op)
}

func collectSubcategories(rows pgx.Rows, op string) ([]domain.Subcategory, error) {
	var subcategories []domain.Subcategory
	for rows.Next() {
		sc, err := scanSubcategory(rows)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to scan subcategory")
		}
		subcategories = append(subcategories, *sc)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, op, "failed to read subcategories")
	}
	return subcategories, nil
}

// Get looks a subcategory up by business id first, then by surrogate key.
func (s *SubcategoryService) Get(ctx context.Context, id string) (*domain.Subcategory, error) {
	const op = "subcategory.get"

	var sc *domain.Subcategory
	var err error

	if domain.IsBusinessID(id, domain.SubcategoryIDPrefix) {
		sc, err = scanSubcategory(s.db.pool.QueryRow(ctx,
			subcategorySelect+` WHERE s.sub_category_id = $1`, id))
	} else {
		rowID, parseErr := strconv.ParseInt(id, 10, 64)
		if parseErr != nil {
			return nil, domain.NotFound(op, "subcategory", id)
		}
		sc, err = scanSubcategory(s.db.pool.QueryRow(ctx,
			subcategorySelect+` WHERE s.id = $1`, rowID))
	}

	if err == pgx.ErrNoRows {
		return nil, domain.NotFound(op, "subcategory", id)
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to get subcategory")
	}
	return sc, nil
}

// NextID previews the next subcategory business id.
func (s *SubcategoryService) NextID(ctx context.Context) (string, error) {
	const op = "subcategory.next_id"

	max, err := maxIDSuffix(ctx, s.db.pool, "sub_categories", "sub_category_id")
	if err != nil {
		return "", domain.Internal(err, op, "failed to generate subcategory id")
	}
	return domain.NextID(domain.SubcategoryIDPrefix, max), nil
}

// Create validates the parent category, stores the optional image, then
// inserts with a bounded retry on business id collision.
func (s *SubcategoryService) Create(ctx context.Context, params domain.CreateSubcategoryParams) (*domain.Subcategory, error) {
	const op = "subcategory.create"

	if err := s.validateParams(ctx, op, params.CategoryID, params.Name, params.Status); err != nil {
		return nil, err
	}

	var imagePath *string
	if params.Image != nil {
		key := storage.Key("subcategories", params.Image.Filename)
		if _, err := s.storage.Put(ctx, key, params.Image.Content, params.Image.ContentType); err != nil {
			return nil, domain.Internal(err, op, "failed to store subcategory image")
		}
		imagePath = &key
	}

	for attempt := 0; attempt < idRetryAttempts; attempt++ {
		max, err := maxIDSuffix(ctx, s.db.pool, "sub_categories", "sub_category_id")
		if err != nil {
			s.cleanupFile(ctx, imagePath)
			return nil, domain.Internal(err, op, "failed to generate subcategory id")
		}
		subcategoryID := domain.NextID(domain.SubcategoryIDPrefix, max)

		var rowID int64
		err = s.db.pool.QueryRow(ctx, `
			INSERT INTO sub_categories (sub_category_id, category_id, name, description, status, image_path)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			subcategoryID, params.CategoryID, params.Name, params.Description, params.Status, imagePath,
		).Scan(&rowID)
		if isUniqueViolation(err) {
			s.logger.Warn("subcategory id collision, retrying",
				"sub_category_id", subcategoryID, "attempt", attempt+1)
			continue
		}
		if err != nil {
			s.cleanupFile(ctx, imagePath)
			return nil, domain.Internal(err, op, "failed to create subcategory")
		}

		s.logger.Info("subcategory created", "sub_category_id", subcategoryID, "name", params.Name)
		return s.Get(ctx, subcategoryID)
	}

	s.cleanupFile(ctx, imagePath)
	return nil, domain.Conflict(op, "could not allocate a subcategory id, please retry")
}

// Update replaces the mutable fields, including a possible move to a
// different parent category.
func (s *SubcategoryService) Update(ctx context.Context, id string, params domain.UpdateSubcategoryParams) (*domain.Subcategory, error) {
	const op = "subcategory.update"

	if err := s.validateParams(ctx, op, params.CategoryID, params.Name, params.Status); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	imagePath := existing.ImagePath
	if params.Image != nil {
		key := storage.Key("subcategories", params.Image.Filename)
		if _, err := s.storage.Put(ctx, key, params.Image.Content, params.Image.ContentType); err != nil {
			return nil, domain.Internal(err, op, "failed to store subcategory image")
		}
		imagePath = &key
	}

	_, err = s.db.pool.Exec(ctx, `
		UPDATE sub_categories
		SET category_id = $2, name = $3, description = $4, status = $5, image_path = $6, updated_at = now()
		WHERE sub_category_id = $1`,
		existing.SubcategoryID, params.CategoryID, params.Name, params.Description, params.Status, imagePath,
	)
	if err != nil {
		if params.Image != nil {
			s.cleanupFile(ctx, imagePath)
		}
		return nil, domain.Internal(err, op, "failed to update subcategory")
	}

	if params.Image != nil && existing.ImagePath != nil {
		s.cleanupFile(ctx, existing.ImagePath)
	}

	return s.Get(ctx, existing.SubcategoryID)
}

// Delete removes the subcategory row and its stored image.
func (s *SubcategoryService) Delete(ctx context.Context, id string) error {
	const op = "subcategory.delete"

	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	tag, err := s.db.pool.Exec(ctx,
		`DELETE FROM sub_categories WHERE sub_category_id = $1`, existing.SubcategoryID)
	if err != nil {
		return domain.Internal(err, op, "failed to delete subcategory")
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(op, "subcategory", id)
	}

	s.cleanupFile(ctx, existing.ImagePath)
	s.logger.Info("subcategory deleted", "sub_category_id", existing.SubcategoryID)
	return nil
}

func (s *SubcategoryService) cleanupFile(ctx context.Context, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := s.storage.Delete(ctx, *key); err != nil {
		s.logger.Error("failed to remove stored file", "key", *key, "error", err)
	}
}

// validateParams checks required fields and that the parent category exists.
func (s *SubcategoryService) validateParams(ctx context.Context, op, categoryID, name string, status domain.CategoryStatus) error {
	var verr error
	if strings.TrimSpace(name) == "" {
		verr = domain.AddFieldError(verr, "name", "The name field is required.")
	}
	if !status.Valid() {
		verr = domain.AddFieldError(verr, "status", "The selected status is invalid.")
	}

	if strings.TrimSpace(categoryID) == "" {
		verr = domain.AddFieldError(verr, "category_id", "The category id field is required.")
	} else {
		var exists bool
		err := s.db.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM categories WHERE category_id = $1)`, categoryID,
		).Scan(&exists)
		if err != nil {
			return domain.Internal(err, op, "failed to verify category")
		}
		if !exists {
			verr = domain.AddFieldError(verr, "category_id", "The selected category id is invalid.")
		}
	}

	if ve, ok := verr.(*domain.ValidationError); ok {
		ve.Op = op
		return ve
	}
	return verr
}
