package postgres

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/storage"
)

// ProductService implements domain.ProductService on Postgres. Product
// creation and update are transactional across the product row and its
// images, specifications and variants; stored files are cleaned up when the
// transaction does not commit.
type ProductService struct {
	db      *DB
	storage storage.Storage
	logger  *slog.Logger
}

var _ domain.ProductService = (*ProductService)(nil)

func NewProductService(db *DB, store storage.Storage, logger *slog.Logger) *ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductService{db: db, storage: store, logger: logger}
}

const productSelect = `
	SELECT p.id, p.product_id, p.name, p.description, p.category_id, p.sub_category_id,
	       p.price, p.cost_price, p.stock_quantity, p.sku, p.barcode, p.weight,
	       p.status, p.featured, p.created_at, p.updated_at,
	       COALESCE(c.name, ''), COALESCE(s.name, '')
	FROM products p
	LEFT JOIN categories c ON c.category_id = p.category_id
	LEFT JOIN sub_categories s ON s.sub_category_id = p.sub_category_id`

type productRow struct {
	product         domain.Product
	categoryName    string
	subcategoryName string
}

func scanProductRow(row pgx.Row) (*productRow, error) {
	var pr productRow
	var price, costPrice, weight pgtype.Numeric

	err := row.Scan(
		&pr.product.ID, &pr.product.ProductID, &pr.product.Name, &pr.product.Description,
		&pr.product.CategoryID, &pr.product.SubcategoryID,
		&price, &costPrice, &pr.product.StockQuantity,
		&pr.product.SKU, &pr.product.Barcode, &weight,
		&pr.product.Status, &pr.product.Featured,
		&pr.product.CreatedAt, &pr.product.UpdatedAt,
		&pr.categoryName, &pr.subcategoryName,
	)
	if err != nil {
		return nil, err
	}

	pr.product.Price = numericToDecimal(price)
	pr.product.CostPrice = numericToDecimalPtr(costPrice)
	pr.product.Weight = numericToDecimalPtr(weight)
	return &pr, nil
}

// List returns one page of the product listing, newest first.
func (s *ProductService) List(ctx context.Context, page, perPage int) (*domain.ProductPage, error) {
	const op = "product.list"

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int64
	if err := s.db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, domain.Internal(err, op, "failed to count products")
	}

	rows, err := s.db.pool.Query(ctx,
		productSelect+` ORDER BY p.created_at DESC, p.id DESC LIMIT $1 OFFSET $2`,
		perPage, (page-1)*perPage)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list products")
	}
	defer rows.Close()

	items := []domain.ProductListItem{}
	for rows.Next() {
		pr, err := scanProductRow(rows)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to scan product")
		}
		items = append(items, domain.ProductListItem{
			Product:         pr.product,
			CategoryName:    pr.categoryName,
			SubcategoryName: pr.subcategoryName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, op, "failed to read products")
	}

	return &domain.ProductPage{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

// Get returns a product with its images, specifications and variants,
// looking up by business id first, then by surrogate key.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.ProductDetail, error) {
	const op = "product.get"

	var pr *productRow
	var err error

	if domain.IsBusinessID(id, domain.ProductIDPrefix) {
		pr, err = scanProductRow(s.db.pool.QueryRow(ctx,
			productSelect+` WHERE p.product_id = $1`, id))
	} else {
		rowID, parseErr := strconv.ParseInt(id, 10, 64)
		if parseErr != nil {
			return nil, domain.NotFound(op, "product", id)
		}
		pr, err = scanProductRow(s.db.pool.QueryRow(ctx,
			productSelect+` WHERE p.id = $1`, rowID))
	}

	if err == pgx.ErrNoRows {
		return nil, domain.NotFound(op, "product", id)
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to get product")
	}

	detail := &domain.ProductDetail{
		Product:         pr.product,
		CategoryName:    pr.categoryName,
		SubcategoryName: pr.subcategoryName,
	}

	if err := s.loadChildren(ctx, detail); err != nil {
		return nil, domain.Internal(err, op, "failed to load product details")
	}
	return detail, nil
}

func (s *ProductService) loadChildren(ctx context.Context, detail *domain.ProductDetail) error {
	rows, err := s.db.pool.Query(ctx, `
		SELECT id, product_id, image_path, display_order
		FROM product_images WHERE product_id = $1 ORDER BY display_order`,
		detail.ProductID)
	if err != nil {
		return err
	}
	detail.Images, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ProductImage])
	if err != nil {
		return err
	}

	rows, err = s.db.pool.Query(ctx, `
		SELECT id, product_id, spec_key, spec_value
		FROM product_specifications WHERE product_id = $1 ORDER BY id`,
		detail.ProductID)
	if err != nil {
		return err
	}
	detail.Specifications, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ProductSpecification])
	if err != nil {
		return err
	}

	rows, err = s.db.pool.Query(ctx, `
		SELECT id, product_id, variant_name, variant_options
		FROM product_variants WHERE product_id = $1 ORDER BY id`,
		detail.ProductID)
	if err != nil {
		return err
	}
	detail.Variants, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ProductVariant])
	return err
}

// NextID previews the next product business id.
func (s *ProductService) NextID(ctx context.Context) (string, error) {
	const op = "product.next_id"

	max, err := maxIDSuffix(ctx, s.db.pool, "products", "product_id")
	if err != nil {
		return "", domain.Internal(err, op, "failed to generate product id")
	}
	return domain.NextID(domain.ProductIDPrefix, max), nil
}

// Create validates everything up front, stores the image files, then writes
// the product and all its child rows in one transaction. No partial product
// is ever visible: if any insert fails the transaction rolls back and the
// stored files are removed.
func (s *ProductService) Create(ctx context.Context, params domain.CreateProductParams) (*domain.ProductDetail, error) {
	const op = "product.create"

	if err := s.validateParams(ctx, op, productValidation{
		name:          params.Name,
		description:   params.Description,
		categoryID:    params.CategoryID,
		subcategoryID: params.SubcategoryID,
		price:         params.Price,
		stockQuantity: params.StockQuantity,
		status:        params.Status,
		sku:           params.SKU,
		barcode:       params.Barcode,
		excludeID:     "",
	}); err != nil {
		return nil, err
	}

	imageKeys, err := s.storeImages(ctx, op, params.Images)
	if err != nil {
		return nil, err
	}

	productID, err := s.insertProductTx(ctx, op, params, imageKeys)
	if err != nil {
		s.cleanupFiles(ctx, imageKeys)
		return nil, err
	}

	s.logger.Info("product created",
		"product_id", productID, "name", params.Name, "images", len(imageKeys))
	return s.Get(ctx, productID)
}

// insertProductTx runs the generate-and-insert loop. Each attempt is a full
// transaction so a business id collision leaves no residue behind.
func (s *ProductService) insertProductTx(ctx context.Context, op string, params domain.CreateProductParams, imageKeys []string) (string, error) {
	for attempt := 0; attempt < idRetryAttempts; attempt++ {
		productID, err := s.tryInsertProduct(ctx, params, imageKeys)
		if isUniqueViolation(err) && strings.Contains(constraintName(err), "product_id") {
			s.logger.Warn("product id collision, retrying",
				"product_id", productID, "attempt", attempt+1)
			continue
		}
		if err != nil {
			// A concurrent writer can take the sku or barcode between
			// pre-validation and the insert; report it like the pre-check.
			if field, message, ok := uniqueViolationField(err); ok {
				return "", domain.NewValidationError(op, field, message)
			}
			return "", domain.Internal(err, op, "failed to create product")
		}
		return productID, nil
	}
	return "", domain.Conflict(op, "could not allocate a product id, please retry")
}

func (s *ProductService) tryInsertProduct(ctx context.Context, params domain.CreateProductParams, imageKeys []string) (string, error) {
	tx, err := s.db.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	max, err := maxIDSuffix(ctx, tx, "products", "product_id")
	if err != nil {
		return "", err
	}
	productID := domain.NextID(domain.ProductIDPrefix, max)

	_, err = tx.Exec(ctx, `
		INSERT INTO products (product_id, name, description, category_id, sub_category_id,
			price, cost_price, stock_quantity, sku, barcode, weight, status, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		productID, params.Name, params.Description, params.CategoryID, params.SubcategoryID,
		decimalToNumeric(params.Price), decimalPtrToNumeric(params.CostPrice),
		params.StockQuantity, params.SKU, params.Barcode,
		decimalPtrToNumeric(params.Weight), params.Status, params.Featured,
	)
	if err != nil {
		return productID, err
	}

	if err := insertProductChildren(ctx, tx, productID, imageKeys, params.Specifications, params.Variants); err != nil {
		return productID, err
	}

	if err := tx.Commit(ctx); err != nil {
		return productID, err
	}
	return productID, nil
}

// insertProductChildren writes the owned collections. Images get display
// orders 0..N-1 in submission order; specification and variant entries with
// empty parts are skipped, not rejected.
func insertProductChildren(ctx context.Context, tx pgx.Tx, productID string, imageKeys []string, specs []domain.SpecificationInput, variants []domain.VariantInput) error {
	for i, key := range imageKeys {
		_, err := tx.Exec(ctx, `
			INSERT INTO product_images (product_id, image_path, display_order)
			VALUES ($1, $2, $3)`,
			productID, key, int32(i))
		if err != nil {
			return err
		}
	}

	for _, spec := range specs {
		if strings.TrimSpace(spec.Key) == "" || strings.TrimSpace(spec.Value) == "" {
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO product_specifications (product_id, spec_key, spec_value)
			VALUES ($1, $2, $3)`,
			productID, spec.Key, spec.Value)
		if err != nil {
			return err
		}
	}

	for _, variant := range variants {
		if strings.TrimSpace(variant.Name) == "" || strings.TrimSpace(variant.Options) == "" {
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO product_variants (product_id, variant_name, variant_options)
			VALUES ($1, $2, $3)`,
			productID, variant.Name, variant.Options)
		if err != nil {
			return err
		}
	}

	return nil
}

// Update replaces the product's fields; non-nil Images, Specifications or
// Variants replace the corresponding set wholesale.
func (s *ProductService) Update(ctx context.Context, id string, params domain.UpdateProductParams) (*domain.ProductDetail, error) {
	const op = "product.update"

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateParams(ctx, op, productValidation{
		name:          params.Name,
		description:   params.Description,
		categoryID:    params.CategoryID,
		subcategoryID: params.SubcategoryID,
		price:         params.Price,
		stockQuantity: params.StockQuantity,
		status:        params.Status,
		sku:           params.SKU,
		barcode:       params.Barcode,
		excludeID:     existing.ProductID,
	}); err != nil {
		return nil, err
	}

	var newImageKeys []string
	if params.Images != nil {
		newImageKeys, err = s.storeImages(ctx, op, params.Images)
		if err != nil {
			return nil, err
		}
	}

	err = func() error {
		tx, err := s.db.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		_, err = tx.Exec(ctx, `
			UPDATE products
			SET name = $2, description = $3, category_id = $4, sub_category_id = $5,
				price = $6, cost_price = $7, stock_quantity = $8, sku = $9, barcode = $10,
				weight = $11, status = $12, featured = $13, updated_at = now()
			WHERE product_id = $1`,
			existing.ProductID, params.Name, params.Description, params.CategoryID, params.SubcategoryID,
			decimalToNumeric(params.Price), decimalPtrToNumeric(params.CostPrice),
			params.StockQuantity, params.SKU, params.Barcode,
			decimalPtrToNumeric(params.Weight), params.Status, params.Featured,
		)
		if err != nil {
			return err
		}

		if params.Images != nil {
			if _, err := tx.Exec(ctx,
				`DELETE FROM product_images WHERE product_id = $1`, existing.ProductID); err != nil {
				return err
			}
		}
		if params.Specifications != nil {
			if _, err := tx.Exec(ctx,
				`DELETE FROM product_specifications WHERE product_id = $1`, existing.ProductID); err != nil {
				return err
			}
		}
		if params.Variants != nil {
			if _, err := tx.Exec(ctx,
				`DELETE FROM product_variants WHERE product_id = $1`, existing.ProductID); err != nil {
				return err
			}
		}

		if err := insertProductChildren(ctx, tx, existing.ProductID, newImageKeys, params.Specifications, params.Variants); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}()
	if err != nil {
		s.cleanupFiles(ctx, newImageKeys)
		if field, message, ok := uniqueViolationField(err); ok {
			return nil, domain.NewValidationError(op, field, message)
		}
		return nil, domain.Internal(err, op, "failed to update product")
	}

	if params.Images != nil {
		for _, img := range existing.Images {
			s.cleanupFiles(ctx, []string{img.ImagePath})
		}
	}

	return s.Get(ctx, existing.ProductID)
}

// Delete removes the product and its child rows, then the stored image
// files. Child rows go first so no orphans survive a partial failure.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	const op = "product.delete"

	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = func() error {
		tx, err := s.db.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		for _, table := range []string{"product_images", "product_specifications", "product_variants"} {
			if _, err := tx.Exec(ctx,
				`DELETE FROM `+table+` WHERE product_id = $1`, existing.ProductID); err != nil {
				return err
			}
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM products WHERE product_id = $1`, existing.ProductID); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}()
	if err != nil {
		return domain.Internal(err, op, "failed to delete product")
	}

	for _, img := range existing.Images {
		s.cleanupFiles(ctx, []string{img.ImagePath})
	}

	s.logger.Info("product deleted", "product_id", existing.ProductID)
	return nil
}

// ListPublic returns active products for the public catalog: category name
// filter ("All" or empty means unfiltered), optional featured-only, each row
// carrying the joined category name and first image, nil where broken.
func (s *ProductService) ListPublic(ctx context.Context, filter domain.PublicProductFilter) ([]domain.PublicProductRow, error) {
	const op = "product.list_public"

	category := filter.Category
	if category == "All" {
		category = ""
	}

	rows, err := s.db.pool.Query(ctx, `
		SELECT p.id, p.product_id, p.name, p.description, p.category_id, p.sub_category_id,
		       p.price, p.cost_price, p.stock_quantity, p.sku, p.barcode, p.weight,
		       p.status, p.featured, p.created_at, p.updated_at,
		       c.name,
		       (SELECT pi.image_path FROM product_images pi
		        WHERE pi.product_id = p.product_id
		        ORDER BY pi.display_order LIMIT 1)
		FROM products p
		LEFT JOIN categories c ON c.category_id = p.category_id
		WHERE p.status = 'active'
		  AND ($1 = '' OR c.name = $1)
		  AND (NOT $2 OR p.featured)
		ORDER BY p.created_at DESC, p.id DESC`,
		category, filter.FeaturedOnly)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list public products")
	}
	defer rows.Close()

	results := []domain.PublicProductRow{}
	for rows.Next() {
		var pr domain.PublicProductRow
		var price, costPrice, weight pgtype.Numeric

		err := rows.Scan(
			&pr.ID, &pr.ProductID, &pr.Name, &pr.Description,
			&pr.CategoryID, &pr.SubcategoryID,
			&price, &costPrice, &pr.StockQuantity,
			&pr.SKU, &pr.Barcode, &weight,
			&pr.Status, &pr.Featured, &pr.CreatedAt, &pr.UpdatedAt,
			&pr.CategoryName, &pr.FirstImagePath,
		)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to scan public product")
		}

		pr.Price = numericToDecimal(price)
		pr.CostPrice = numericToDecimalPtr(costPrice)
		pr.Weight = numericToDecimalPtr(weight)
		results = append(results, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, op, "failed to read public products")
	}

	return results, nil
}

// storeImages writes uploads to the content store, returning the keys in
// submission order. On partial failure the already-stored files are removed.
func (s *ProductService) storeImages(ctx context.Context, op string, uploads []domain.ImageUpload) ([]string, error) {
	keys := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		key := storage.Key("products", upload.Filename)
		if _, err := s.storage.Put(ctx, key, upload.Content, upload.ContentType); err != nil {
			s.cleanupFiles(ctx, keys)
			return nil, domain.Internal(err, op, "failed to store product image")
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *ProductService) cleanupFiles(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Error("failed to remove stored file", "key", key, "error", err)
		}
	}
}

type productValidation struct {
	name          string
	description   string
	categoryID    string
	subcategoryID string
	price         decimal.Decimal
	stockQuantity int32
	status        domain.ProductStatus
	sku           *string
	barcode       *string
	// excludeID exempts the product's own row from uniqueness checks on
	// update.
	excludeID string
}

// validateParams reports every failed field, not just the first.
func (s *ProductService) validateParams(ctx context.Context, op string, v productValidation) error {
	var verr error

	if strings.TrimSpace(v.name) == "" {
		verr = domain.AddFieldError(verr, "name", "The name field is required.")
	}
	if strings.TrimSpace(v.description) == "" {
		verr = domain.AddFieldError(verr, "description", "The description field is required.")
	}
	if !v.status.Valid() {
		verr = domain.AddFieldError(verr, "status", "The selected status is invalid.")
	}
	if v.price.IsNegative() {
		verr = domain.AddFieldError(verr, "price", "The price must be at least 0.")
	}
	if v.stockQuantity < 0 {
		verr = domain.AddFieldError(verr, "stock_quantity", "The stock quantity must be at least 0.")
	}

	if strings.TrimSpace(v.categoryID) == "" {
		verr = domain.AddFieldError(verr, "category_id", "The category id field is required.")
	} else {
		exists, err := s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE category_id = $1)`, v.categoryID)
		if err != nil {
			return domain.Internal(err, op, "failed to verify category")
		}
		if !exists {
			verr = domain.AddFieldError(verr, "category_id", "The selected category id is invalid.")
		}
	}

	if strings.TrimSpace(v.subcategoryID) == "" {
		verr = domain.AddFieldError(verr, "sub_category_id", "The sub category id field is required.")
	} else {
		exists, err := s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM sub_categories WHERE sub_category_id = $1)`, v.subcategoryID)
		if err != nil {
			return domain.Internal(err, op, "failed to verify subcategory")
		}
		if !exists {
			verr = domain.AddFieldError(verr, "sub_category_id", "The selected sub category id is invalid.")
		}
	}

	if v.sku != nil && *v.sku != "" {
		taken, err := s.exists(ctx,
			`SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1 AND product_id <> $2)`,
			*v.sku, v.excludeID)
		if err != nil {
			return domain.Internal(err, op, "failed to verify sku")
		}
		if taken {
			verr = domain.AddFieldError(verr, "sku", "The sku has already been taken.")
		}
	}

	if v.barcode != nil && *v.barcode != "" {
		taken, err := s.exists(ctx,
			`SELECT EXISTS (SELECT 1 FROM products WHERE barcode = $1 AND product_id <> $2)`,
			*v.barcode, v.excludeID)
		if err != nil {
			return domain.Internal(err, op, "failed to verify barcode")
		}
		if taken {
			verr = domain.AddFieldError(verr, "barcode", "The barcode has already been taken.")
		}
	}

	if ve, ok := verr.(*domain.ValidationError); ok {
		ve.Op = op
		return ve
	}
	return verr
}

// uniqueViolationField maps a sku/barcode unique violation to the field
// name and message the pre-insert checks use.
func uniqueViolationField(err error) (field, message string, ok bool) {
	if !isUniqueViolation(err) {
		return "", "", false
	}
	switch name := constraintName(err); {
	case strings.Contains(name, "sku"):
		return "sku", "The sku has already been taken.", true
	case strings.Contains(name, "barcode"):
		return "barcode", "The barcode has already been taken.", true
	}
	return "", "", false
}

func (s *ProductService) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var exists bool
	err := s.db.pool.QueryRow(ctx, query, args...).Scan(&exists)
	return exists, err
}
