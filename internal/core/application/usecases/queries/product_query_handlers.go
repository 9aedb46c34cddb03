package queries

import (
	"context"
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	var row productRow
	err := h.db.WithContext(ctx).Table("products").Where("id = ?", query.ProductID().Bytes()).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProductView{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
		}
		return ProductView{}, err
	}
	return row.view(), nil
}

// ListProductsQueryHandler lists the catalog, featured first, then by name.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	stmt := h.db.WithContext(ctx).Table("products")
	if filter.Category != nil {
		stmt = stmt.Where("category = ?", filter.Category.String())
	}
	if filter.Available != nil {
		stmt = stmt.Where("available = ?", *filter.Available)
	}
	if filter.Featured != nil {
		stmt = stmt.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		stmt = stmt.Where(
			"name ILIKE @p OR description ILIKE @p OR EXISTS (SELECT 1 FROM unnest(tags) t WHERE t ILIKE @p)",
			map[string]any{"p": pattern},
		)
	}
	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	var rows []productRow
	if err := stmt.Order("featured DESC").Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.view())
	}
	return views, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
