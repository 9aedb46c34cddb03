package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

type GetProductQuery struct {
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductsFilter narrows the catalog listing. Search matches name, description
// and tags case-insensitively. A zero Limit returns every match.
type ProductsFilter struct {
	Category  *product.Category
	Available *bool
	Featured  *bool
	Search    string
	Limit     int
}

type ListProductsQuery struct {
	filter ProductsFilter
	guard  guard.ConstructorGuard
}

func NewListProductsQuery(filter ProductsFilter) (ListProductsQuery, error) {
	if filter.Category != nil {
		if err := filter.Category.Validate(); err != nil {
			return ListProductsQuery{}, err
		}
	}
	if filter.Limit < 0 {
		return ListProductsQuery{}, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 0, "unbounded")
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return ListProductsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductsQuery) Filter() ProductsFilter {
	return q.filter
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}
