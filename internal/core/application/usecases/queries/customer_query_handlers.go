package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}
	return findCustomer(h.db.WithContext(ctx), "id", query.CustomerID().Bytes(), query.CustomerID().String())
}

type GetCustomerByEmailQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerByEmailQueryHandler(db *gorm.DB) GetCustomerByEmailQueryHandler {
	return GetCustomerByEmailQueryHandler{db: db}
}

func (h GetCustomerByEmailQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerByEmailQuery,
) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}
	return findCustomer(h.db.WithContext(ctx), "email", query.Email().String(), query.Email().String())
}

// ListCustomersQueryHandler lists customers by registration date, newest first.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	stmt := db.Table("customers")
	if query.ActiveOnly() {
		stmt = stmt.Where("active")
	}

	var rows []customerRow
	if err := stmt.Order("registered_at DESC").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	addresses, err := loadAddresses(db, ids)
	if err != nil {
		return nil, err
	}

	views := make([]CustomerView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.view(addresses[row.ID]))
	}
	return views, nil
}

func findCustomer(db *gorm.DB, column string, value any, key string) (CustomerView, error) {
	var row customerRow
	if err := db.Table("customers").Where(column+" = ?", value).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CustomerView{}, errs.NewObjectNotFoundError("customer", key)
		}
		return CustomerView{}, err
	}

	addresses, err := loadAddresses(db, []uuid.UUID{row.ID})
	if err != nil {
		return CustomerView{}, err
	}
	return row.view(addresses[row.ID]), nil
}

func loadAddresses(db *gorm.DB, customerIDs []uuid.UUID) (map[uuid.UUID][]addressRow, error) {
	grouped := make(map[uuid.UUID][]addressRow, len(customerIDs))
	if len(customerIDs) == 0 {
		return grouped, nil
	}

	var rows []addressRow
	if err := db.Table("customer_addresses").
		Where("customer_id IN ?", customerIDs).
		Order("customer_id").
		Order("position").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		grouped[row.CustomerID] = append(grouped[row.CustomerID], row)
	}
	return grouped, nil
}
