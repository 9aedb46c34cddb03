package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order view.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	db := h.db.WithContext(ctx)

	var row orderRow
	if err := db.Table("orders").Where("id = ?", query.OrderID().Bytes()).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderView{}, err
	}

	items, err := loadOrderItems(db, []uuid.UUID{row.ID})
	if err != nil {
		return OrderView{}, err
	}
	return row.view(items[row.ID]), nil
}

// ListOrdersQueryHandler reads order views ordered by ordered_at descending.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	filter := query.Filter()

	stmt := db.Table("orders")
	if filter.CustomerID != nil {
		stmt = stmt.Where("customer_id = ?", filter.CustomerID.Bytes())
	}
	if filter.CourierID != nil {
		stmt = stmt.Where("courier_id = ?", filter.CourierID.Bytes())
	}
	if filter.Status != nil {
		stmt = stmt.Where("status = ?", filter.Status.String())
	}

	var rows []orderRow
	if err := stmt.Order("ordered_at DESC").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	items, err := loadOrderItems(db, ids)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.view(items[row.ID]))
	}
	return views, nil
}

func loadOrderItems(db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]orderItemRow, error) {
	grouped := make(map[uuid.UUID][]orderItemRow, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	var rows []orderItemRow
	if err := db.Table("order_items").
		Where("order_id IN ?", orderIDs).
		Order("order_id").
		Order("position").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		grouped[row.OrderID] = append(grouped[row.OrderID], row)
	}
	return grouped, nil
}
