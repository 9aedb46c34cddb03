package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetCourierQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

func (h GetCourierQueryHandler) Handle(ctx context.Context, query GetCourierQuery) (CourierView, error) {
	if err := query.Validate(); err != nil {
		return CourierView{}, err
	}

	var row courierRow
	err := h.db.WithContext(ctx).Table("couriers").Where("id = ?", query.CourierID().Bytes()).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CourierView{}, errs.NewObjectNotFoundError("courier", query.CourierID().String())
		}
		return CourierView{}, err
	}
	return row.view(), nil
}

type ListCouriersQueryHandler struct {
	db *gorm.DB
}

func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

func (h ListCouriersQueryHandler) Handle(ctx context.Context, query ListCouriersQuery) ([]CourierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	stmt := h.db.WithContext(ctx).Table("couriers")
	if filter.Zone != "" {
		stmt = stmt.Where(zoneCoverage, pq.Array([]string{filter.Zone}))
	}
	if filter.Active != nil {
		stmt = stmt.Where("active = ?", *filter.Active)
	}

	var rows []courierRow
	if err := stmt.Order("registered_at DESC").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return courierViews(rows), nil
}

type ListAvailableCouriersQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableCouriersQueryHandler(db *gorm.DB) ListAvailableCouriersQueryHandler {
	return ListAvailableCouriersQueryHandler{db: db}
}

func (h ListAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableCouriersQuery,
) ([]CourierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("couriers").Where("available AND active")
	if zones := query.Zones(); len(zones) > 0 {
		stmt = stmt.Where(zoneCoverage, pq.Array(zones))
	}

	var rows []courierRow
	if err := stmt.Order("rating DESC").Order("registered_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return courierViews(rows), nil
}

// GetCourierStatsQueryHandler aggregates the delivered orders of one courier.
type GetCourierStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierStatsQueryHandler(db *gorm.DB) GetCourierStatsQueryHandler {
	return GetCourierStatsQueryHandler{db: db}
}

func (h GetCourierStatsQueryHandler) Handle(ctx context.Context, query GetCourierStatsQuery) (CourierStatsView, error) {
	if err := query.Validate(); err != nil {
		return CourierStatsView{}, err
	}

	db := h.db.WithContext(ctx)
	courierID := query.CourierID().Bytes()

	var exists int64
	if err := db.Table("couriers").Where("id = ?", courierID).Count(&exists).Error; err != nil {
		return CourierStatsView{}, err
	}
	if exists == 0 {
		return CourierStatsView{}, errs.NewObjectNotFoundError("courier", query.CourierID().String())
	}

	delivered := func() *gorm.DB {
		return db.Table("orders").Where("courier_id = ? AND status = ?", courierID, order.Delivered.String())
	}

	var totals struct {
		TotalDeliveries int
		TotalRatings    int
		AverageRating   float64
	}
	if err := delivered().
		Select("COUNT(*) AS total_deliveries, " +
			"COUNT(rating_score) AS total_ratings, " +
			"COALESCE(AVG(rating_score), 0)::float8 AS average_rating").
		Scan(&totals).Error; err != nil {
		return CourierStatsView{}, err
	}

	var weekdays []struct {
		Weekday    int
		Deliveries int
	}
	if err := delivered().
		Where("delivered_at IS NOT NULL").
		Select("EXTRACT(DOW FROM delivered_at)::int AS weekday, COUNT(*) AS deliveries").
		Group("weekday").
		Scan(&weekdays).Error; err != nil {
		return CourierStatsView{}, err
	}

	stats := CourierStatsView{
		TotalDeliveries: totals.TotalDeliveries,
		AverageRating:   totals.AverageRating,
		TotalRatings:    totals.TotalRatings,
	}
	for _, w := range weekdays {
		if w.Weekday >= 0 && w.Weekday < len(stats.DeliveriesByWeekday) {
			stats.DeliveriesByWeekday[w.Weekday] = w.Deliveries
		}
	}
	return stats, nil
}

const zoneCoverage = "EXISTS (SELECT 1 FROM unnest(zones) z WHERE lower(z) = ANY(?))"

func courierViews(rows []courierRow) []CourierView {
	views := make([]CourierView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.view())
	}
	return views
}
