package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListOrders(c echo.Context) error {
	customerID, err := queryUUID(c, "customerId")
	if err != nil {
		return err
	}
	courierID, err := queryUUID(c, "courierId")
	if err != nil {
		return err
	}
	filter := queries.OrdersFilter{CustomerID: customerID, CourierID: courierID}
	if raw := c.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return err
		}
		filter.Status = &status
	}
	return s.listOrders(c, filter)
}

func (s *Server) ListCustomerOrders(c echo.Context) error {
	id, err := pathUUID(c, "customerId")
	if err != nil {
		return err
	}
	return s.listOrders(c, queries.OrdersFilter{CustomerID: &id})
}

func (s *Server) ListCourierOrders(c echo.Context) error {
	id, err := pathUUID(c, "courierId")
	if err != nil {
		return err
	}
	return s.listOrders(c, queries.OrdersFilter{CourierID: &id})
}

func (s *Server) ListOrdersByStatus(c echo.Context) error {
	status, err := order.ParseStatus(c.Param("status"))
	if err != nil {
		return err
	}
	return s.listOrders(c, queries.OrdersFilter{Status: &status})
}

func (s *Server) listOrders(c echo.Context, filter queries.OrdersFilter) error {
	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return err
	}
	views, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return successList(c, "orders", views)
}

func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	id := kernel.NewUUID()
	cmd, err := req.command(id)
	if err != nil {
		return err
	}
	if err := s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderOrder(c, http.StatusCreated, id)
}

func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return s.renderOrder(c, http.StatusOK, id)
}

func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req updateOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	changes, err := req.changes()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateOrderCommand(id, changes)
	if err != nil {
		return err
	}
	if err := s.h.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderOrder(c, http.StatusOK, id)
}

func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := bindBody(c, &req); err != nil {
		return err
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}
	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return err
	}
	if err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderOrder(c, http.StatusOK, id)
}

func (s *Server) AssignCourier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		CourierID string `json:"courierId"`
	}
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.CourierID == "" {
		return errs.NewValueIsRequiredError("courierId")
	}
	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAssignCourierCommand(id, courierID)
	if err != nil {
		return err
	}
	if err := s.h.AssignCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderOrder(c, http.StatusOK, id)
}

func (s *Server) RateOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Score   int    `json:"score"`
		Comment string `json:"comment"`
	}
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewRateOrderCommand(id, req.Score, req.Comment)
	if err != nil {
		return err
	}
	if err := s.h.RateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderOrder(c, http.StatusOK, id)
}

func (s *Server) CancelOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(id, req.Reason)
	if err != nil {
		return err
	}
	if err := s.h.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderOrder(c, http.StatusOK, id)
}

func (s *Server) renderOrder(c echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return success(c, code, "order", view)
}
