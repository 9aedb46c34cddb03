package http

import (
	"net/http"
	"strings"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListCouriers(c echo.Context) error {
	active, err := queryBool(c, "active")
	if err != nil {
		return err
	}
	query, err := queries.NewListCouriersQuery(queries.CouriersFilter{
		Zone:   strings.TrimSpace(c.QueryParam("zone")),
		Active: active,
	})
	if err != nil {
		return err
	}
	views, err := s.h.ListCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return successList(c, "couriers", views)
}

// ListAvailableCouriers takes ?zones=a,b and returns the free couriers
// covering any of them, best rated first.
func (s *Server) ListAvailableCouriers(c echo.Context) error {
	query, err := queries.NewListAvailableCouriersQuery(queryList(c, "zones"))
	if err != nil {
		return err
	}
	views, err := s.h.AvailableCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return successList(c, "couriers", views)
}

func (s *Server) CreateCourier(c echo.Context) error {
	var req createCourierRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	id := kernel.NewUUID()
	cmd, err := req.command(id)
	if err != nil {
		return err
	}
	if err := s.h.CreateCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderCourier(c, http.StatusCreated, id)
}

func (s *Server) GetCourier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return s.renderCourier(c, http.StatusOK, id)
}

func (s *Server) UpdateCourier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req updateCourierRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := req.command(id)
	if err != nil {
		return err
	}
	if err := s.h.Couriers.HandleUpdate(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderCourier(c, http.StatusOK, id)
}

func (s *Server) DeleteCourier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteCourierCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.DeleteCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) SetCourierAvailability(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Available *bool `json:"available"`
	}
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.Available == nil {
		return errs.NewValueIsRequiredError("available")
	}
	cmd, err := commands.NewSetCourierAvailabilityCommand(id, *req.Available)
	if err != nil {
		return err
	}
	if err := s.h.Couriers.HandleSetAvailability(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderCourier(c, http.StatusOK, id)
}

func (s *Server) UpdateCourierLocation(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.Lat == nil || req.Lng == nil {
		return errs.NewValueIsRequiredError("lat/lng")
	}
	point, err := kernel.NewGeoPoint(*req.Lat, *req.Lng)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateCourierLocationCommand(id, point)
	if err != nil {
		return err
	}
	if err := s.h.Couriers.HandleUpdateLocation(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderCourier(c, http.StatusOK, id)
}

func (s *Server) UpdateCourierZones(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Zones []string `json:"zones"`
	}
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateCourierZonesCommand(id, req.Zones)
	if err != nil {
		return err
	}
	if err := s.h.Couriers.HandleUpdateZones(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderCourier(c, http.StatusOK, id)
}

func (s *Server) GetCourierStats(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetCourierStatsQuery(id)
	if err != nil {
		return err
	}
	stats, err := s.h.CourierStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "stats", stats)
}

func (s *Server) renderCourier(c echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetCourierQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetCourier.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return success(c, code, "courier", view)
}
