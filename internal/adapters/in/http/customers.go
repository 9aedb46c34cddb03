package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListCustomers answers ?email= with the single matching customer.
func (s *Server) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	if email := c.QueryParam("email"); email != "" {
		query, err := queries.NewGetCustomerByEmailQuery(email)
		if err != nil {
			return err
		}
		view, err := s.h.GetCustomerByEmail.Handle(ctx, query)
		if err != nil {
			return err
		}
		return success(c, http.StatusOK, "customer", view)
	}

	active, err := queryBool(c, "active")
	if err != nil {
		return err
	}
	query, err := queries.NewListCustomersQuery(active != nil && *active)
	if err != nil {
		return err
	}
	views, err := s.h.ListCustomers.Handle(ctx, query)
	if err != nil {
		return err
	}
	return successList(c, "customers", views)
}

func (s *Server) CreateCustomer(c echo.Context) error {
	var req createCustomerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	id := kernel.NewUUID()
	cmd, err := req.command(id)
	if err != nil {
		return err
	}
	if err := s.h.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderCustomer(c, http.StatusCreated, id)
}

func (s *Server) GetCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return s.renderCustomer(c, http.StatusOK, id)
}

func (s *Server) UpdateCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req updateCustomerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := req.command(id)
	if err != nil {
		return err
	}
	if err := s.h.UpdateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderCustomer(c, http.StatusOK, id)
}

func (s *Server) DeleteCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.DeleteCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) AddAddress(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req addressRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAddAddressCommand(id, commands.NewAddress{
		ID:        kernel.NewUUID(),
		Details:   req.details(),
		IsDefault: req.isDefault(),
	})
	if err != nil {
		return err
	}
	if err := s.h.Addresses.HandleAdd(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderCustomer(c, http.StatusCreated, id)
}

func (s *Server) UpdateAddress(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	addressID, err := pathUUID(c, "addressId")
	if err != nil {
		return err
	}
	var req addressRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateAddressCommand(id, addressID, req.details(), req.IsDefault)
	if err != nil {
		return err
	}
	if err := s.h.Addresses.HandleUpdate(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderCustomer(c, http.StatusOK, id)
}

func (s *Server) RemoveAddress(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	addressID, err := pathUUID(c, "addressId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveAddressCommand(id, addressID)
	if err != nil {
		return err
	}
	if err := s.h.Addresses.HandleRemove(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderCustomer(c, http.StatusOK, id)
}

func (s *Server) renderCustomer(c echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetCustomer.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return success(c, code, "customer", view)
}
