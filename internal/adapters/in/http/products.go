package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListProducts(c echo.Context) error {
	filter, err := productsFilter(c)
	if err != nil {
		return err
	}
	if raw := c.QueryParam("category"); raw != "" {
		category, err := product.ParseCategory(raw)
		if err != nil {
			return err
		}
		filter.Category = &category
	}
	return s.listProducts(c, filter)
}

func (s *Server) ListProductsByCategory(c echo.Context) error {
	category, err := product.ParseCategory(c.Param("category"))
	if err != nil {
		return err
	}
	filter, err := productsFilter(c)
	if err != nil {
		return err
	}
	filter.Category = &category
	return s.listProducts(c, filter)
}

func productsFilter(c echo.Context) (queries.ProductsFilter, error) {
	available, err := queryBool(c, "available")
	if err != nil {
		return queries.ProductsFilter{}, err
	}
	featured, err := queryBool(c, "featured")
	if err != nil {
		return queries.ProductsFilter{}, err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return queries.ProductsFilter{}, err
	}
	return queries.ProductsFilter{
		Available: available,
		Featured:  featured,
		Search:    c.QueryParam("search"),
		Limit:     limit,
	}, nil
}

func (s *Server) listProducts(c echo.Context, filter queries.ProductsFilter) error {
	query, err := queries.NewListProductsQuery(filter)
	if err != nil {
		return err
	}
	views, err := s.h.ListProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return successList(c, "products", views)
}

func (s *Server) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(id, details, req.Featured)
	if err != nil {
		return err
	}
	if err := s.h.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderProduct(c, http.StatusCreated, id)
}

func (s *Server) GetProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return s.renderProduct(c, http.StatusOK, id)
}

func (s *Server) UpdateProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req productRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateProductCommand(id, details)
	if err != nil {
		return err
	}
	if err := s.h.Products.HandleUpdate(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderProduct(c, http.StatusOK, id)
}

func (s *Server) DeleteProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.Products.HandleDelete(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetProductAvailability toggles the flag when the body omits it.
func (s *Server) SetProductAvailability(c echo.Context) error {
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
	cmd, err := commands.NewSetProductAvailabilityCommand(id, req.Available)
	if err != nil {
		return err
	}
	if _, err := s.h.Products.HandleSetAvailability(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderProduct(c, http.StatusOK, id)
}

func (s *Server) SetProductFeatured(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Featured *bool `json:"featured"`
	}
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.Featured == nil {
		return errs.NewValueIsRequiredError("featured")
	}
	cmd, err := commands.NewSetProductFeaturedCommand(id, *req.Featured)
	if err != nil {
		return err
	}
	if err := s.h.Products.HandleSetFeatured(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.renderProduct(c, http.StatusOK, id)
}

func (s *Server) renderProduct(c echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return success(c, code, "product", view)
}
