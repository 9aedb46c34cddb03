package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/pkg/health"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

type Handlers struct {
	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler
	Addresses      commands.AddressCommandsHandler

	CreateProduct commands.CreateProductCommandHandler
	Products      commands.ProductCommandsHandler

	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	AssignCourier     commands.AssignCourierCommandHandler
	RateOrder         commands.RateOrderCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler

	CreateCourier commands.CreateCourierCommandHandler
	DeleteCourier commands.DeleteCourierCommandHandler
	Couriers      commands.CourierCommandsHandler

	GetCustomer        queries.GetCustomerQueryHandler
	GetCustomerByEmail queries.GetCustomerByEmailQueryHandler
	ListCustomers      queries.ListCustomersQueryHandler
	GetProduct         queries.GetProductQueryHandler
	ListProducts       queries.ListProductsQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
	GetCourier         queries.GetCourierQueryHandler
	ListCouriers       queries.ListCouriersQueryHandler
	AvailableCouriers  queries.ListAvailableCouriersQueryHandler
	CourierStats       queries.GetCourierStatsQueryHandler
}

type Server struct {
	h        Handlers
	checkers []health.Checker
}

func NewServer(handlers Handlers, checkers ...health.Checker) *Server {
	return &Server{h: handlers, checkers: checkers}
}

// Options configures the echo instance built by NewEcho.
type Options struct {
	Logger         *zap.Logger
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
	Validator      echo.MiddlewareFunc
}

// NewEcho builds the echo instance with the middleware chain and routes.
func NewEcho(s *Server, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(AccessLog(opts.Logger))
	e.Use(middleware.CORS())
	if opts.RateLimitRPS > 0 {
		e.Use(RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	}
	e.Use(Authenticate(opts.JWTSecret))
	if opts.Validator != nil {
		e.Use(opts.Validator)
	}

	s.Register(e)
	return e
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.POST("/customers/:id/addresses", s.AddAddress)
	api.PUT("/customers/:id/addresses/:addressId", s.UpdateAddress)
	api.DELETE("/customers/:id/addresses/:addressId", s.RemoveAddress)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/category/:category", s.ListProductsByCategory)
	api.GET("/products/:id", s.GetProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
	api.PATCH("/products/:id/availability", s.SetProductAvailability)
	api.PATCH("/products/:id/featured", s.SetProductFeatured)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/customer/:customerId", s.ListCustomerOrders)
	api.GET("/orders/courier/:courierId", s.ListCourierOrders)
	api.GET("/orders/status/:status", s.ListOrdersByStatus)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.PATCH("/orders/:id/courier", s.AssignCourier)
	api.PATCH("/orders/:id/rating", s.RateOrder)
	api.PATCH("/orders/:id/cancel", s.CancelOrder)

	api.GET("/couriers", s.ListCouriers)
	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers/available", s.ListAvailableCouriers)
	api.GET("/couriers/:id", s.GetCourier)
	api.PUT("/couriers/:id", s.UpdateCourier)
	api.DELETE("/couriers/:id", s.DeleteCourier)
	api.PATCH("/couriers/:id/availability", s.SetCourierAvailability)
	api.PATCH("/couriers/:id/location", s.UpdateCourierLocation)
	api.PATCH("/couriers/:id/zones", s.UpdateCourierZones)
	api.GET("/couriers/:id/stats", s.GetCourierStats)
}

func (s *Server) Health(c echo.Context) error {
	report := health.Run(c.Request().Context(), healthTimeout, s.checkers...)
	code := http.StatusOK
	if !report.Healthy() {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, report)
}
