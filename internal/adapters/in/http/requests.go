package http

import (
	"errors"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/services"
)

type addressRequest struct {
	Street    string `json:"street"`
	Number    string `json:"number"`
	District  string `json:"district"`
	City      string `json:"city"`
	Reference string `json:"reference"`
	IsDefault *bool  `json:"isDefault"`
}

func (r addressRequest) details() customer.AddressDetails {
	return customer.AddressDetails{
		Street:    r.Street,
		Number:    r.Number,
		District:  r.District,
		City:      r.City,
		Reference: r.Reference,
	}
}

func (r addressRequest) deliveryAddress() (order.DeliveryAddress, error) {
	return order.NewDeliveryAddress(r.Street, r.Number, r.District, r.City, r.Reference)
}

func (r addressRequest) isDefault() bool {
	return r.IsDefault != nil && *r.IsDefault
}

type contactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

func (r contactRequest) contact() (customer.Contact, error) {
	email, err := kernel.NewEmail(r.Email)
	if err != nil {
		return customer.Contact{}, err
	}
	return customer.Contact{FirstName: r.FirstName, LastName: r.LastName, Email: email, Phone: r.Phone}, nil
}

// optionalPassword hashes the password only when one was sent.
func optionalPassword(plain string) (*kernel.PasswordHash, error) {
	if plain == "" {
		return nil, nil
	}
	hash, err := kernel.HashPassword(plain)
	if err != nil {
		return nil, err
	}
	return &hash, nil
}

type createCustomerRequest struct {
	contactRequest
	Addresses []addressRequest `json:"addresses"`
}

func (r createCustomerRequest) command(id kernel.UUID) (commands.CreateCustomerCommand, error) {
	contact, err := r.contact()
	if err != nil {
		return commands.CreateCustomerCommand{}, err
	}
	password, err := kernel.HashPassword(r.Password)
	if err != nil {
		return commands.CreateCustomerCommand{}, err
	}
	addresses := make([]commands.NewAddress, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		addresses = append(addresses, commands.NewAddress{ID: kernel.NewUUID(), Details: a.details(), IsDefault: a.isDefault()})
	}
	return commands.NewCreateCustomerCommand(id, contact, password, addresses)
}

type updateCustomerRequest struct {
	contactRequest
	Active *bool `json:"active"`
}

func (r updateCustomerRequest) command(id kernel.UUID) (commands.UpdateCustomerCommand, error) {
	contact, err := r.contact()
	if err != nil {
		return commands.UpdateCustomerCommand{}, err
	}
	password, err := optionalPassword(r.Password)
	if err != nil {
		return commands.UpdateCustomerCommand{}, err
	}
	return commands.NewUpdateCustomerCommand(id, contact, password, r.Active)
}

type productRequest struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	Category           string   `json:"category"`
	Image              string   `json:"image"`
	PreparationMinutes int      `json:"preparationMinutes"`
	Featured           bool     `json:"featured"`
	Ingredients        []string `json:"ingredients"`
	Allergens          []string `json:"allergens"`
	Tags               []string `json:"tags"`
	Calories           *int     `json:"calories"`
}

func (r productRequest) details() (product.Details, error) {
	price, err := kernel.MoneyFromFloat(r.Price)
	category, categoryErr := product.ParseCategory(r.Category)
	if err := errors.Join(err, categoryErr); err != nil {
		return product.Details{}, err
	}
	return product.Details{
		Name:               r.Name,
		Description:        r.Description,
		Price:              price,
		Category:           category,
		Image:              r.Image,
		PreparationMinutes: r.PreparationMinutes,
		Ingredients:        r.Ingredients,
		Allergens:          r.Allergens,
		Tags:               r.Tags,
		Calories:           r.Calories,
	}, nil
}

type orderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

type chargesRequest struct {
	ShippingCost *float64 `json:"shippingCost"`
	Discount     *float64 `json:"discount"`
}

func (r chargesRequest) charges() (order.Charges, error) {
	var charges order.Charges
	if r.ShippingCost != nil {
		shipping, err := kernel.MoneyFromFloat(*r.ShippingCost)
		if err != nil {
			return order.Charges{}, err
		}
		charges.Shipping = &shipping
	}
	if r.Discount != nil {
		discount, err := kernel.MoneyFromFloat(*r.Discount)
		if err != nil {
			return order.Charges{}, err
		}
		charges.Discount = &discount
	}
	return charges, nil
}

type createOrderRequest struct {
	chargesRequest
	CustomerID       string             `json:"customerId"`
	Items            []orderItemRequest `json:"items"`
	DeliveryAddress  addressRequest     `json:"deliveryAddress"`
	PaymentMethod    string             `json:"paymentMethod"`
	Notes            string             `json:"notes"`
	EstimatedMinutes *int               `json:"estimatedMinutes"`
	Status           *string            `json:"status"`
}

func (r createOrderRequest) command(id kernel.UUID) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromString(r.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lines := make([]services.LineRequest, 0, len(r.Items))
	for _, item := range r.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		lines = append(lines, services.LineRequest{ProductID: productID, Quantity: item.Quantity, Notes: item.Notes})
	}

	address, err := r.DeliveryAddress.deliveryAddress()
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	payment, err := order.ParsePaymentMethod(r.PaymentMethod)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	charges, err := r.charges()
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	var status *order.Status
	if r.Status != nil {
		parsed, err := order.ParseStatus(*r.Status)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		status = &parsed
	}

	return commands.NewCreateOrderCommand(id, customerID, lines, order.Details{
		Address:          address,
		Payment:          payment,
		Charges:          charges,
		Notes:            r.Notes,
		EstimatedMinutes: r.EstimatedMinutes,
	}, status)
}

type updateOrderRequest struct {
	chargesRequest
	Notes            *string         `json:"notes"`
	EstimatedMinutes *int            `json:"estimatedMinutes"`
	DeliveryAddress  *addressRequest `json:"deliveryAddress"`
	PaymentMethod    *string         `json:"paymentMethod"`
}

func (r updateOrderRequest) changes() (order.Changes, error) {
	charges, err := r.charges()
	if err != nil {
		return order.Changes{}, err
	}
	changes := order.Changes{
		Notes:            r.Notes,
		EstimatedMinutes: r.EstimatedMinutes,
		Charges:          charges,
	}
	if r.DeliveryAddress != nil {
		address, err := r.DeliveryAddress.deliveryAddress()
		if err != nil {
			return order.Changes{}, err
		}
		changes.DeliveryAddress = &address
	}
	if r.PaymentMethod != nil {
		payment, err := order.ParsePaymentMethod(*r.PaymentMethod)
		if err != nil {
			return order.Changes{}, err
		}
		changes.PaymentMethod = &payment
	}
	return changes, nil
}

type documentRequest struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type vehicleRequest struct {
	Type  string `json:"type"`
	Plate string `json:"plate"`
	Model string `json:"model"`
}

type courierProfileRequest struct {
	contactRequest
	Document  documentRequest `json:"document"`
	BirthDate string          `json:"birthDate"`
	Vehicle   vehicleRequest  `json:"vehicle"`
}

func (r courierProfileRequest) profile() (courier.Profile, error) {
	email, err := kernel.NewEmail(r.Email)
	birthDate, dateErr := parseDate("birthDate", r.BirthDate)
	if err := errors.Join(err, dateErr); err != nil {
		return courier.Profile{}, err
	}
	return courier.Profile{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     email,
		Phone:     r.Phone,
		Document:  courier.Document{Type: courier.DocumentType(r.Document.Type), Number: r.Document.Number},
		BirthDate: birthDate,
		Vehicle: courier.Vehicle{
			Type:  courier.VehicleType(r.Vehicle.Type),
			Plate: r.Vehicle.Plate,
			Model: r.Vehicle.Model,
		},
	}, nil
}

type createCourierRequest struct {
	courierProfileRequest
	Zones []string `json:"zones"`
}

func (r createCourierRequest) command(id kernel.UUID) (commands.CreateCourierCommand, error) {
	profile, err := r.profile()
	if err != nil {
		return commands.CreateCourierCommand{}, err
	}
	password, err := kernel.HashPassword(r.Password)
	if err != nil {
		return commands.CreateCourierCommand{}, err
	}
	return commands.NewCreateCourierCommand(id, profile, password, r.Zones)
}

type updateCourierRequest struct {
	courierProfileRequest
	Active *bool `json:"active"`
}

func (r updateCourierRequest) command(id kernel.UUID) (commands.UpdateCourierCommand, error) {
	profile, err := r.profile()
	if err != nil {
		return commands.UpdateCourierCommand{}, err
	}
	password, err := optionalPassword(r.Password)
	if err != nil {
		return commands.UpdateCourierCommand{}, err
	}
	return commands.NewUpdateCourierCommand(id, profile, password, r.Active)
}
