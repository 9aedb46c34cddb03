package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	DefaultImage              = "default-product.jpg"
	DefaultPreparationMinutes = 15
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Details groups the editable attributes of a product. Zero values of Image and
// PreparationMinutes are replaced with their defaults.
type Details struct {
	Name               string
	Description        string
	Price              kernel.Money
	Category           Category
	Image              string
	PreparationMinutes int
	Ingredients        []string
	Allergens          []string
	Tags               []string
	Calories           *int
}

// Product is a menu item. Availability decides whether new orders may include it.
type Product struct {
	id        kernel.UUID
	details   Details
	available bool
	featured  bool
	createdAt time.Time
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewProduct creates an available, non featured product.
//
// Example:
//
//	price, _ := kernel.MoneyFromFloat(28.9)
//	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
//	    Name:        "Lomo saltado",
//	    Description: "Stir-fried beef with onions and tomatoes",
//	    Price:       price,
//	    Category:    product.MainCourse,
//	}, time.Now())
func NewProduct(id kernel.UUID, details Details, now time.Time) (*Product, error) {
	p := &Product{
		available: true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setDetails(details)); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(
	id kernel.UUID,
	details Details,
	available, featured bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	p := &Product{
		available: available,
		featured:  featured,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setDetails(details)); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.details.Name
}

func (p *Product) Description() string {
	return p.details.Description
}

func (p *Product) Price() kernel.Money {
	return p.details.Price
}

func (p *Product) Category() Category {
	return p.details.Category
}

func (p *Product) Image() string {
	return p.details.Image
}

func (p *Product) PreparationMinutes() int {
	return p.details.PreparationMinutes
}

func (p *Product) Ingredients() []string {
	return append([]string(nil), p.details.Ingredients...)
}

func (p *Product) Allergens() []string {
	return append([]string(nil), p.details.Allergens...)
}

func (p *Product) Tags() []string {
	return append([]string(nil), p.details.Tags...)
}

func (p *Product) Calories() *int {
	return p.details.Calories
}

func (p *Product) IsAvailable() bool {
	return p.available
}

func (p *Product) IsFeatured() bool {
	return p.featured
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Details returns a copy of the editable attributes, used to apply partial updates.
func (p *Product) Details() Details {
	d := p.details
	d.Ingredients = p.Ingredients()
	d.Allergens = p.Allergens()
	d.Tags = p.Tags()
	return d
}

// Update replaces the editable attributes. On failure the product is left unchanged.
func (p *Product) Update(details Details, now time.Time) error {
	candidate := *p
	if err := candidate.setDetails(details); err != nil {
		return err
	}
	p.details = candidate.details
	p.updatedAt = now
	return nil
}

func (p *Product) SetAvailable(available bool, now time.Time) {
	p.available = available
	p.updatedAt = now
}

func (p *Product) SetFeatured(featured bool, now time.Time) {
	p.featured = featured
	p.updatedAt = now
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	if d.Image == "" {
		d.Image = DefaultImage
	}
	if d.PreparationMinutes == 0 {
		d.PreparationMinutes = DefaultPreparationMinutes
	}

	var problems []error
	if d.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if d.Description == "" {
		problems = append(problems, errs.NewValueIsRequiredError("description"))
	}
	if d.Price.IsNegative() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", d.Price)))
	}
	if err := d.Category.Validate(); err != nil {
		problems = append(problems, err)
	}
	if d.PreparationMinutes < 1 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"preparationMinutes", fmt.Errorf("%d is less than 1", d.PreparationMinutes)))
	}
	if d.Calories != nil && *d.Calories < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"calories", fmt.Errorf("%d is negative", *d.Calories)))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	p.details = d
	return nil
}
