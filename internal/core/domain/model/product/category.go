package product

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Category is the closed set of menu sections.
type Category string

const (
	Starters   Category = "starters"
	MainCourse Category = "main_course"
	Desserts   Category = "desserts"
	Drinks     Category = "drinks"
	Sides      Category = "sides"
)

// Categories lists every valid category in menu order.
func Categories() []Category {
	return []Category{Starters, MainCourse, Desserts, Drinks, Sides}
}

// ParseCategory maps a raw value onto a Category.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c Category) Validate() error {
	for _, valid := range Categories() {
		if c == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", string(c)))
}

func (c Category) String() string {
	return string(c)
}
