// Package shop provides the Shop aggregate: the multi-tenancy boundary.
// Every other entity belongs to exactly one shop, and the shop's labor rate
// is the billing default for timesheet entries without an explicit rate.
package shop

import (
	"errors"
	"fmt"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrShopIsNotConstructed is returned when a Shop was not created through NewShop.
var ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop")

// Shop is one maintenance shop (tenant).
type Shop struct {
	id        kernel.UUID
	name      string
	laborRate decimal.Decimal

	isConstructed bool
}

// NewShop creates a shop with its default hourly labor rate.
func NewShop(id kernel.UUID, name string, laborRate decimal.Decimal) (*Shop, error) {
	s := &Shop{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setLaborRate(laborRate),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the instance was created through the constructor.
func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

// ID returns the shop's unique identifier.
func (s *Shop) ID() kernel.UUID { return s.id }

// Name returns the shop name.
func (s *Shop) Name() string { return s.name }

// LaborRate returns the default hourly labor rate.
func (s *Shop) LaborRate() decimal.Decimal { return s.laborRate }

// SetLaborRate updates the default hourly labor rate.
func (s *Shop) SetLaborRate(rate decimal.Decimal) error {
	return s.setLaborRate(rate)
}

func (s *Shop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shop) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Shop) setLaborRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("laborRate",
			fmt.Errorf("%s is negative", rate))
	}
	s.laborRate = rate
	return nil
}
