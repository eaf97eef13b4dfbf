package rental_test

import (
	"errors"

	"github.com/ragultv/HouseRentalManagement/rental"
)

var errDiskFull = errors.New("disk full")

// memBackend keeps deep copies of what was saved, like a file would.
type memBackend struct {
	houses     []rental.House
	tenants    []rental.Tenant
	agreements []rental.Agreement

	failHouses     bool
	failTenants    bool
	failAgreements bool

	failLoadTenants bool

	saves int
}

func (b *memBackend) LoadHouses() ([]*rental.House, error) {
	out := []*rental.House{}
	for _, h := range b.houses {
		h := h
		out = append(out, &h)
	}
	return out, nil
}

func (b *memBackend) LoadTenants() ([]*rental.Tenant, error) {
	if b.failLoadTenants {
		return nil, errDiskFull
	}
	out := []*rental.Tenant{}
	for _, t := range b.tenants {
		t := t
		out = append(out, &t)
	}
	return out, nil
}

func (b *memBackend) LoadAgreements() ([]*rental.Agreement, error) {
	out := []*rental.Agreement{}
	for _, a := range b.agreements {
		a := a
		a.Payments = append([]rental.Payment(nil), a.Payments...)
		out = append(out, &a)
	}
	return out, nil
}

func (b *memBackend) SaveHouses(houses []*rental.House) error {
	if b.failHouses {
		return errDiskFull
	}
	b.saves++
	b.houses = b.houses[:0]
	for _, h := range houses {
		b.houses = append(b.houses, *h)
	}
	return nil
}

func (b *memBackend) SaveTenants(tenants []*rental.Tenant) error {
	if b.failTenants {
		return errDiskFull
	}
	b.saves++
	b.tenants = b.tenants[:0]
	for _, t := range tenants {
		b.tenants = append(b.tenants, *t)
	}
	return nil
}

func (b *memBackend) SaveAgreements(agreements []*rental.Agreement) error {
	if b.failAgreements {
		return errDiskFull
	}
	b.saves++
	b.agreements = b.agreements[:0]
	for _, a := range agreements {
		c := *a
		c.Payments = append([]rental.Payment(nil), a.Payments...)
		b.agreements = append(b.agreements, c)
	}
	return nil
}
