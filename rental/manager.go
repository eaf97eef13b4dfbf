package rental

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// Manager applies the rental business rules on top of a Store. Every
// mutating operation validates first, then mutates memory, then persists;
// a failed save rolls the in-memory change back.
type Manager struct {
	store *Store
	log   *zap.Logger
}

// NewManager creates a Manager over an already loaded store
func NewManager(store *Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, log: log}
}

// Store exposes the underlying record store.
func (m *Manager) Store() *Store {
	return m.store
}

func (m *Manager) AddHouse(id, location string, price float64, bedrooms int, owner string) error {
	const op = "add house"
	if id == "" {
		return newError(op, KindValidation, id, "house ID cannot be empty")
	}
	if price < 0 {
		return newError(op, KindValidation, id, "price cannot be negative")
	}
	if m.store.FindHouseByID(id) != nil {
		return newError(op, KindDuplicateKey, id, "house ID already exists")
	}

	m.store.addHouse(&House{
		ID:       id,
		Location: location,
		Price:    price,
		Bedrooms: bedrooms,
		Owner:    owner,
	})
	if err := m.store.SaveHouses(); err != nil {
		m.store.dropLastHouse()
		return err
	}

	m.log.Info("house added", zap.String("house", id))
	return nil
}

func (m *Manager) RemoveHouse(id string) error {
	const op = "remove house"
	house := m.store.FindHouseByID(id)
	if house == nil {
		return newError(op, KindNotFound, id, "house not found")
	}
	if house.Booked {
		return newError(op, KindInvalidState, id, "cannot remove booked house")
	}

	removed, idx := m.store.removeHouse(id)
	if err := m.store.SaveHouses(); err != nil {
		m.store.insertHouse(idx, removed)
		return err
	}

	m.log.Info("house removed", zap.String("house", id))
	return nil
}

// SearchHouses returns unbooked houses in location priced at most maxPrice.
func (m *Manager) SearchHouses(location string, maxPrice float64) []House {
	return m.availableHouses(func(h *House) bool {
		return strings.EqualFold(h.Location, location) && h.Price <= maxPrice
	})
}

func (m *Manager) RegisterTenant(id, name, contact, preferredLocation string) error {
	const op = "register tenant"
	if id == "" {
		return newError(op, KindValidation, id, "tenant ID cannot be empty")
	}
	if m.store.FindTenantByID(id) != nil {
		return newError(op, KindDuplicateKey, id, "tenant ID already exists")
	}

	m.store.addTenant(&Tenant{
		ID:                id,
		Name:              name,
		Contact:           contact,
		PreferredLocation: preferredLocation,
	})
	if err := m.store.SaveTenants(); err != nil {
		m.store.dropLastTenant()
		return err
	}

	m.log.Info("tenant registered", zap.String("tenant", id))
	return nil
}

// MatchTenantWithHouses returns unbooked houses in the tenant's preferred location.
func (m *Manager) MatchTenantWithHouses(tenantID string) ([]House, error) {
	tenant := m.store.FindTenantByID(tenantID)
	if tenant == nil {
		return nil, newError("match tenant", KindNotFound, tenantID, "tenant not found")
	}
	return m.availableHouses(func(h *House) bool {
		return strings.EqualFold(h.Location, tenant.PreferredLocation)
	}), nil
}

// BookHouse creates an agreement and marks the house as booked by the tenant.
func (m *Manager) BookHouse(houseID, tenantID string, start, end time.Time, deposit float64) (*Agreement, error) {
	const op = "book house"
	if houseID == "" || tenantID == "" {
		return nil, newError(op, KindValidation, houseID, "house and tenant IDs cannot be empty")
	}
	house := m.store.FindHouseByID(houseID)
	if house == nil {
		return nil, newError(op, KindNotFound, houseID, "house not found")
	}
	if house.Booked {
		return nil, newError(op, KindInvalidState, houseID, "house already booked")
	}
	if m.store.FindTenantByID(tenantID) == nil {
		return nil, newError(op, KindNotFound, tenantID, "tenant not found")
	}
	if deposit < 0 {
		return nil, newError(op, KindValidation, houseID, "deposit cannot be negative")
	}

	agreement := &Agreement{
		ID:        m.store.NextAgreementID(),
		HouseID:   houseID,
		TenantID:  tenantID,
		StartDate: Date(start),
		EndDate:   Date(end),
		Deposit:   deposit,
	}
	m.store.addAgreement(agreement)
	house.Booked = true
	house.TenantID = tenantID

	rollback := func() {
		m.store.dropLastAgreement()
		house.Booked = false
		house.TenantID = ""
	}
	if err := m.store.SaveHouses(); err != nil {
		rollback()
		return nil, err
	}
	if err := m.store.SaveAgreements(); err != nil {
		rollback()
		// houses.txt already says booked; put it back in line with memory
		if rerr := m.store.SaveHouses(); rerr != nil {
			m.log.Error("failed to restore houses after booking failure",
				zap.String("house", houseID), zap.Error(rerr))
		}
		return nil, err
	}

	m.log.Info("house booked",
		zap.String("agreement", agreement.ID),
		zap.String("house", houseID),
		zap.String("tenant", tenantID))
	return cloneAgreement(agreement), nil
}

func (m *Manager) RecordPayment(agreementID string, date time.Time, amount float64) error {
	agreement := m.store.FindAgreementByID(agreementID)
	if agreement == nil {
		return newError("record payment", KindNotFound, agreementID, "agreement not found")
	}

	prev := agreement.Payments
	agreement.Payments = append(agreement.Payments[:len(prev):len(prev)], Payment{Date: Date(date), Amount: amount})
	if err := m.store.SaveAgreements(); err != nil {
		agreement.Payments = prev
		return err
	}

	m.log.Info("payment recorded", zap.String("agreement", agreementID), zap.Float64("amount", amount))
	return nil
}

func (m *Manager) CheckDueDate(agreementID string, today time.Time) (DueStatus, error) {
	agreement := m.store.FindAgreementByID(agreementID)
	if agreement == nil {
		return DueStatus{}, newError("check due date", KindNotFound, agreementID, "agreement not found")
	}
	return DueStatus{
		AgreementID: agreementID,
		NextDueDate: agreement.NextDueDate(),
		Overdue:     agreement.IsOverdue(today),
	}, nil
}

// Houses returns a snapshot of every house.
func (m *Manager) Houses() []House {
	out := make([]House, 0, len(m.store.Houses()))
	for _, h := range m.store.Houses() {
		out = append(out, *h)
	}
	return out
}

func (m *Manager) Tenants() []Tenant {
	out := make([]Tenant, 0, len(m.store.Tenants()))
	for _, t := range m.store.Tenants() {
		out = append(out, *t)
	}
	return out
}

func (m *Manager) Agreements() []Agreement {
	out := make([]Agreement, 0, len(m.store.Agreements()))
	for _, a := range m.store.Agreements() {
		out = append(out, *cloneAgreement(a))
	}
	return out
}

func (m *Manager) availableHouses(match func(*House) bool) []House {
	out := []House{}
	for _, h := range m.store.Houses() {
		if !h.Booked && match(h) {
			out = append(out, *h)
		}
	}
	return out
}
