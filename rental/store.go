package rental

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Backend persists whole collections. Every Save call rewrites the full
// collection; a missing resource on Load yields an empty collection.
type Backend interface {
	LoadHouses() ([]*House, error)
	LoadTenants() ([]*Tenant, error)
	LoadAgreements() ([]*Agreement, error)
	SaveHouses(houses []*House) error
	SaveTenants(tenants []*Tenant) error
	SaveAgreements(agreements []*Agreement) error
}

// Store owns the in-memory collections and the agreement ID counter.
// It is not safe for concurrent use.
type Store struct {
	backend    Backend
	log        *zap.Logger
	houses     []*House
	tenants    []*Tenant
	agreements []*Agreement
	counter    int
}

type StoreOption func(*Store)

// WithLogger sets the logger used for load warnings.
func WithLogger(l *zap.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore creates an empty store on top of the given backend.
func NewStore(backend Backend, opts ...StoreOption) *Store {
	s := &Store{
		backend: backend,
		log:     zap.NewNop(),
		counter: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads houses, tenants and agreements, in that order. A collection
// that fails to load is left empty and the others are still loaded; the
// returned error combines every failure.
func (s *Store) Load() error {
	return multierr.Combine(
		s.LoadHouses(),
		s.LoadTenants(),
		s.LoadAgreements(),
	)
}

func (s *Store) LoadHouses() error {
	houses, err := s.backend.LoadHouses()
	if err != nil {
		return fmt.Errorf("failed to load houses: %w", err)
	}
	s.houses = houses
	s.log.Debug("houses loaded", zap.Int("count", len(houses)))
	return nil
}

func (s *Store) LoadTenants() error {
	tenants, err := s.backend.LoadTenants()
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}
	s.tenants = tenants
	s.log.Debug("tenants loaded", zap.Int("count", len(tenants)))
	return nil
}

// LoadAgreements replaces the agreements and advances the counter past
// every persisted agreement ID.
func (s *Store) LoadAgreements() error {
	agreements, err := s.backend.LoadAgreements()
	if err != nil {
		return fmt.Errorf("failed to load agreements: %w", err)
	}
	s.agreements = agreements

	for _, a := range agreements {
		seq, ok := AgreementSeq(a.ID)
		if !ok {
			s.log.Warn("agreement id has no numeric suffix", zap.String("agreement", a.ID))
			continue
		}
		if seq+1 > s.counter {
			s.counter = seq + 1
		}
	}
	for _, a := range s.DanglingAgreements() {
		s.log.Warn("agreement references missing house or tenant",
			zap.String("agreement", a.ID),
			zap.String("house", a.HouseID),
			zap.String("tenant", a.TenantID))
	}
	s.log.Debug("agreements loaded", zap.Int("count", len(agreements)), zap.Int("next", s.counter))
	return nil
}

func (s *Store) SaveHouses() error {
	if err := s.backend.SaveHouses(s.houses); err != nil {
		return fmt.Errorf("failed to save houses: %w", err)
	}
	return nil
}

func (s *Store) SaveTenants() error {
	if err := s.backend.SaveTenants(s.tenants); err != nil {
		return fmt.Errorf("failed to save tenants: %w", err)
	}
	return nil
}

func (s *Store) SaveAgreements() error {
	if err := s.backend.SaveAgreements(s.agreements); err != nil {
		return fmt.Errorf("failed to save agreements: %w", err)
	}
	return nil
}

func (s *Store) FindHouseByID(id string) *House {
	for _, h := range s.houses {
		if h.ID == id {
			return h
		}
	}
	return nil
}

func (s *Store) FindTenantByID(id string) *Tenant {
	for _, t := range s.tenants {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Store) FindAgreementByID(id string) *Agreement {
	for _, a := range s.agreements {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// DanglingAgreements returns agreements whose house or tenant is absent.
func (s *Store) DanglingAgreements() []*Agreement {
	var out []*Agreement
	for _, a := range s.agreements {
		if s.FindHouseByID(a.HouseID) == nil || s.FindTenantByID(a.TenantID) == nil {
			out = append(out, a)
		}
	}
	return out
}

// NextAgreementID mints a new agreement ID and advances the counter.
func (s *Store) NextAgreementID() string {
	id := fmt.Sprintf("%s%d", AgreementIDPrefix, s.counter)
	s.counter++
	return id
}

// Counter is the value the next minted agreement ID will carry.
func (s *Store) Counter() int {
	return s.counter
}

func (s *Store) Houses() []*House         { return s.houses }
func (s *Store) Tenants() []*Tenant       { return s.tenants }
func (s *Store) Agreements() []*Agreement { return s.agreements }

func (s *Store) addHouse(h *House) {
	s.houses = append(s.houses, h)
}

// removeHouse deletes the house and returns its former index, or -1.
func (s *Store) removeHouse(id string) (*House, int) {
	for i, h := range s.houses {
		if h.ID == id {
			s.houses = append(s.houses[:i:i], s.houses[i+1:]...)
			return h, i
		}
	}
	return nil, -1
}

func (s *Store) insertHouse(i int, h *House) {
	s.houses = append(s.houses[:i:i], append([]*House{h}, s.houses[i:]...)...)
}

func (s *Store) addTenant(t *Tenant) {
	s.tenants = append(s.tenants, t)
}

func (s *Store) addAgreement(a *Agreement) {
	s.agreements = append(s.agreements, a)
}

func (s *Store) dropLastHouse() {
	s.houses = s.houses[:len(s.houses)-1]
}

func (s *Store) dropLastTenant() {
	s.tenants = s.tenants[:len(s.tenants)-1]
}

func (s *Store) dropLastAgreement() {
	s.agreements = s.agreements[:len(s.agreements)-1]
}
