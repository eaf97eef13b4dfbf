package rental_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragultv/HouseRentalManagement/rental"
)

func TestStore_RecoversAgreementCounter(t *testing.T) {
	backend := &memBackend{
		houses:  []rental.House{{ID: "H1", Booked: true, TenantID: "T1"}},
		tenants: []rental.Tenant{{ID: "T1"}},
		agreements: []rental.Agreement{
			{ID: "RA3", HouseID: "H1", TenantID: "T1"},
			{ID: "RA10", HouseID: "H1", TenantID: "T1"},
			{ID: "legacy", HouseID: "H1", TenantID: "T1"},
		},
	}

	store := rental.NewStore(backend)
	require.NoError(t, store.Load())

	assert.Equal(t, 11, store.Counter())
	assert.Equal(t, "RA11", store.NextAgreementID())
	assert.Equal(t, "RA12", store.NextAgreementID())
	assert.Len(t, store.Agreements(), 3)
}

func TestStore_CounterStartsAtOne(t *testing.T) {
	store := rental.NewStore(&memBackend{})
	require.NoError(t, store.Load())
	assert.Equal(t, "RA1", store.NextAgreementID())
}

func TestStore_KeepsDanglingAgreements(t *testing.T) {
	backend := &memBackend{
		houses:  []rental.House{{ID: "H1"}},
		tenants: []rental.Tenant{{ID: "T1"}},
		agreements: []rental.Agreement{
			{ID: "RA1", HouseID: "H1", TenantID: "T1"},
			{ID: "RA2", HouseID: "H9", TenantID: "T1"},
			{ID: "RA3", HouseID: "H1", TenantID: "T9"},
		},
	}

	store := rental.NewStore(backend)
	require.NoError(t, store.Load())

	dangling := store.DanglingAgreements()
	require.Len(t, dangling, 2)
	assert.Equal(t, "RA2", dangling[0].ID)
	assert.Equal(t, "RA3", dangling[1].ID)
	assert.NotNil(t, store.FindAgreementByID("RA2"))
	assert.Nil(t, store.FindHouseByID("H9"))
	assert.Nil(t, store.FindTenantByID("T9"))
}

func TestManager_AgreementIDsGrowAcrossReload(t *testing.T) {
	backend := &memBackend{}
	m := newManager(t, backend)
	require.NoError(t, m.AddHouse("H1", "Lagos", 1, 1, "A"))
	require.NoError(t, m.AddHouse("H2", "Lagos", 1, 1, "A"))
	require.NoError(t, m.RegisterTenant("T1", "Ada", "a@x", "Lagos"))
	first, err := m.BookHouse("H1", "T1", day(t, "2024-01-01"), day(t, "2024-12-31"), 0)
	require.NoError(t, err)

	reloaded := newManager(t, backend)
	second, err := reloaded.BookHouse("H2", "T1", day(t, "2024-01-01"), day(t, "2024-12-31"), 0)
	require.NoError(t, err)

	n1, _ := rental.AgreementSeq(first.ID)
	n2, _ := rental.AgreementSeq(second.ID)
	assert.Greater(t, n2, n1)
}

func TestStore_LoadKeepsCollectionsThatLoaded(t *testing.T) {
	backend := &memBackend{
		houses:          []rental.House{{ID: "H1", Booked: true, TenantID: "T1"}},
		tenants:         []rental.Tenant{{ID: "T1"}},
		agreements:      []rental.Agreement{{ID: "RA4", HouseID: "H1", TenantID: "T1"}},
		failLoadTenants: true,
	}

	store := rental.NewStore(backend)
	err := store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)

	assert.Len(t, store.Houses(), 1)
	assert.Empty(t, store.Tenants())
	assert.Len(t, store.Agreements(), 1)
	assert.Equal(t, "RA5", store.NextAgreementID())

	m := rental.NewManager(store, nil)
	require.NoError(t, m.AddHouse("H2", "Abuja", 1, 1, "Bola"))
	require.Len(t, backend.houses, 2)
	assert.Equal(t, "H1", backend.houses[0].ID)
	assert.Equal(t, "H2", backend.houses[1].ID)
}
