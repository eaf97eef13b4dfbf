package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragultv/HouseRentalManagement/rental"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestBackend_MissingFilesYieldEmptyCollections(t *testing.T) {
	b := NewBackend(t.TempDir())

	houses, err := b.LoadHouses()
	require.NoError(t, err)
	assert.Empty(t, houses)

	tenants, err := b.LoadTenants()
	require.NoError(t, err)
	assert.Empty(t, tenants)

	agreements, err := b.LoadAgreements()
	require.NoError(t, err)
	assert.Empty(t, agreements)
}

func TestBackend_WritesDocumentedFormat(t *testing.T) {
	dir := t.TempDir()
	b := NewBackend(dir)

	require.NoError(t, b.SaveHouses([]*rental.House{
		{ID: "H1", Location: "Lagos", Price: 500000, Bedrooms: 3, Owner: "Amaka", Booked: true, TenantID: "T1"},
		{ID: "H2", Location: "Abuja", Price: 1234.6, Bedrooms: 1, Owner: "Bola"},
	}))
	require.NoError(t, b.SaveTenants([]*rental.Tenant{
		{ID: "T1", Name: "Chidi", Contact: "0801", PreferredLocation: "Lagos"},
	}))
	require.NoError(t, b.SaveAgreements([]*rental.Agreement{
		{
			ID: "RA1", HouseID: "H1", TenantID: "T1",
			StartDate: date(2024, 1, 1), EndDate: date(2024, 12, 31), Deposit: 50000,
			Payments: []rental.Payment{
				{Date: date(2024, 2, 1), Amount: 50000},
				{Date: date(2024, 3, 1), Amount: 2500.5},
			},
		},
		{ID: "RA2", HouseID: "H2", TenantID: "T1", StartDate: date(2024, 5, 1), EndDate: date(2024, 6, 1)},
	}))

	assert.Equal(t,
		"H1,Lagos,500000,3,Amaka,true,T1\nH2,Abuja,1235,1,Bola,false,\n",
		readFile(t, filepath.Join(dir, DefaultHousesFile)))
	assert.Equal(t,
		"T1,Chidi,0801,Lagos\n",
		readFile(t, filepath.Join(dir, DefaultTenantsFile)))
	assert.Equal(t,
		"RA1,H1,T1,2024-01-01,2024-12-31,50000,[2024-02-01:50000;2024-03-01:2500.5]\n"+
			"RA2,H2,T1,2024-05-01,2024-06-01,0,[]\n",
		readFile(t, filepath.Join(dir, DefaultAgreementsFile)))
}

func TestBackend_RoundTrip(t *testing.T) {
	b := NewBackend(filepath.Join(t.TempDir(), "nested"))

	houses := []*rental.House{
		{ID: "H1", Location: "Lagos", Price: 500000, Bedrooms: 3, Owner: "Amaka", Booked: true, TenantID: "T1"},
		{ID: "H2", Location: "Port Harcourt", Price: 0, Bedrooms: 0, Owner: ""},
	}
	tenants := []*rental.Tenant{
		{ID: "T1", Name: "Chidi", Contact: "chidi@example.com", PreferredLocation: "Lagos"},
		{ID: "T2", Name: "Ngozi", Contact: "", PreferredLocation: ""},
	}
	agreements := []*rental.Agreement{
		{
			ID: "RA7", HouseID: "H1", TenantID: "T1",
			StartDate: date(2024, 1, 31), EndDate: date(2025, 1, 30), Deposit: 12.25,
			Payments: []rental.Payment{
				{Date: date(2024, 3, 1), Amount: 10},
				{Date: date(2024, 2, 1), Amount: -3.5},
			},
		},
	}

	require.NoError(t, b.SaveHouses(houses))
	require.NoError(t, b.SaveTenants(tenants))
	require.NoError(t, b.SaveAgreements(agreements))

	gotHouses, err := b.LoadHouses()
	require.NoError(t, err)
	assert.Equal(t, houses, gotHouses)

	gotTenants, err := b.LoadTenants()
	require.NoError(t, err)
	assert.Equal(t, tenants, gotTenants)

	gotAgreements, err := b.LoadAgreements()
	require.NoError(t, err)
	assert.Equal(t, agreements, gotAgreements)
}

func TestBackend_SkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	b := NewBackend(dir)

	writeFile(t, filepath.Join(dir, DefaultHousesFile), ""+
		"H1,Lagos,500000,3,Amaka,false,\n"+
		"H2,Lagos, Island,100,1,Bola,false,\n"+ // comma inside location
		"H3,Abuja,cheap,1,Bola,false,\n"+
		"H4,Abuja,10,1,Bola,true,\n"+ // booked without tenant
		"\n"+
		"H5,Kano,20,2,Musa,true,T1\r\n")
	writeFile(t, filepath.Join(dir, DefaultTenantsFile), ""+
		"T1,Ada,a@x,Lagos\n"+
		"T2,Bo,b@x\n")
	writeFile(t, filepath.Join(dir, DefaultAgreementsFile), ""+
		"RA1,H5,T1,2024-01-01,2024-12-31,50000.0,[2024-02-01:50000.0]\n"+
		"RA2,H5,T1,2024/01/01,2024-12-31,0,[]\n"+
		"RA3,H5,T1,2024-01-01,2024-12-31,0,[2024-02-01]\n"+
		"RA4\n"+
		"RA5,H5,T1,2024-03-01,2024-12-31,100\n")

	houses, err := b.LoadHouses()
	require.NoError(t, err)
	require.Len(t, houses, 2)
	assert.Equal(t, "H1", houses[0].ID)
	assert.Equal(t, "H5", houses[1].ID)
	assert.Equal(t, "T1", houses[1].TenantID)

	tenants, err := b.LoadTenants()
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "T1", tenants[0].ID)

	agreements, err := b.LoadAgreements()
	require.NoError(t, err)
	require.Len(t, agreements, 2)
	assert.Equal(t, "RA1", agreements[0].ID)
	assert.Equal(t, 50000.0, agreements[0].Deposit)
	assert.Equal(t, []rental.Payment{{Date: date(2024, 2, 1), Amount: 50000}}, agreements[0].Payments)
	assert.Equal(t, "RA5", agreements[1].ID)
	assert.Empty(t, agreements[1].Payments)
}

func TestBackend_CustomFileNames(t *testing.T) {
	dir := t.TempDir()
	b := NewBackend(dir, WithFileNames(FileNames{Houses: "h.csv"}))

	require.NoError(t, b.SaveHouses([]*rental.House{{ID: "H1", Location: "Lagos"}}))
	assert.FileExists(t, filepath.Join(dir, "h.csv"))
	assert.Equal(t, filepath.Join(dir, DefaultTenantsFile), b.TenantsPath())
}

func TestBackend_StoreReloadAfterMutations(t *testing.T) {
	dir := t.TempDir()

	store := rental.NewStore(NewBackend(dir))
	require.NoError(t, store.Load())
	m := rental.NewManager(store, nil)

	require.NoError(t, m.AddHouse("H1", "Lagos", 500000, 3, "Amaka"))
	require.NoError(t, m.AddHouse("H2", "Abuja", 200000, 2, "Bola"))
	require.NoError(t, m.RegisterTenant("T1", "Chidi", "0801", "Lagos"))
	_, err := m.BookHouse("H1", "T1", date(2024, 1, 1), date(2024, 12, 31), 50000)
	require.NoError(t, err)
	require.NoError(t, m.RecordPayment("RA1", date(2024, 2, 1), 50000))
	require.NoError(t, m.RecordPayment("RA1", date(2024, 3, 1), 50000))

	reloaded := rental.NewStore(NewBackend(dir))
	require.NoError(t, reloaded.Load())
	m2 := rental.NewManager(reloaded, nil)

	assert.Equal(t, m.Houses(), m2.Houses())
	assert.Equal(t, m.Tenants(), m2.Tenants())
	assert.Equal(t, m.Agreements(), m2.Agreements())
	assert.Equal(t, "RA2", reloaded.NextAgreementID())
}

func TestBackend_LongRowsRoundTrip(t *testing.T) {
	b := NewBackend(t.TempDir())

	tenants := []*rental.Tenant{
		{ID: "T1", Name: strings.Repeat("x", 70000), Contact: "0801", PreferredLocation: "Lagos"},
		{ID: "T2", Name: "Ngozi", Contact: "0802", PreferredLocation: "Abuja"},
	}
	require.NoError(t, b.SaveTenants(tenants))

	got, err := b.LoadTenants()
	require.NoError(t, err)
	assert.Equal(t, tenants, got)
}
