package file

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ragultv/HouseRentalManagement/rental"
)

// SaveHouses overwrites the houses file with every house.
func (b *Backend) SaveHouses(houses []*rental.House) error {
	return writeRows(b.HousesPath(), houses, formatHouse)
}

// SaveTenants overwrites the tenants file with every tenant.
func (b *Backend) SaveTenants(tenants []*rental.Tenant) error {
	return writeRows(b.TenantsPath(), tenants, formatTenant)
}

// SaveAgreements overwrites the agreements file with every agreement.
func (b *Backend) SaveAgreements(agreements []*rental.Agreement) error {
	return writeRows(b.AgreementsPath(), agreements, formatAgreement)
}

// writeRows truncates path and writes one line per row. The write is not
// atomic: a crash part way through leaves a truncated file.
func writeRows[T any](path string, rows []*T, format func(*T) string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		if _, err := w.WriteString(format(row) + "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
