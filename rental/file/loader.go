package file

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ragultv/HouseRentalManagement/rental"
)

// LoadHouses reads the houses file. A missing file yields no houses.
func (b *Backend) LoadHouses() ([]*rental.House, error) {
	return loadRows(b, b.HousesPath(), parseHouse)
}

// LoadTenants reads the tenants file. A missing file yields no tenants.
func (b *Backend) LoadTenants() ([]*rental.Tenant, error) {
	return loadRows(b, b.TenantsPath(), parseTenant)
}

// LoadAgreements reads the agreements file. A missing file yields no agreements.
func (b *Backend) LoadAgreements() ([]*rental.Agreement, error) {
	return loadRows(b, b.AgreementsPath(), parseAgreement)
}

// maxRowSize bounds a single row; payment lists grow without limit so the
// scanner default of 64KB is not enough.
const maxRowSize = 16 * 1024 * 1024

// loadRows parses path line by line. Malformed rows are skipped with a
// warning; blank lines are ignored.
func loadRows[T any](b *Backend, path string, parse func(string) (*T, error)) ([]*T, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		b.log.Debug("data file not found, starting empty", zap.String("path", path))
		return []*T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows := []*T{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, err := parse(line)
		if err != nil {
			b.log.Warn("skipping malformed row",
				zap.String("path", path),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}
