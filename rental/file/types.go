package file

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ragultv/HouseRentalManagement/rental"
)

// Default file names inside the data directory
const (
	DefaultHousesFile     = "houses.txt"
	DefaultTenantsFile    = "tenants.txt"
	DefaultAgreementsFile = "agreements.txt"
)

// FileNames names the three resources of a data directory
type FileNames struct {
	Houses     string
	Tenants    string
	Agreements string
}

// Backend stores each collection in its own comma-delimited text file,
// one row per entity. Fields are not escaped, so a comma inside a free-text
// value corrupts that row.
type Backend struct {
	directory string
	names     FileNames
	log       *zap.Logger
}

var _ rental.Backend = (*Backend)(nil)

type Option func(*Backend)

// WithFileNames overrides the default file names; empty entries keep the default.
func WithFileNames(names FileNames) Option {
	return func(b *Backend) {
		if names.Houses != "" {
			b.names.Houses = names.Houses
		}
		if names.Tenants != "" {
			b.names.Tenants = names.Tenants
		}
		if names.Agreements != "" {
			b.names.Agreements = names.Agreements
		}
	}
}

// WithLogger sets the logger used to report skipped rows.
func WithLogger(l *zap.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBackend creates a flat-file backend rooted at directory
func NewBackend(directory string, opts ...Option) *Backend {
	if directory == "" {
		directory = "."
	}
	b := &Backend{
		directory: directory,
		names: FileNames{
			Houses:     DefaultHousesFile,
			Tenants:    DefaultTenantsFile,
			Agreements: DefaultAgreementsFile,
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) HousesPath() string     { return filepath.Join(b.directory, b.names.Houses) }
func (b *Backend) TenantsPath() string    { return filepath.Join(b.directory, b.names.Tenants) }
func (b *Backend) AgreementsPath() string { return filepath.Join(b.directory, b.names.Agreements) }
