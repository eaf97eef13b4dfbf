package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ragultv/HouseRentalManagement/internal/config"
	"github.com/ragultv/HouseRentalManagement/internal/logging"
	"github.com/ragultv/HouseRentalManagement/rental"
	"github.com/ragultv/HouseRentalManagement/rental/driver"
	"github.com/ragultv/HouseRentalManagement/rental/file"
)

// session is one loaded store plus the resources to release afterwards.
type session struct {
	manager *rental.Manager
	log     *zap.Logger
	close   func()
}

// openSession loads configuration, builds the configured backend and loads
// every collection. A collection that fails to load is logged and left
// empty; the others are kept.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.Files.DataDir = dir
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Log.Level = "debug"
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Environment: cfg.Log.Environment})
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	log.Debug("configuration loaded", cfg.Fields()...)

	backend, closeBackend, err := newBackend(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	store := rental.NewStore(backend, rental.WithLogger(log))
	if err := store.Load(); err != nil {
		log.Error("error loading records, continuing with the collections that loaded", zap.Error(err))
	}

	return &session{
		manager: rental.NewManager(store, log),
		log:     log,
		close: func() {
			closeBackend()
			_ = log.Sync()
		},
	}, nil
}

func newBackend(cfg *config.Config, log *zap.Logger) (rental.Backend, func(), error) {
	switch cfg.Store {
	case config.StoreSQL:
		db, err := driver.Open(cfg.DB.URL, cfg.DB.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		backend, err := driver.NewBackend(db, log)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		return backend, closeDB, nil
	default:
		backend := file.NewBackend(cfg.Files.DataDir,
			file.WithFileNames(file.FileNames{
				Houses:     cfg.Files.HousesFile,
				Tenants:    cfg.Files.TenantsFile,
				Agreements: cfg.Files.AgreementsFile,
			}),
			file.WithLogger(log))
		return backend, func() {}, nil
	}
}

// withManager runs fn against a freshly loaded session.
func withManager(cmd *cobra.Command, fn func(m *rental.Manager) error) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	return fn(s.manager)
}

func parseAmount(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

func parseCount(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

func parseDate(name, s string) (time.Time, error) {
	d, err := rental.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (want yyyy-MM-dd)", name, s)
	}
	return d, nil
}

func printHouses(cmd *cobra.Command, houses []rental.House) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d house(s)\n", len(houses))
	if len(houses) == 0 {
		return
	}
	fmt.Fprintf(out, "%-10s  %-20s  %12s  %-8s  %-16s  %-10s\n", "ID", "Location", "Price", "Bedrooms", "Owner", "Tenant")
	for _, h := range houses {
		fmt.Fprintf(out, "%-10s  %-20s  %12.0f  %-8d  %-16s  %-10s\n", h.ID, h.Location, h.Price, h.Bedrooms, h.Owner, h.TenantID)
	}
}
