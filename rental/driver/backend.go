package driver

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ragultv/HouseRentalManagement/rental"
)

// Open connects to postgres for postgres:// DSNs and to sqlite otherwise
// (a file path or ":memory:").
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty")
	}

	var dialector gorm.Dialector
	isPostgres := strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
	if isPostgres {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if !isPostgres {
		// every sqlite connection to ":memory:" is its own database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Backend keeps each collection in its own table. Every save replaces the
// whole table inside one transaction.
type Backend struct {
	db  *gorm.DB
	log *zap.Logger
}

var _ rental.Backend = (*Backend)(nil)

// NewBackend creates the tables if they do not exist yet.
func NewBackend(db *gorm.DB, log *zap.Logger) (*Backend, error) {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Backend{db: db, log: log}
	if err := b.ensureTables(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Backend) ensureTables() error {
	if err := b.db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (b *Backend) LoadHouses() ([]*rental.House, error) {
	var records []HouseRecord
	if err := b.db.Order("ordinal").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query houses: %w", err)
	}

	houses := make([]*rental.House, 0, len(records))
	for _, r := range records {
		if r.Booked != (r.TenantID != "") {
			b.log.Warn("skipping house with inconsistent booking", zap.String("house", r.ID))
			continue
		}
		houses = append(houses, &rental.House{
			ID:       r.ID,
			Location: r.Location,
			Price:    r.Price,
			Bedrooms: r.Bedrooms,
			Owner:    r.Owner,
			Booked:   r.Booked,
			TenantID: r.TenantID,
		})
	}
	return houses, nil
}

func (b *Backend) LoadTenants() ([]*rental.Tenant, error) {
	var records []TenantRecord
	if err := b.db.Order("ordinal").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query tenants: %w", err)
	}

	tenants := make([]*rental.Tenant, 0, len(records))
	for _, r := range records {
		tenants = append(tenants, &rental.Tenant{
			ID:                r.ID,
			Name:              r.Name,
			Contact:           r.Contact,
			PreferredLocation: r.PreferredLocation,
		})
	}
	return tenants, nil
}

func (b *Backend) LoadAgreements() ([]*rental.Agreement, error) {
	var records []AgreementRecord
	if err := b.db.Order("ordinal").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query agreements: %w", err)
	}
	var payments []PaymentRecord
	if err := b.db.Order("agreement_id, seq").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}

	byAgreement := make(map[string][]PaymentRecord)
	for _, p := range payments {
		byAgreement[p.AgreementID] = append(byAgreement[p.AgreementID], p)
	}

	agreements := make([]*rental.Agreement, 0, len(records))
	for _, r := range records {
		a, err := toAgreement(r, byAgreement[r.ID])
		if err != nil {
			b.log.Warn("skipping malformed agreement", zap.String("agreement", r.ID), zap.Error(err))
			continue
		}
		agreements = append(agreements, a)
	}
	return agreements, nil
}

func toAgreement(r AgreementRecord, payments []PaymentRecord) (*rental.Agreement, error) {
	start, err := rental.ParseDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", r.StartDate, err)
	}
	end, err := rental.ParseDate(r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", r.EndDate, err)
	}

	a := &rental.Agreement{
		ID:        r.ID,
		HouseID:   r.HouseID,
		TenantID:  r.TenantID,
		StartDate: start,
		EndDate:   end,
		Deposit:   r.Deposit,
	}
	for _, p := range payments {
		d, err := rental.ParseDate(p.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid payment date %q: %w", p.Date, err)
		}
		a.Payments = append(a.Payments, rental.Payment{Date: d, Amount: p.Amount})
	}
	return a, nil
}

func (b *Backend) SaveHouses(houses []*rental.House) error {
	records := make([]HouseRecord, 0, len(houses))
	for i, h := range houses {
		records = append(records, HouseRecord{
			ID:       h.ID,
			Ordinal:  i,
			Location: h.Location,
			Price:    h.Price,
			Bedrooms: h.Bedrooms,
			Owner:    h.Owner,
			Booked:   h.Booked,
			TenantID: h.TenantID,
		})
	}
	return b.db.Transaction(func(tx *gorm.DB) error {
		return replaceAll(tx, &HouseRecord{}, records)
	})
}

func (b *Backend) SaveTenants(tenants []*rental.Tenant) error {
	records := make([]TenantRecord, 0, len(tenants))
	for i, t := range tenants {
		records = append(records, TenantRecord{
			ID:                t.ID,
			Ordinal:           i,
			Name:              t.Name,
			Contact:           t.Contact,
			PreferredLocation: t.PreferredLocation,
		})
	}
	return b.db.Transaction(func(tx *gorm.DB) error {
		return replaceAll(tx, &TenantRecord{}, records)
	})
}

func (b *Backend) SaveAgreements(agreements []*rental.Agreement) error {
	records := make([]AgreementRecord, 0, len(agreements))
	var payments []PaymentRecord
	for i, a := range agreements {
		records = append(records, AgreementRecord{
			ID:        a.ID,
			Ordinal:   i,
			HouseID:   a.HouseID,
			TenantID:  a.TenantID,
			StartDate: rental.FormatDate(a.StartDate),
			EndDate:   rental.FormatDate(a.EndDate),
			Deposit:   a.Deposit,
		})
		for seq, p := range a.Payments {
			payments = append(payments, PaymentRecord{
				AgreementID: a.ID,
				Seq:         seq,
				Date:        rental.FormatDate(p.Date),
				Amount:      p.Amount,
			})
		}
	}
	return b.db.Transaction(func(tx *gorm.DB) error {
		if err := replaceAll(tx, &PaymentRecord{}, payments); err != nil {
			return err
		}
		return replaceAll(tx, &AgreementRecord{}, records)
	})
}

// replaceAll deletes every row of model's table and inserts records.
func replaceAll[T any](tx *gorm.DB, model interface{}, records []T) error {
	if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
		return fmt.Errorf("failed to clear %T: %w", model, err)
	}
	if len(records) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(&records, 100).Error; err != nil {
		return fmt.Errorf("failed to insert %T: %w", model, err)
	}
	return nil
}
