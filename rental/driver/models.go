package driver

// HouseRecord is the houses table row
type HouseRecord struct {
	ID       string `gorm:"primaryKey"`
	Ordinal  int    `gorm:"not null"`
	Location string `gorm:"not null;index"`
	Price    float64
	Bedrooms int
	Owner    string
	Booked   bool
	TenantID string
}

func (HouseRecord) TableName() string { return "houses" }

// TenantRecord is the tenants table row
type TenantRecord struct {
	ID                string `gorm:"primaryKey"`
	Ordinal           int    `gorm:"not null"`
	Name              string
	Contact           string
	PreferredLocation string `gorm:"index"`
}

func (TenantRecord) TableName() string { return "tenants" }

// AgreementRecord is the agreements table row. Dates are kept as
// yyyy-MM-dd text so they survive any database time zone setting.
type AgreementRecord struct {
	ID        string `gorm:"primaryKey"`
	Ordinal   int    `gorm:"not null"`
	HouseID   string `gorm:"not null;index"`
	TenantID  string `gorm:"not null;index"`
	StartDate string `gorm:"size:10;not null"`
	EndDate   string `gorm:"size:10;not null"`
	Deposit   float64
}

func (AgreementRecord) TableName() string { return "agreements" }

// PaymentRecord is one payment of an agreement; Seq keeps insertion order.
type PaymentRecord struct {
	AgreementID string `gorm:"primaryKey"`
	Seq         int    `gorm:"primaryKey;autoIncrement:false"`
	Date        string `gorm:"size:10;not null"`
	Amount      float64
}

func (PaymentRecord) TableName() string { return "payments" }

// Models lists every table the backend owns, in creation order.
var Models = []interface{}{
	&HouseRecord{},
	&TenantRecord{},
	&AgreementRecord{},
	&PaymentRecord{},
}
