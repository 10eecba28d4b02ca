package entity

type RegStatus string

const (
	StatusActive    RegStatus = "ACTIVE"
	StatusClosed    RegStatus = "CLOSED"
	StatusSuspended RegStatus = "SUSPENDED"
	StatusUnfit     RegStatus = "UNFIT"
	StatusUnknown   RegStatus = "UNKNOWN"
)

// RegistryCompany caches public CNPJ registry lookups used to pre-fill clients.
type RegistryCompany struct {
	CNPJ                string `gorm:"primaryKey;column:cnpj"`
	LegalName           string
	TradeName           string
	LegalNature         string
	RegStatus           RegStatus
	AddressType         string
	AddressStreetName   string
	AddressNumber       string
	AddressComplement   string
	AddressNeighborhood string
	AddressZipCode      string
	AddressCity         string
	AddressRegion       string
	Email               string
	Phone               string

	// Found controls negative caching: false means the registry answered 404
	// and the CNPJ should not be queried again until the row expires.
	Found    bool  `gorm:"not null"`
	CachedAt int64 `gorm:"autoUpdateTime:false;index"`
}

func (RegistryCompany) TableName() string { return "empresas_consultadas" }
