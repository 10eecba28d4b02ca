package contract

type CompanyResponse struct {
	CNPJ        string          `json:"cnpj"`
	LegalName   string          `json:"legal_name"`
	TradeName   string          `json:"trade_name"`
	LegalNature string          `json:"legal_nature"`
	RegStatus   string          `json:"registration_status"`
	Address     *CompanyAddress `json:"address"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Cached      bool            `json:"cached"`

	// Client is the lookup mapped onto a client payload, ready to be posted
	// to /api/clients.
	Client *ClientRequest `json:"client"`
}

type CompanyAddress struct {
	Type         string `json:"type"`
	StreetName   string `json:"street_name"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	ZipCode      string `json:"zip_code"`
	City         string `json:"city"`
	Region       string `json:"region"`
}
