package contract

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

type ContractTypeResponse struct {
	Tag         string `json:"tag"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Legacy      bool   `json:"legacy,omitempty"`
}

// RenderResult is the outcome of rendering a contract and uploading it to
// the object store.
type RenderResult struct {
	Success  bool   `json:"success"`
	URL      string `json:"url,omitempty"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
}

// PersistResult answers a company configuration update.
type PersistResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
