package company

import "time"

// Empresa is a client company, the unit of tenant isolation. Rows are
// auto-provisioned on the first successful employee sync.
type Empresa struct {
	ID        int64     `json:"id"`
	Codigo    string    `json:"codigo"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
