package domain

// User is a back-office operator. A user belongs to exactly one tenant and
// may only log in through that tenant's subdomain.
type User struct {
	ID           int32  `json:"id"`
	TenantID     int32  `json:"tenant_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Active       bool   `json:"active"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}
