package domain

// Tenant is an isolated customer organization. Every entity collection is
// scoped by tenant id; the slug doubles as the login subdomain.
type Tenant struct {
	ID          int32  `json:"id"`
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
	Active      bool   `json:"active"`
	CreatedOn   string `json:"created_on"`
}
