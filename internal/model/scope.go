package model

// Scope is the per-request authorization scope extracted from the verified
// token. Every repository query is bounded by its TenantID.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	TenantID string `json:"tenant_id"`
}
