package entity

// TenantScoped is embedded by every row that belongs to a tenant.
// The tenant column is only ever written by the tenant-scoped executor.
type TenantScoped struct {
	TenantID int64 `gorm:"not null;index"`
}

func (t *TenantScoped) SetTenant(id int64) {
	t.TenantID = id
}

// Principal is the authenticated caller resolved from the bearer token.
type Principal struct {
	UserID   int64
	TenantID int64
	Email    string
	Nome     string
}

// Ref is the minimal row returned by reference lookups.
type Ref struct {
	ID int64
}
