package postgres

import (
	"gorm.io/gorm"
)

// scoped applies the tenant filter on the named table when the scope names
// a tenant. A nil tenantID means unscoped (super admin) access. The column
// is table-qualified because several queries join other tables that carry
// their own tenant_id.
func scoped(db *gorm.DB, table string, tenantID *string) *gorm.DB {
	if tenantID == nil {
		return db
	}
	return db.Where(table+".tenant_id = ?", *tenantID)
}

// paginate applies limit/offset from a 1-based page number.
func paginate(db *gorm.DB, page, limit int) *gorm.DB {
	if limit <= 0 {
		return db
	}
	if page < 1 {
		page = 1
	}
	return db.Limit(limit).Offset((page - 1) * limit)
}
