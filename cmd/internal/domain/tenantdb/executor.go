// Package tenantdb is the only way the domain touches tenant-owned tables.
//
// A Scope is bound to one tenant and always binds that tenant as the first
// parameter of the statement it runs, so every query template must lead with
// its tenant predicate:
//
//	scope.Select(ctx, &rows, "SELECT * FROM areas WHERE tenant_id = ? AND id = ?", id)
package tenantdb

import (
	"context"
	"errors"
	"gorm.io/gorm"
)

// ErrNoTenant is returned by every Scope operation when the scope was built
// without a valid tenant id.
var ErrNoTenant = errors.New("tenantdb: tenant id is required")

type txKey struct{}

// Owned is implemented by rows that carry a tenant column.
type Owned interface {
	SetTenant(id int64)
}

type Executor struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Executor {
	return &Executor{db: db}
}

// For binds the executor to a tenant.
func (e *Executor) For(tenantID int64) *Scope {
	return &Scope{db: e.db, tenantID: tenantID}
}

// InTx runs fn inside a single database transaction. Scopes used with the
// context handed to fn join that transaction. A nested call reuses the outer
// transaction instead of opening a new one.
func (e *Executor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Conn returns the transaction carried by ctx, or db bound to ctx.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

type Scope struct {
	db       *gorm.DB
	tenantID int64
}

func (s *Scope) Tenant() int64 {
	return s.tenantID
}

// Select runs a read template and scans every row into dest.
func (s *Scope) Select(ctx context.Context, dest any, query string, args ...any) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	return db.Raw(query, s.bind(args)...).Scan(dest).Error
}

// First scans the first row of a read template into dest and reports whether
// there was one.
func (s *Scope) First(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return false, err
	}

	res := db.Raw(query, s.bind(args)...).Scan(dest)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Exec runs a write template and returns the number of affected rows.
func (s *Scope) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}

	res := db.Exec(query, s.bind(args)...)
	return res.RowsAffected, res.Error
}

// Insert stamps the tenant onto row and inserts it. The generated id is
// written back into row.
func (s *Scope) Insert(ctx context.Context, row Owned) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	row.SetTenant(s.tenantID)
	return db.Create(row).Error
}

// Update sets values on the row of model's table matching the tenant and id,
// and returns the number of matched rows.
func (s *Scope) Update(ctx context.Context, model any, id int64, values map[string]any) (int64, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}

	res := db.Model(model).
		Where("tenant_id = ? AND id = ?", s.tenantID, id).
		Updates(values)
	return res.RowsAffected, res.Error
}

func (s *Scope) conn(ctx context.Context) (*gorm.DB, error) {
	if s.tenantID <= 0 {
		return nil, ErrNoTenant
	}
	return Conn(ctx, s.db), nil
}

func (s *Scope) bind(args []any) []any {
	bound := make([]any, 0, len(args)+1)
	bound = append(bound, s.tenantID)
	return append(bound, args...)
}
