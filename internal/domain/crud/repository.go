package crud

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by Get, Update and Delete for unknown ids.
var ErrNotFound = errors.New("record not found")

// Scope narrows or decorates a query (filters, preloads, ordering).
type Scope func(*gorm.DB) *gorm.DB

// Repository is the list/get/create/update/delete capability set over one
// entity type. Every resource endpoint group is built on one of these.
type Repository[T any] interface {
	List(ctx context.Context, scopes ...Scope) ([]T, error)
	Get(ctx context.Context, id uint, scopes ...Scope) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint, scopes ...Scope) error
}

func Preload(query string, args ...any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(query, args...)
	}
}

// OwnedBy restricts a query to rows whose account_id is accountID.
func OwnedBy(accountID uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("account_id = ?", accountID)
	}
}

// ForShop restricts a query to rows whose shop_id is shopID.
func ForShop(shopID uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("shop_id = ?", shopID)
	}
}

func OrderByID() Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}
}
