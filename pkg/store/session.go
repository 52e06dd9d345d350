package store

import (
	"time"

	"storefront-be/pkg/bundle"
)

// BundleSession is one shopper's live bundle view, kept in memory only.
type BundleSession struct {
	ID        string            `json:"id"`
	Policy    bundle.PolicyName `json:"policy"`
	View      *bundle.View      `json:"-"`
	CreatedAt time.Time         `json:"created_at"`
}
