package contract

import "context"

// PreferenceRepository stores boolean UI preferences per owner. Load returns
// only the keys that were explicitly written.
type PreferenceRepository interface {
	Load(ctx context.Context, owner string) (map[string]bool, error)
	Set(ctx context.Context, owner, key string, value bool) error
}
