package storage

import "context"

type Object struct {
	Key  string
	Size int64
}

// ObjectLister lists stored objects and maps keys to public URLs.
type ObjectLister interface {
	List(ctx context.Context, prefix string) ([]Object, error)
	PublicURL(key string) string
}
