// Package blob adapts the managed object store.
package blob

import "context"

// Store uploads staged files to the object store and reports the public URL
// the stored object is reachable at.
type Store interface {
	Upload(ctx context.Context, localPath, destPath, contentType string) (publicURL string, err error)
}
