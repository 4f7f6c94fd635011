// Package image holds the on-disk image catalog rooted at
// /var/lib/rocker/images, and the Store that imports, enumerates, and
// resolves tagged rootfs trees.
package image

import (
	"crypto/sha256"
	"encoding/hex"
)

const defaultTag = "latest"

// Record is the persisted metadata for one imported image.
type Record struct {
	Name       string `json:"name"`
	Tag        string `json:"tag"`
	Size       int64  `json:"size"`
	CreateTime string `json:"createTime"`
	ID         string `json:"id"`
}

// ResolveTag returns tag, defaulting to "latest" when empty.
func ResolveTag(tag string) string {
	if tag == "" {
		return defaultTag
	}
	return tag
}

// DeriveID computes the 12 hex digit image id from a stable hash of
// "name:tag", so re-importing the same name:tag always yields the same id.
func DeriveID(name, tag string) string {
	sum := sha256.Sum256([]byte(name + ":" + tag))
	return hex.EncodeToString(sum[:6])
}
