// Package storagepath derives object-storage paths for uploaded files and
// from stored public URLs.
package storagepath

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectName mints a collision-safe object name for an uploaded file,
// "<prefix>-<token><ext>". The random token keeps concurrent uploads from
// overwriting each other's object.
func ObjectName(prefix, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return prefix + "-" + uuid.NewString() + ext
}

// ObjectPath joins a category folder and an object name.
func ObjectPath(folder, name string) string {
	return folder + "/" + name
}

// FromURL derives the storage path of an object from its stored public URL:
// the category folder plus the URL's trailing filename segment. For
// ".../galeridesa/galeri/abc123.jpg" and folder "galeri" it yields
// "galeri/abc123.jpg".
func FromURL(folder, publicURL string) string {
	trimmed := strings.TrimRight(publicURL, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ObjectPath(folder, trimmed)
	}
	return ObjectPath(folder, trimmed[idx+1:])
}
