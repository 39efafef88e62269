package listing

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.\-]`)

// BlobKeyFor names an uploaded image: <tenant>-<unix millis>-<sanitised file name>
func BlobKeyFor(tenantID uuid.UUID, now time.Time, fileName string) string {
	clean := unsafeFileChars.ReplaceAllString(fileName, "")
	if clean == "" {
		clean = "image"
	}
	return fmt.Sprintf("%s-%d-%s", tenantID, now.UnixMilli(), clean)
}

// BlobKeyFromURL recovers the storage key from a public image URL:
// the last path segment without its query string.
func BlobKeyFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		segs := strings.Split(strings.TrimRight(u.Path, "/"), "/")
		return segs[len(segs)-1]
	}
	seg := raw[strings.LastIndex(raw, "/")+1:]
	if i := strings.IndexAny(seg, "?#"); i >= 0 {
		seg = seg[:i]
	}
	return seg
}

func BlobKeysFromURLs(urls []string) []string {
	keys := make([]string, 0, len(urls))
	for _, u := range urls {
		if k := BlobKeyFromURL(u); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
