package fetch

import (
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

// imgTagRe pulls the src attribute of the first <img> tag in HTML content.
var imgTagRe = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// extractImage finds the best-effort image URL for a feed entry. Checked in
// priority order: structured image field, media extension thumbnail/content,
// enclosure with an image MIME type or extension, then a regex scan for the
// first <img src=...> in any HTML content field.
func extractImage(entry *gofeed.Item) string {
	if entry.Image != nil && entry.Image.URL != "" {
		return entry.Image.URL
	}

	if url := mediaExtensionURL(entry); url != "" {
		return url
	}

	for _, enc := range entry.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if strings.HasPrefix(enc.Type, "image/") || hasImageExtension(enc.URL) {
			return enc.URL
		}
	}

	for _, html := range []string{entry.Content, entry.Description} {
		if m := imgTagRe.FindStringSubmatch(html); m != nil {
			return m[1]
		}
	}

	return ""
}

// mediaExtensionURL digs media:thumbnail / media:content out of the gofeed
// extension map.
func mediaExtensionURL(entry *gofeed.Item) string {
	media, ok := entry.Extensions["media"]
	if !ok {
		return ""
	}
	for _, key := range []string{"thumbnail", "content"} {
		for _, ext := range media[key] {
			if url := ext.Attrs["url"]; url != "" {
				return url
			}
		}
	}
	return ""
}

func hasImageExtension(url string) bool {
	lower := strings.ToLower(url)
	// Ignore query strings when checking the extension
	if i := strings.IndexByte(lower, '?'); i >= 0 {
		lower = lower[:i]
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
