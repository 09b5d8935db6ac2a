package downloader

import (
	"fmt"
	"net/url"
	"strings"
)

// FileName derives the output filename for the URL at 1-based position
// index: the last segment of the URL path when it contains a '.', else
// image_<index>.jpg. Query, fragment and ;params are ignored, and the
// segment is used exactly as written in the URL.
func FileName(rawURL string, index int) string {
	if name := basename(rawURL); name != "" && strings.Contains(name, ".") {
		return name
	}
	return fmt.Sprintf("image_%d.jpg", index)
}

// basename returns the last path segment of rawURL without decoding it.
// url.Parse only validates; its Path is unescaped and EscapedPath may
// re-escape, so the segment is cut from the raw string.
func basename(rawURL string) string {
	if _, err := url.Parse(rawURL); err != nil {
		return ""
	}

	rest, _, _ := strings.Cut(rawURL, "#")
	rest, _, _ = strings.Cut(rest, "?")

	if _, after, ok := strings.Cut(rest, "://"); ok {
		slash := strings.IndexByte(after, '/')
		if slash < 0 {
			return ""
		}
		rest = after[slash:]
	}

	name := rest[strings.LastIndex(rest, "/")+1:]
	name, _, _ = strings.Cut(name, ";")
	return name
}
