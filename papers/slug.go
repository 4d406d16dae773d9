package papers

import (
	"regexp"
	"strings"
)

var slugRegexp = regexp.MustCompile("[^a-z0-9]+")

// Slug derives the artifact identifier for a topic. Topics are free text
// typed by users, so they never reach the filesystem raw: "3D Object
// Detection" becomes "3d-object-detection".
func Slug(topic string) string {
	slug := slugRegexp.ReplaceAllString(strings.ToLower(topic), "-")
	return strings.Trim(slug, "-")
}
