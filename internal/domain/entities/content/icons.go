package content

// FallbackIcon is returned for any icon name outside the known set.
const FallbackIcon = "graduation-cap"

// knownIcons is the closed set of icon identifiers the site can render.
// Icon dispatch is a lookup table, never open-ended: unknown names resolve
// to FallbackIcon instead of an empty renderer.
var knownIcons = map[string]bool{
	"graduation-cap": true,
	"book-open":      true,
	"beaker":         true,
	"calculator":     true,
	"globe":          true,
	"palette":        true,
	"music":          true,
	"trophy":         true,
	"star":           true,
	"award":          true,
	"users":          true,
	"microscope":     true,
	"computer":       true,
	"library":        true,
	"flask":          true,
	"sports":         true,
}

// NormalizeIcon maps an icon name onto the known set, falling back for
// unknown names.
func NormalizeIcon(name string) string {
	if knownIcons[name] {
		return name
	}
	return FallbackIcon
}

// IsKnownIcon reports whether name is in the closed icon set.
func IsKnownIcon(name string) bool {
	return knownIcons[name]
}
