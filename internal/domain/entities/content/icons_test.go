package content

import "testing"

func TestNormalizeIcon(t *testing.T) {
	if got := NormalizeIcon("microscope"); got != "microscope" {
		t.Errorf("known icon rewritten to %q", got)
	}
	if got := NormalizeIcon("dragon"); got != FallbackIcon {
		t.Errorf("unknown icon = %q, want %q", got, FallbackIcon)
	}
	if got := NormalizeIcon(""); got != FallbackIcon {
		t.Errorf("empty icon = %q, want %q", got, FallbackIcon)
	}
}

func TestDefaultsHaveValidIcons(t *testing.T) {
	for _, d := range DefaultDepartments() {
		if !IsKnownIcon(d.Icon) {
			t.Errorf("department %s seeds unknown icon %q", d.ID, d.Icon)
		}
	}
	for _, a := range DefaultAchievements() {
		if !IsKnownIcon(a.Icon) {
			t.Errorf("achievement %s seeds unknown icon %q", a.ID, a.Icon)
		}
	}
}
