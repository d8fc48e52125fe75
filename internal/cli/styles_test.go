package cli

import (
	"strings"
	"testing"
)

func TestCard_FramesContent(t *testing.T) {
	out := Card.Render("points")
	if !strings.Contains(out, "points") {
		t.Fatalf("content lost:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Errorf("expected a bordered block, got %d lines", len(lines))
	}
}

func TestUrgencyStyle_DistinguishesBuckets(t *testing.T) {
	critical := UrgencyStyle("critical")
	low := UrgencyStyle("low")
	if critical.GetForeground() == low.GetForeground() {
		t.Error("critical and low share a color")
	}
	if !critical.GetBold() {
		t.Error("critical is not bold")
	}
}

func TestLevelStyle_CoversAllLevels(t *testing.T) {
	seen := map[any]bool{}
	for level := 1; level <= 4; level++ {
		seen[LevelStyle(level).GetForeground()] = true
	}
	if len(seen) < 3 {
		t.Errorf("level styles collapse together: %d distinct", len(seen))
	}
}
