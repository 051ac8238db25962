package playbook

import "testing"

func TestParseRoutes(t *testing.T) {
	tests := []struct {
		text    string
		pattern string
		depth   float64
	}{
		{"Slant 6", "slant", 6},
		{"curl 10", "curl", 10},
		{"Curl", "curl", 10},
		{"hitch", "curl", 5},
		{"out and up", "out_and_up", 15},
		{"speed out", "out", 6},
		{"skinny post", "skinny_post", 12},
		{"Flag route", "corner", 12},
		{"shallow", "dig", 3},
		{"cross", "dig", 6},
		{"fade", "go", 16},
		{"Comeback 14", "comeback", 14},
		{"swing", "swing", 1},
	}
	for _, tc := range tests {
		got := Parse(tc.text)
		if !got.HasRoute {
			t.Errorf("Parse(%q): expected a route", tc.text)
			continue
		}
		if got.RoutePattern != tc.pattern || got.RouteDepth != tc.depth {
			t.Errorf("Parse(%q) = %s at %v, want %s at %v",
				tc.text, got.RoutePattern, got.RouteDepth, tc.pattern, tc.depth)
		}
	}
}

func TestParseBlocks(t *testing.T) {
	tests := []struct {
		text   string
		scheme string
	}{
		{"Zone pull", "pull_kick"},
		{"pull lead", "pull_lead"},
		{"pass pro", "pass_pro"},
		{"protect", "pass_pro"},
		{"reach block", "reach"},
		{"crack", "crack"},
		{"Lead", "lead"},
	}
	for _, tc := range tests {
		got := Parse(tc.text)
		if !got.HasBlock || got.BlockScheme != tc.scheme {
			t.Errorf("Parse(%q) = %+v, want block %s", tc.text, got, tc.scheme)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if got := Parse("slant inside"); got.Direction != DirectionInside {
		t.Errorf("want inside, got %q", got.Direction)
	}
	if got := Parse("outside release go"); got.Direction != DirectionOutside {
		t.Errorf("want outside, got %q", got.Direction)
	}
	if got := Parse("curl 10"); got.Direction != DirectionNone {
		t.Errorf("want no direction, got %q", got.Direction)
	}
}

func TestParseNothing(t *testing.T) {
	for _, text := range []string{"", "   ", "read the mike", "option route later"} {
		got := Parse(text)
		if got.HasRoute || got.HasBlock {
			t.Errorf("Parse(%q) = %+v, want nothing", text, got)
		}
	}
}

func TestParseMultiWordBeatsPrefix(t *testing.T) {
	got := Parse("out and up")
	if got.RoutePattern != "out_and_up" {
		t.Errorf("multi-word keyword lost to its prefix: got %s", got.RoutePattern)
	}
}

func TestParsePunctuationAndCase(t *testing.T) {
	got := Parse("CURL, 12.")
	if !got.HasRoute || got.RoutePattern != "curl" || got.RouteDepth != 12 {
		t.Errorf("Parse with punctuation = %+v", got)
	}
}

func TestParseRouteAndBlockTogether(t *testing.T) {
	got := Parse("chip then flat")
	if !got.HasRoute || got.RoutePattern != "flat" {
		t.Errorf("want the flat route, got %+v", got)
	}
	got = Parse("stalk unless slant")
	if !got.HasRoute || got.RoutePattern != "slant" {
		t.Errorf("want a slant, got %+v", got)
	}
	if !got.HasBlock || got.BlockScheme != "stalk" {
		t.Errorf("want a stalk block too, got %+v", got)
	}
}
