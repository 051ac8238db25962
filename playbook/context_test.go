package playbook

import "testing"

func TestDeriveContext(t *testing.T) {
	ctx := DeriveContext(elevenPersonnel())
	if ctx.Personnel != "11" {
		t.Errorf("personnel = %q, want 11", ctx.Personnel)
	}
	if ctx.ReceiverCount != 4 {
		t.Errorf("receiver count = %d, want 4 (three wide, one tight end)", ctx.ReceiverCount)
	}
	if !ctx.HasTightEnd {
		t.Error("roster carries a tight end")
	}
	if ctx.HasFullback {
		t.Error("roster carries no fullback")
	}
	// One receiver left, two wide plus the tight end right.
	if ctx.Structure != "3x1" {
		t.Errorf("structure = %q, want 3x1", ctx.Structure)
	}
	if ctx.StrengthSide != "right" {
		t.Errorf("strength = %q, want right", ctx.StrengthSide)
	}
}

func TestDeriveContextEmptyRoster(t *testing.T) {
	ctx := DeriveContext(nil)
	if ctx.ReceiverCount != 0 || ctx.HasTightEnd || ctx.Personnel != "00" {
		t.Errorf("empty roster context = %+v", ctx)
	}
	if ctx.StrengthSide != "" {
		t.Errorf("balanced (empty) roster has no strength side, got %q", ctx.StrengthSide)
	}
}
