package playbook

import (
	"fmt"

	"github.com/nharmon/chalkline/chalk-core/model"
)

// DeriveContext summarizes roster composition for concept scoring when
// the caller has no precomputed formation context. Personnel follows
// the standard two-digit convention (backs, then tight ends); structure
// is strong-side-by-weak-side receiver counts.
func DeriveContext(players []model.Player) model.FormationContext {
	wr := countCategory(players, CategoryWR)
	te := countCategory(players, CategoryTE)
	rb := countCategory(players, CategoryRB)
	fb := countCategory(players, CategoryFB)

	ctx := model.FormationContext{
		ReceiverCount: wr + te,
		HasTightEnd:   te > 0,
		HasFullback:   fb > 0,
		Personnel:     fmt.Sprintf("%d%d", rb+fb, te),
	}

	left, right := 0, 0
	for _, p := range players {
		c, _ := Categorize(p)
		if c != CategoryWR && c != CategoryTE {
			continue
		}
		if p.Alignment.RightSide() {
			right++
		} else {
			left++
		}
	}
	strong, weak := right, left
	side := "right"
	if left > right {
		strong, weak = left, right
		side = "left"
	}
	if strong != weak {
		ctx.StrengthSide = side
	}
	ctx.Structure = fmt.Sprintf("%dx%d", strong, weak)
	return ctx
}
