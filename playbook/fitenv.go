package playbook

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nharmon/chalkline/chalk-core/model"
)

// FitEnv wraps a formation context and exposes helper methods callable
// from concept fit expressions.
type FitEnv struct {
	Ctx model.FormationContext
}

func (e FitEnv) ReceiverCount() int   { return e.Ctx.ReceiverCount }
func (e FitEnv) HasTightEnd() bool    { return e.Ctx.HasTightEnd }
func (e FitEnv) HasFullback() bool    { return e.Ctx.HasFullback }
func (e FitEnv) Personnel() string    { return e.Ctx.Personnel }
func (e FitEnv) Structure() string    { return e.Ctx.Structure }
func (e FitEnv) StrengthSide() string { return e.Ctx.StrengthSide }

func (e FitEnv) StructureIs(s string) bool {
	return strings.EqualFold(e.Ctx.Structure, s)
}

func (e FitEnv) PersonnelIn(groups ...string) bool {
	return slices.ContainsFunc(groups, func(g string) bool {
		return strings.EqualFold(e.Ctx.Personnel, g)
	})
}

// compileFit compiles a concept's When condition into expr bytecode.
func compileFit(src string) (*vm.Program, error) {
	prog, err := expr.Compile(src, expr.Env(FitEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile fit condition %q: %w", src, err)
	}
	return prog, nil
}

// evalFit runs a compiled fit condition. A runtime error counts as a
// non-match; the concept just misses its bonus.
func evalFit(prog *vm.Program, ctx model.FormationContext) bool {
	if prog == nil {
		return false
	}
	result, err := vm.Run(prog, FitEnv{Ctx: ctx})
	if err != nil {
		slog.Warn("fit condition error", "error", err)
		return false
	}
	match, ok := result.(bool)
	return ok && match
}
