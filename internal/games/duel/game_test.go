package duel

import (
	"testing"

	"github.com/ctrlsworld/arcade/internal/core"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// stepUntilWindup runs empty ticks until the foe telegraphs.
func stepUntilWindup(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < g.cfg.RestTicks+2; i++ {
		if g.foe == foeWindup {
			return
		}
		g.Step(press())
	}
	if g.foe != foeWindup {
		t.Fatal("foe never entered windup")
	}
}

func TestUnguardedStrikeDamagesPlayer(t *testing.T) {
	g := newTestGame()
	stepUntilWindup(t, g)

	for i := 0; i < g.windupTicks()+1; i++ {
		g.Step(press())
	}
	if g.playerHP != g.cfg.PlayerHP-g.cfg.FoeDamage {
		t.Fatalf("expected HP %d after the strike, got %d", g.cfg.PlayerHP-g.cfg.FoeDamage, g.playerHP)
	}
}

func TestGuardBlocksAndStunsFoe(t *testing.T) {
	g := newTestGame()
	stepUntilWindup(t, g)

	guard := press(core.ActionGuard)
	for i := 0; i < g.windupTicks()+1; i++ {
		g.Step(guard)
	}
	if g.playerHP != g.cfg.PlayerHP {
		t.Fatalf("guarded strike should not damage, got HP %d", g.playerHP)
	}
	if g.foe != foeStunned {
		t.Fatalf("expected a stunned foe after the block, got state %d", g.foe)
	}
}

func TestStunnedFoeTakesDoubleDamage(t *testing.T) {
	g := newTestGame()
	g.foe = foeStunned
	g.stateTicks = stunTicks

	g.Step(press(core.ActionAttack))
	want := g.foeMaxHP - g.cfg.StrikeDamage*2
	if g.foeHP != want {
		t.Fatalf("expected foe HP %d after a punish hit, got %d", want, g.foeHP)
	}
}

func TestAttackHasCooldown(t *testing.T) {
	g := newTestGame()

	g.Step(press(core.ActionAttack))
	hp := g.foeHP
	g.Step(press(core.ActionAttack))
	if g.foeHP != hp {
		t.Fatal("second swing landed inside the cooldown")
	}

	for i := 0; i < attackCooldownTicks; i++ {
		g.Step(press())
	}
	g.Step(press(core.ActionAttack))
	if g.foeHP == hp {
		t.Fatal("swing after the cooldown should land")
	}
}

func TestGuardingPreventsAttacking(t *testing.T) {
	g := newTestGame()

	g.Step(press(core.ActionAttack, core.ActionGuard))
	if g.foeHP != g.foeMaxHP {
		t.Fatal("attacking while guarding should be refused")
	}
}

func TestDefeatingFoeAdvancesRound(t *testing.T) {
	g := newTestGame()
	g.foeHP = 1

	g.Step(press(core.ActionAttack))
	if g.round != 2 {
		t.Fatalf("expected round 2, got %d", g.round)
	}
	if g.roundBreak == 0 {
		t.Fatal("expected an intermission before the next foe")
	}

	// Sit out the intermission and check the next foe is tougher.
	for i := 0; i < roundBreakTicks+1; i++ {
		g.Step(press())
	}
	if g.foeMaxHP <= g.cfg.FoeBaseHP {
		t.Fatalf("expected a tougher round-2 foe, got max HP %d", g.foeMaxHP)
	}
}

func TestPlayerDeathEndsGame(t *testing.T) {
	g := newTestGame()
	g.playerHP = 1

	stepUntilWindup(t, g)
	for i := 0; i < g.windupTicks()+1; i++ {
		g.Step(press())
	}

	if !g.gameOver {
		t.Fatal("expected game over when HP reaches zero")
	}
	if g.playerHP != 0 {
		t.Fatalf("HP should floor at zero, got %d", g.playerHP)
	}
}

func TestLaterRoundsTelegraphFaster(t *testing.T) {
	g := newTestGame()
	first := g.windupTicks()

	g.round = 4
	if got := g.windupTicks(); got >= first {
		t.Fatalf("round 4 windup %d should be shorter than round 1's %d", got, first)
	}
	g.round = 100
	if got := g.windupTicks(); got < g.cfg.WindupMinTicks {
		t.Fatalf("windup %d fell below the floor %d", got, g.cfg.WindupMinTicks)
	}
}

func TestRestartAfterDefeat(t *testing.T) {
	g := newTestGame()
	g.gameOver = true
	g.score = 500

	g.Step(press(core.ActionRestart))
	if g.gameOver || g.score != 0 || g.round != 1 {
		t.Fatal("restart did not reset the duel")
	}
	if g.playerHP != g.cfg.PlayerHP {
		t.Fatalf("expected full HP after restart, got %d", g.playerHP)
	}
}
