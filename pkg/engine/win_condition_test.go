// pkg/engine/win_condition_test.go
package engine

import (
	"testing"
	"time"

	"github.com/opd-ai/go-spacewars/pkg/config"
	"github.com/opd-ai/go-spacewars/pkg/input"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// TestWinCondition_ChampionAfterRounds plays rounds where p1 always falls into
// the sun until p2 reaches the configured round wins.
func TestWinCondition_ChampionAfterRounds(t *testing.T) {
	game := newTestGame(t, func(c *config.MatchConfig) {
		place(physics.Vector2D{X: 0, Y: -65}, physics.Vector2D{X: 300, Y: 0})(c)
		c.Rules.RoundsToWin = 3
	})

	for round := 1; round <= 3; round++ {
		if _, ok := game.Champion(); ok {
			t.Fatalf("Champion declared before round %d", round)
		}
		if game.GetStatus() != GameStatusActive {
			t.Fatalf("round %d: expected active, got %s", round, game.GetStatus())
		}

		mustStep(t, game, time.Second, input.NewSnapshot())

		state := game.Snapshot()
		if state.Round != round || state.WinnerID != "p2" || state.Wins["p2"] != round {
			t.Fatalf("round %d: unexpected state %+v", round, state)
		}
		game.Reset()
		game.Start()
	}

	champ, ok := game.Champion()
	if !ok || champ.ID != "p2" || champ.Wins != 3 {
		t.Errorf("Expected p2 champion with 3 wins, got %+v %v", champ, ok)
	}
}

// TestWinCondition_NoChampionWhenDisabled checks that RoundsToWin of zero
// plays rounds forever.
func TestWinCondition_NoChampionWhenDisabled(t *testing.T) {
	game := newTestGame(t, func(c *config.MatchConfig) {
		place(physics.Vector2D{X: 0, Y: -65}, physics.Vector2D{X: 300, Y: 0})(c)
		c.Rules.RoundsToWin = 0
	})

	mustStep(t, game, time.Second, input.NewSnapshot())
	if _, ok := game.Champion(); ok {
		t.Error("Expected no champion when RoundsToWin is 0")
	}
}

// TestWinCondition_EndedRoundIgnoresSteps checks that nothing moves after the
// round is decided.
func TestWinCondition_EndedRoundIgnoresSteps(t *testing.T) {
	game := newTestGame(t, place(physics.Vector2D{X: 0, Y: -65}, physics.Vector2D{X: 300, Y: 0}))
	mustStep(t, game, time.Second, input.NewSnapshot())

	before := game.Snapshot()
	mustStep(t, game, 2*time.Second, input.NewSnapshot().Press("K", true))
	after := game.Snapshot()

	if after.Tick != before.Tick || after.Rockets[0].Position != before.Rockets[0].Position {
		t.Error("Expected ended round to ignore Step")
	}
}
