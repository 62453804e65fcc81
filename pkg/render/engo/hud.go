// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewars/pkg/config"
	"github.com/opd-ai/go-spacewars/pkg/engine"
)

// HUDSystem shows the round, the score and the round result in the top-left
// corner. Without a font it only tracks the text.
type HUDSystem struct {
	game    *engine.Game
	players []config.PlayerConfig
	system  SpriteSystem

	font  *common.Font
	label *sprite
	text  string
}

// NewHUDSystem creates a HUD for game
func NewHUDSystem(game *engine.Game, system SpriteSystem) *HUDSystem {
	return &HUDSystem{
		game:    game,
		players: game.Config.Players,
		system:  system,
	}
}

// SetFont sets the font used for HUD text
func (hud *HUDSystem) SetFont(font *common.Font) {
	hud.font = font
}

// Text returns the text currently shown
func (hud *HUDSystem) Text() string {
	return hud.text
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// Update refreshes the HUD text from the game state
func (hud *HUDSystem) Update(dt float32) {
	champion := ""
	if p, ok := hud.game.Champion(); ok {
		champion = p.ID
	}

	text := strings.Join(StatusLines(hud.game.Snapshot(), hud.players, champion), "\n")
	if text == hud.text {
		return
	}
	hud.text = text
	hud.draw()
}

func (hud *HUDSystem) draw() {
	if hud.font == nil {
		return
	}
	drawable := common.Text{Font: hud.font, Text: hud.text}
	if hud.label == nil {
		hud.label = &sprite{
			BasicEntity:     ecs.NewBasic(),
			RenderComponent: common.RenderComponent{Drawable: drawable, Color: color.White},
			SpaceComponent:  common.SpaceComponent{Position: engo.Point{X: 10, Y: 10}},
		}
		hud.system.Add(&hud.label.BasicEntity, &hud.label.RenderComponent, &hud.label.SpaceComponent)
		return
	}
	hud.label.Drawable = drawable
}

// StatusLines formats the scoreboard: the round, one line per player and,
// once the round is over, its result.
func StatusLines(state engine.GameState, players []config.PlayerConfig, champion string) []string {
	names := make(map[string]string, len(players))
	lines := []string{fmt.Sprintf("Round %d", state.Round)}
	for _, p := range players {
		names[p.ID] = displayName(p)
		lines = append(lines, fmt.Sprintf("%s: %d", names[p.ID], state.Wins[p.ID]))
	}

	if state.Status != engine.GameStatusEnded {
		return lines
	}
	switch {
	case champion != "":
		lines = append(lines, names[champion]+" wins the match")
	case state.WinnerID != "":
		lines = append(lines, names[state.WinnerID]+" wins the round")
	default:
		lines = append(lines, "Draw")
	}
	return lines
}

func displayName(p config.PlayerConfig) string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}
