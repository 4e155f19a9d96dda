package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/dice-roll-go/dice"
	"github.com/olivierh59500/dice-roll-go/internal/config"
	"github.com/olivierh59500/dice-roll-go/internal/look"
)

// historySize is how many past totals are shown
const historySize = 5

// Game hosts the dice simulation inside Ebitengine
type Game struct {
	cfg     config.Config
	roller  *dice.Roller
	sprites [dice.Count]*sprite
	table   *ebiten.Image
	tick    time.Duration
	logger  *slog.Logger
	history []int // Most recent totals, newest last
}

// NewGame creates the table and the dice
func NewGame(cfg config.Config, logger *slog.Logger) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		tick:   cfg.Tick(),
		logger: logger,
	}

	rng := dice.NewSource(cfg.Seed)
	roller, err := dice.NewRoller(cfg.Arena(), rng,
		dice.WithRollDuration(cfg.RollDuration),
		dice.WithLogger(logger),
		dice.WithOnSettle(g.settled),
	)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.roller = roller

	for i := range g.sprites {
		g.sprites[i] = &sprite{color: look.DieColor(i)}
		if err := roller.Attach(i, g.sprites[i]); err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
	}

	g.table = ebiten.NewImage(cfg.Width, cfg.Height)
	g.table.WritePixels(look.TableTexture(cfg.Width, cfg.Height, cfg.Seed))
	return g, nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.rollRequested() && g.roller.Trigger() {
		g.logger.Info("rolling", "roll", g.roller.Rolls()+1, "duration", g.roller.Duration())
	}
	g.roller.Step(g.tick)
	return nil
}

// rollRequested reports a click, tap or space press this tick
func (g *Game) rollRequested() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// settled receives each finished roll
func (g *Game) settled(o dice.Outcome) {
	g.history = append(g.history, o.Sum)
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
	g.logger.Info("dice settled", "faces", o.Faces, "sum", o.Sum, "relax_passes", o.Relaxation.Iterations)
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.table, nil)

	size := g.roller.Arena().Size
	for _, s := range g.sprites {
		s.draw(screen, size)
	}

	label := "tap to roll"
	switch {
	case g.roller.Rolling():
		label = "rolling..."
	case g.roller.Rolls() > 0:
		faces := g.roller.Results()
		label = fmt.Sprintf("%d + %d + %d + %d = %d", faces[0], faces[1], faces[2], faces[3], g.roller.Sum())
	}
	y := g.cfg.Height - int(g.cfg.ReservedBottom)/2
	ebitenutil.DebugPrintAt(screen, label, g.cfg.Width/2-len(label)*3, y)

	if len(g.history) > 1 {
		past := make([]string, 0, len(g.history)-1)
		for _, s := range g.history[:len(g.history)-1] {
			past = append(past, fmt.Sprint(s))
		}
		ebitenutil.DebugPrintAt(screen, "previous: "+strings.Join(past, " "), 10, y+16)
	}
}

// Layout returns the screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Close stops the simulation
func (g *Game) Close() {
	g.roller.Close()
}
