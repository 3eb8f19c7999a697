// Package game is the ebiten host of the simulation: it owns the camera,
// turns mouse and keyboard input into World commands, and draws a View of
// the World every frame.
package game

import (
	"errors"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Flavius4914/RTS-Engine/internal/config"
	"github.com/Flavius4914/RTS-Engine/internal/sim"
)

// statusFrames is how long a status message stays in the help panel.
const statusFrames = 180

// dragThreshold is the pointer travel, in pixels, below which a left
// press and release counts as a click.
const dragThreshold = 4

type Game struct {
	cfg    *config.Config
	world  *sim.World
	seed   int64
	logger *slog.Logger

	width  int
	height int
	cam    Camera

	prevKeys map[ebiten.Key]bool

	dragging     bool
	dragX, dragY float64

	status      string
	statusTicks int

	showFeed bool

	// Offscreen buffers for HUD and inspector text, rendered at 1x then
	// blitted scaled up.
	hudBuf  *ebiten.Image
	inspBuf *ebiten.Image
}

// New wraps a ready World. seed is only reported in debug output.
func New(cfg *config.Config, world *sim.World, seed int64, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Game{
		cfg:      cfg,
		world:    world,
		seed:     seed,
		logger:   logger,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		cam:      NewCamera(cfg.Camera),
		prevKeys: make(map[ebiten.Key]bool),
		showFeed: true,
		hudBuf:   ebiten.NewImage(cfg.Window.Width/hudScale, cfg.Window.Height/hudScale),
		inspBuf:  ebiten.NewImage(inspBufW, inspBufH),
	}
	g.centerCamera()
	return g
}

func (g *Game) centerCamera() {
	m := g.world.Map()
	g.cam.CenterOn(m.Width/2, m.Height/2, g.width, g.height)
	g.cam.Clamp(m.Width, m.Height, g.width, g.height)
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = statusFrames
}

func (g *Game) Update() error {
	g.handleInput()
	g.world.Step()
	if g.statusTicks > 0 {
		g.statusTicks--
		if g.statusTicks == 0 {
			g.status = ""
		}
	}
	return nil
}

// justPressed reports a key going down this frame and records it in cur.
func (g *Game) justPressed(cur map[ebiten.Key]bool, k ebiten.Key) bool {
	cur[k] = ebiten.IsKeyPressed(k)
	return cur[k] && !g.prevKeys[k]
}

// handleInput processes keyboard, wheel and mouse input for this frame.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	if g.justPressed(currentKeys, ebiten.KeyEscape) {
		g.world.TogglePause()
	}
	if g.justPressed(currentKeys, ebiten.KeyC) {
		g.copyReport()
	}
	if g.justPressed(currentKeys, ebiten.KeyHome) {
		g.centerCamera()
	}
	if g.justPressed(currentKeys, ebiten.KeyL) {
		g.showFeed = !g.showFeed
	}

	// Camera pan (held).
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.Pan(1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.Pan(-1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Pan(0, 1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Pan(0, -1)
	}

	// Unit nudge (held).
	var nx, ny float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		ny--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		ny++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		nx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		nx++
	}
	if nx != 0 || ny != 0 {
		g.world.NudgeSelected(nx, ny)
	}

	mxi, myi := ebiten.CursorPosition()
	mx, my := float64(mxi), float64(myi)

	if _, wy := ebiten.Wheel(); wy != 0 {
		steps := 1
		if wy < 0 {
			steps = -1
		}
		g.cam.ZoomAt(mx, my, steps)
	}
	m := g.world.Map()
	g.cam.Clamp(m.Width, m.Height, g.width, g.height)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.leftDown(mx, my)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging {
		g.leftUp(mx, my)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.rightDown(mx, my)
	}

	g.prevKeys = currentKeys
}

// leftDown arms a toolbar command, completes a pending placement or spawn,
// or starts a drag selection, in that order of precedence.
func (g *Game) leftDown(mx, my float64) {
	if b, ok := buttonAt(mx, my); ok {
		if err := b.arm(g.world); err != nil {
			g.setStatus(err.Error())
			return
		}
		g.setStatus("click the map: " + b.label)
		return
	}
	tx, ty := g.cam.ScreenToTile(mx, my)
	if btype, ok := g.world.Placement(); ok {
		if _, err := g.world.PlaceAt(tx, ty); err != nil {
			g.setStatus(commandMessage(err))
			g.logger.Debug("place rejected", "type", btype, "tile_x", tx, "tile_y", ty, "err", err)
			return
		}
		g.setStatus(btype + " built")
		return
	}
	if utype, ok := g.world.Spawning(); ok {
		if _, err := g.world.SpawnAt(tx, ty); err != nil {
			g.setStatus(commandMessage(err))
			g.logger.Debug("spawn rejected", "type", utype, "tile_x", tx, "tile_y", ty, "err", err)
			return
		}
		g.setStatus(utype + " ready")
		return
	}
	g.dragging = true
	g.dragX, g.dragY = mx, my
}

func (g *Game) leftUp(mx, my float64) {
	g.dragging = false
	v := g.cam.Viewport()
	if math.Abs(mx-g.dragX) < dragThreshold && math.Abs(my-g.dragY) < dragThreshold {
		g.world.SelectAt(mx, my, v)
		return
	}
	g.world.SelectInRect(g.dragX, g.dragY, mx, my, v)
}

func (g *Game) rightDown(mx, my float64) {
	_, placing := g.world.Placement()
	_, spawning := g.world.Spawning()
	if placing || spawning {
		g.world.CancelPlacement()
		g.setStatus("cancelled")
		return
	}
	g.world.MoveSelected(mx, my, g.cam.Viewport())
}

// commandMessage turns a command error into a short player-facing line.
func commandMessage(err error) string {
	switch {
	case errors.Is(err, sim.ErrInsufficientResources):
		return "not enough resources"
	case errors.Is(err, sim.ErrCannotPlace):
		return "cannot build there"
	case errors.Is(err, sim.ErrOutOfBounds):
		return "outside the map"
	default:
		return err.Error()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	v := g.world.View(g.cam.Zoom)
	mxi, myi := ebiten.CursorPosition()
	mx, my := float64(mxi), float64(myi)

	g.drawTiles(screen)
	g.drawEntities(screen, v)
	if g.dragging {
		g.drawDragRect(screen, mx, my)
	}
	if v.Placing != "" {
		g.drawPlacementPreview(screen, v.Placing, mx, my)
	}
	g.drawToolbar(screen, mx, my, v)
	g.drawResources(screen, v.Resources)
	if g.showFeed {
		g.drawEventFeed(screen)
	}
	g.drawInspector(screen)
	g.drawHelp(screen, v)

	if v.Won {
		g.drawVictory(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
