package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/system"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	staminaBarWidth  = 200
	staminaBarHeight = 8
)

type Game struct {
	levelName string
	specName  string
	debug     bool
	log       *logrus.Logger

	level   *levels.Level
	spec    *prefabs.PlayerSpec
	world   *physics.World
	ctrl    *system.PlayerController
	device  component.InputSource
	stamina *component.Stamina
	cam     camera

	watcher *prefabs.Watcher
	lastEvt system.Event
}

func NewGame(levelName, specName string, debug bool, log *logrus.Logger) (*Game, error) {
	g := &Game{
		levelName: levelName,
		specName:  specName,
		debug:     debug,
		log:       log,
		device:    NewDevice(),
	}
	if err := g.load(); err != nil {
		return nil, err
	}

	var dirs []string
	for _, d := range []string{"prefabs", "levels"} {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) > 0 {
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.WithError(err).Warn("hot reload disabled")
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// load (re)builds the level and controller from disk or the embedded files.
func (g *Game) load() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return err
	}
	spec, err := prefabs.LoadPlayerSpecFile(g.specName)
	if err != nil {
		return err
	}
	cfg := spec.Config()
	world, err := physics.BuildLevel(lvl, cfg.DeltaTime())
	if err != nil {
		return err
	}

	var src component.InputSource = g.device
	if spec.ForwardOnly {
		src = input.ForwardOnly{InputSource: g.device}
	}

	collider := spec.HurtboxCollider()
	ctrl := system.NewPlayerController(cfg, spec.AbilitySet(), collider, world, src)
	ctrl.SetLogger(g.log.WithField("level", g.levelName))
	ctrl.SetPosition(physics.SpawnPosition(lvl, collider))
	ctrl.Events().Subscribe("hud", func(evt system.Event) { g.lastEvt = evt })

	stamina := spec.NewStamina()
	if stamina != nil {
		drain := &system.StaminaDrain{
			Stamina:        stamina,
			JumpCost:       spec.Stamina.JumpCost,
			DoubleJumpCost: spec.Stamina.DoubleJumpCost,
			LandingRestore: spec.Stamina.LandingRestore,
		}
		drain.Attach(ctrl.Events(), "stamina")
	}

	g.level = lvl
	g.spec = spec
	g.world = world
	g.ctrl = ctrl
	g.stamina = stamina
	g.lastEvt = system.Event{}
	g.cam = fitCamera(float64(lvl.Width)*physics.TileSize, float64(lvl.Height)*physics.TileSize, baseWidth, baseHeight)
	ebiten.SetTPS(spec.TickRate)
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload("respawn")
	}
	g.pollWatcher()

	// TPS matches the tick rate, so each frame is exactly one tick.
	g.ctrl.Step()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if ext := filepath.Ext(path); ext == ".tengo" {
				continue
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.WithError(err).Warn("watcher")
		default:
			return
		}
	}
}

func (g *Game) reload(reason string) {
	if err := g.load(); err != nil {
		g.log.WithError(err).WithField("reason", reason).Error("reload failed; keeping previous state")
		return
	}
	g.log.WithField("reason", reason).Info("reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	for _, b := range g.world.Boxes() {
		clr := color.Color(colornames.Slategray)
		if b.Effector != nil {
			clr = colornames.Goldenrod
		}
		g.cam.fillBB(screen, b.BB, clr)
	}
	if g.debug {
		drawPhysicsDebug(g.world.Space(), g.cam, screen)
	}

	st := g.ctrl.State()
	body := g.spec.Debug.Color.ColorOr(colornames.Dodgerblue)
	if st.Crouching {
		body = g.spec.Debug.CrouchColor.ColorOr(colornames.Orange)
	}
	if st.Dashing {
		body = colornames.White
	}
	g.cam.fillBB(screen, g.ctrl.Bounds(), body)

	if g.spec.Debug.ShowProbes || g.debug {
		g.drawProbes(screen)
	}
	g.drawHUD(screen, st)
}

// drawProbes outlines the four detection regions, green when touching.
func (g *Game) drawProbes(screen *ebiten.Image) {
	bb := g.ctrl.Bounds()
	d := g.ctrl.Config().DetectionRayLength
	col := g.ctrl.Collision()
	probes := []struct {
		bb  cp.BB
		hit bool
	}{
		{cp.BB{L: bb.L, B: bb.B - d, R: bb.R, T: bb.B}, col.Grounded},
		{cp.BB{L: bb.L, B: bb.T, R: bb.R, T: bb.T + d}, col.HittingCeiling},
		{cp.BB{L: bb.L - d, B: bb.B, R: bb.L, T: bb.T}, col.TouchingLeftWall},
		{cp.BB{L: bb.R, B: bb.B, R: bb.R + d, T: bb.T}, col.TouchingRightWall},
	}
	for _, p := range probes {
		clr := colornames.Red
		if p.hit {
			clr = colornames.Lime
		}
		g.cam.strokeBB(screen, p.bb, clr)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, st component.Character) {
	text := fmt.Sprintf("TPS: %.1f  tick: %d\npos: %.2f, %.2f  vel: %.2f, %.2f\ngrounded: %v  crouch: %v  dash: %v\nlast event: %s %v @%d",
		ebiten.ActualTPS(), g.ctrl.Tick(),
		st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y,
		g.ctrl.Grounded(), st.Crouching, st.Dashing,
		g.lastEvt.Kind, g.lastEvt.Value, g.lastEvt.Tick)
	ebitenutil.DebugPrint(screen, text)

	if g.stamina == nil {
		return
	}
	x, y := float32(baseWidth-staminaBarWidth-16), float32(16)
	vector.DrawFilledRect(screen, x, y, staminaBarWidth, staminaBarHeight, colornames.Dimgray, false)
	vector.DrawFilledRect(screen, x, y, float32(staminaBarWidth*g.stamina.Fraction()), staminaBarHeight, colornames.Limegreen, false)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
