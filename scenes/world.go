package scenes

import (
	"image/color"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/leveldata"
	"github.com/automoto/nightwarden/systems"
	"github.com/automoto/nightwarden/systems/factory"
)

const worldSceneID = "prison-yard"

// WorldScene runs the stealth game proper: the maze, the player, and the
// warden's patrol.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent white flashes from the OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Clock first so every later system sees this cycle's time
	e.AddSystem(systems.UpdateTime)
	e.AddSystem(systems.UpdateAudio)

	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateSensors)
	e.AddSystem(systems.UpdateWardens)
	e.AddSystem(systems.UpdateCaptureTrigger)
	e.AddSystem(systems.UpdateNavigation)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateDebugToggle)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawAgents)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawFade)

	ws.ecs = e

	lvl := leveldata.LoadOrFallback(os.DirFS("."), "assets/levels/yard.tmx")

	// Space before walls and agents so factories can register objects
	factory.CreateSpace(e, lvl.Width, lvl.Height, 16, 16)
	levelEntry := factory.CreateLevel(e, lvl)
	levelData := components.Level.Get(levelEntry)

	factory.CreateSession(e, worldSceneID, levelData.CurrentLevel)
	factory.CreateHUD(e)
	factory.CreateCamera(e, lvl.PlayerSpawn)

	factory.CreatePlayer(e, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	factory.CreateWarden(e, lvl.WardenSpawn.X, lvl.WardenSpawn.Y, lvl.Waypoints, time.Now().UnixNano())

	// Nav grid is probed against the populated collision space
	systems.InitNavigation(e, lvl.Width, lvl.Height)
}
