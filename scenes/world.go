package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/events"
	"github.com/automoto/brickfall/systems"
	"github.com/automoto/brickfall/systems/factory"
)

// WorldScene runs the playfield: paddle, ball, bricks, hazards and the
// life-loss and respawn orchestration.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	runEnded     bool
}

// NewWorldScene creates a new gameplay scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.runEnded {
		ws.recordRun()
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) recordRun() {
	levelIndex := 0
	if levelEntry, ok := components.Level.First(ws.ecs.World); ok {
		levelIndex = components.Level.Get(levelEntry).LevelIndex
	}
	systems.RecordRunEnd(levelIndex, cfg.Respawn.StartingLives)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateTicker)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and game over checks. Order matters:
	// movement feeds the contact feed, which feeds the loss arbiter, which
	// feeds the respawn schedule.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePaddle))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBall))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHazards))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateContacts))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLossArbiter))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRespawn))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePaddleScale))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSizeEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLevel))

	// Event drain runs last, paused or not
	ecs.AddSystem(systems.UpdateEvents)

	ecs.AddRenderer(cfg.Default, systems.DrawPlayfield)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs

	// Run state and the contact feed exist before any level content.
	factory.CreateRun(ws.ecs)
	factory.CreateContactFeed(ws.ecs)
	factory.CreateFadeOverlay(ws.ecs)

	level := factory.CreateLevel(ws.ecs)
	levelData := components.Level.Get(level)

	factory.CreateSpace(ws.ecs,
		levelData.CurrentLevel.MapWidth,
		levelData.CurrentLevel.MapHeight,
		16, 16,
	)

	systems.SwitchToLevel(ws.ecs, levelData, levelData.LevelIndex)

	events.GameOverRequested.Subscribe(ws.ecs.World, func(w donburi.World, e events.GameOverRequestedData) {
		ws.runEnded = true
	})
}
