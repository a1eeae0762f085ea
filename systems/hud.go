package systems

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/tags"
)

const (
	hudMargin    = 10
	hudBarWidth  = 130
	hudBarHeight = 13
)

var (
	hudFaceOnce sync.Once
	hudFace     text.Face
)

func hudTextFace() text.Face {
	hudFaceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Warning: could not load HUD font: %v", err)
			return
		}
		hudFace = &text.GoTextFace{Source: src, Size: 12}
	})
	return hudFace
}

// DrawHUD renders every visible HUD surface. Surfaces hidden by the
// recovery sequence (or the player's own toggles) are skipped
// individually.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)

	if hud.Visible[components.HUDDeaths] {
		drawDeathsSurface(e, screen)
	}
	if hud.Visible[components.HUDStamina] {
		drawStaminaSurface(e, screen)
	}
	if hud.Visible[components.HUDDetection] {
		drawDetectionSurface(e, screen)
	}
	if hud.Visible[components.HUDHint] {
		drawHintSurface(screen)
	}
}

func drawDeathsSurface(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	drawLabel(screen, fmt.Sprintf("Captures: %d", session.Deaths), hudMargin, hudMargin)
}

func drawStaminaSurface(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	y := float32(hudMargin + 20)
	vector.DrawFilledRect(screen, hudMargin, y, hudBarWidth, hudBarHeight, cfg.DarkGray, false)
	ratio := float32(player.Stamina / cfg.Player.StaminaMax)
	vector.DrawFilledRect(screen, hudMargin, y, hudBarWidth*ratio, hudBarHeight, cfg.Green, false)
}

// drawDetectionSurface shows the warden's awareness: red while the player
// is directly seen or remembered, dark otherwise.
func drawDetectionSurface(e *ecs.ECS, screen *ebiten.Image) {
	wardenEntry, ok := tags.Warden.First(e.World)
	if !ok {
		return
	}
	det := components.Detection.Get(wardenEntry)

	clr := cfg.DarkGray
	if det.Seen {
		clr = cfg.Red
	}
	x := float32(cfg.C.Width - hudMargin - 16)
	vector.DrawFilledCircle(screen, x, hudMargin+8, 8, clr, true)
}

func drawHintSurface(screen *ebiten.Image) {
	drawLabel(screen, "WASD move / Shift sprint / Esc menu", hudMargin, cfg.C.Height-22)
}

func drawLabel(screen *ebiten.Image, s string, x, y int) {
	face := hudTextFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, s, face, op)
}
