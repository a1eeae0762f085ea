package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/nightwarden/systems"
)

// MenuUI holds the ebitenui interface for the main menu.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay func()
	OnQuit func()

	musicLabel    *widget.Label
	sfxLabel      *widget.Label
	capturesLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu with ebitenui.
func NewMenuUI(onPlay, onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnPlay: onPlay,
		OnQuit: onQuit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Small sizes to fit the 640x360 screen
	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   22,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 15, 25, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("NIGHTWARDEN", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	mui.capturesLabel = widget.NewLabel(
		widget.LabelOpts.Text(mui.capturesText(), &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	)
	contentContainer.AddChild(mui.capturesLabel)

	contentContainer.AddChild(mui.buildButtonsContainer())
	contentContainer.AddChild(mui.buildVolumeContainer())

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Play", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnPlay != nil {
				mui.OnPlay()
			}
		}),
	)
	container.AddChild(playButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	return container
}

// buildVolumeContainer builds +/- stepper rows for music and sfx volume.
func (mui *MenuUI) buildVolumeContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	mui.musicLabel = widget.NewLabel(
		widget.LabelOpts.Text(mui.musicText(), &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 220, 255},
		}),
	)
	container.AddChild(mui.volumeRow(mui.musicLabel,
		func() { mui.adjustMusic(-0.1) },
		func() { mui.adjustMusic(0.1) },
	))

	mui.sfxLabel = widget.NewLabel(
		widget.LabelOpts.Text(mui.sfxText(), &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 220, 255},
		}),
	)
	container.AddChild(mui.volumeRow(mui.sfxLabel,
		func() { mui.adjustSFX(-0.1) },
		func() { mui.adjustSFX(0.1) },
	))

	return container
}

func (mui *MenuUI) volumeRow(label *widget.Label, onDown, onUp func()) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(mui.stepButton("-", onDown))
	row.AddChild(label)
	row.AddChild(mui.stepButton("+", onUp))

	return row
}

func (mui *MenuUI) stepButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(24, 20)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{220, 220, 255, 255},
			Pressed: color.RGBA{170, 170, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) adjustMusic(delta float64) {
	systems.SetMusicVolume(systems.GetMusicVolume() + delta)
	mui.saveVolumes()
	if textWidget := mui.musicLabel; textWidget != nil {
		textWidget.Label = mui.musicText()
	}
}

func (mui *MenuUI) adjustSFX(delta float64) {
	systems.SetSFXVolume(systems.GetSFXVolume() + delta)
	mui.saveVolumes()
	if textWidget := mui.sfxLabel; textWidget != nil {
		textWidget.Label = mui.sfxText()
	}
}

func (mui *MenuUI) saveVolumes() {
	_ = systems.SaveSettings(&systems.SavedSettings{
		MusicVolume: systems.GetMusicVolume(),
		SFXVolume:   systems.GetSFXVolume(),
	})
}

func (mui *MenuUI) musicText() string {
	return fmt.Sprintf("Music %3.0f%%", systems.GetMusicVolume()*100)
}

func (mui *MenuUI) sfxText() string {
	return fmt.Sprintf("SFX   %3.0f%%", systems.GetSFXVolume()*100)
}

func (mui *MenuUI) capturesText() string {
	return fmt.Sprintf("Times caught: %d", systems.LifetimeCaptures())
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update advances the ebitenui state machine.
func (mui *MenuUI) Update() {
	mui.UI.Update()
	if mui.capturesLabel != nil {
		mui.capturesLabel.Label = mui.capturesText()
	}
}
