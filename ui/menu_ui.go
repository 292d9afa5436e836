package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart      func()
	OnFullscreen func()
	OnQuit       func()

	fullscreenButton *widget.Button
	statusLabel      *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	fullscreen  bool
	initialized bool
}

// NewMenuUI creates the main menu. fullscreen is the current display mode.
func NewMenuUI(fullscreen bool, onStart, onFullscreen, onQuit func()) (*MenuUI, error) {
	mui := &MenuUI{
		OnStart:      onStart,
		OnFullscreen: onFullscreen,
		OnQuit:       onQuit,
	}
	if err := mui.loadFonts(); err != nil {
		return nil, err
	}
	mui.buildUI()
	mui.fullscreen = fullscreen
	return mui, nil
}

func (mui *MenuUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   40,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
	return nil
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{12, 14, 22, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("DRONEFALL", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{80, 220, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(mui.button("Start", func() {
		if mui.OnStart != nil {
			mui.OnStart()
		}
	}))
	mui.fullscreenButton = mui.button("Fullscreen: Off", func() {
		if mui.OnFullscreen != nil {
			mui.OnFullscreen()
		}
	})
	contentContainer.AddChild(mui.fullscreenButton)
	contentContainer.AddChild(mui.button("Quit", func() {
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}))

	mui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("WASD / arrows or drag to move. Firing is automatic.", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 170, 255},
		}),
	)
	contentContainer.AddChild(mui.statusLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 40),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 48, 70, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 72, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 36, 52, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetFullscreen updates the fullscreen button label.
func (mui *MenuUI) SetFullscreen(on bool) {
	mui.fullscreen = on
	if textWidget := mui.fullscreenButton.Text(); textWidget != nil {
		textWidget.Label = fullscreenLabel(on)
	}
}

func fullscreenLabel(on bool) string {
	if on {
		return "Fullscreen: On"
	}
	return "Fullscreen: Off"
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
	// Widgets are validated during the first update.
	if !mui.initialized {
		mui.initialized = true
		mui.SetFullscreen(mui.fullscreen)
	}
}
