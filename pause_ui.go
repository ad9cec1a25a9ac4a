package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	backgroundColor = color.NRGBA{R: 0x10, G: 0x18, B: 0x2c, A: 0xff}
	textColor       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func menuFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func menuText(label string, face *ebtext.Face) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func menuButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// menuPanel centers a vertical panel of children on screen. A zero alpha
// panel only shows its text.
func menuPanel(g *Game, alpha uint8, children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: alpha})
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(g.tuning.Game.ScreenWidth)/2, int(g.tuning.Game.ScreenHeight)/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, child := range children {
		panel.AddChild(child)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// NewPauseUI builds the Esc menu.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := menuFace()
	return menuPanel(g, 200,
		menuText("Paused", face),
		menuButton("Resume", face, func() { g.paused = false }),
		menuButton("Toggle sound", face, func() {
			g.mute = !g.mute
			g.session.SetMute(g.mute)
		}),
		menuButton("Quit", face, func() { g.quit = true }),
	)
}

// NewTitleUI shows the title while the camera drifts. Any click starts a run.
func NewTitleUI(g *Game) *ebitenui.UI {
	face := menuFace()
	return menuPanel(g, 0,
		menuText("RAINDROP", face),
		menuText("click or press space to fall", face),
		menuText("every shot costs you water", face),
	)
}

// NewBannerUI is the text shown between the end of a run and the title.
func NewBannerUI(g *Game, message string) *ebitenui.UI {
	face := menuFace()
	return menuPanel(g, 120, menuText(message, face))
}
