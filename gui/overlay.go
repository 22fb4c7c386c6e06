package gui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/lixenwraith/bubble-popper/constants"
)

// overlay is a centered panel with a title, an optional detail line and one button
type overlay struct {
	ui     *ebitenui.UI
	detail *widget.Text
}

func newOverlay(face ebtext.Face, title, button string, onClick func()) *overlay {
	panelImg := imageui.NewNineSliceColor(colorPanel)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(colorButton),
		Hover:   imageui.NewNineSliceColor(colorButton),
		Pressed: imageui.NewNineSliceColor(colorButtonDown),
	}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	titleText := widget.NewText(widget.TextOpts.Text(title, &face, white), widget.TextOpts.WidgetOpts(center))
	detail := widget.NewText(widget.TextOpts.Text("", &face, white), widget.TextOpts.WidgetOpts(center))

	btn := widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text(button, &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(titleText)
	panel.AddChild(detail)
	panel.AddChild(btn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &overlay{
		ui:     &ebitenui.UI{Container: root},
		detail: detail,
	}
}

// overlays holds the start, game over and pause panels
type overlays struct {
	start    *overlay
	gameOver *overlay
	paused   *overlay
}

func newOverlays(face ebtext.Face, start, playAgain, resume func()) *overlays {
	return &overlays{
		start:    newOverlay(face, constants.TitleText, constants.StartText, start),
		gameOver: newOverlay(face, constants.GameOverText, constants.PlayAgainText, playAgain),
		paused:   newOverlay(face, constants.PausedText, "[ Resume ]", resume),
	}
}
