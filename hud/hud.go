// Package hud builds the on-screen control panel: simulation speed
// slider, pause and reset buttons, and a focus button per body.
package hud

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Callbacks are the host hooks the panel drives. The HUD never touches
// the world directly; the game translates these into world events.
type Callbacks struct {
	OnSpeed       func(scale float64)
	OnPauseToggle func() bool // returns the new paused state
	OnReset       func()
	OnFocus       func(name string)
}

// HUD owns the ebitenui tree for the control panel.
type HUD struct {
	ui       *ebitenui.UI
	panel    *widget.Container
	pauseBtn *widget.Button
	speedVal *widget.Text
}

// Build creates the panel with one focus button per body name, in the
// order given.
func Build(title string, bodyNames []string, cb Callbacks) *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x12, B: 0x1e, A: 210})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x2e, G: 0x33, B: 0x4a, A: 255})
	trackImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x26, B: 0x38, A: 255})
	handleImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x7a, G: 0x86, B: 0xb8, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	h := &HUD{}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	h.panel = panel

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, white),
	))

	// Speed row: label, slider, live multiplier readout.
	speedRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	speedRow.AddChild(widget.NewText(
		widget.TextOpts.Text("speed", &face, white),
	))

	h.speedVal = widget.NewText(
		widget.TextOpts.Text("1.00x", &face, white),
	)

	slider := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, 500),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 14)),
		widget.SliderOpts.Images(
			&widget.SliderTrackImage{Idle: trackImg, Hover: trackImg},
			&widget.ButtonImage{Idle: handleImg, Hover: handleImg, Pressed: handleImg},
		),
		widget.SliderOpts.FixedHandleSize(10),
		widget.SliderOpts.TrackOffset(0),
		widget.SliderOpts.PageSizeFunc(func() int { return 25 }),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			scale := float64(args.Current) / 100
			h.speedVal.Label = fmt.Sprintf("%.2fx", scale)
			if cb.OnSpeed != nil {
				cb.OnSpeed(scale)
			}
		}),
	)
	slider.Current = 100
	speedRow.AddChild(slider)
	speedRow.AddChild(h.speedVal)
	panel.AddChild(speedRow)

	// Pause / reset row.
	ctrlRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	h.pauseBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Pause", &face, btnTextColor),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 3, Bottom: 3, Left: 10, Right: 10}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cb.OnPauseToggle == nil {
				return
			}
			if cb.OnPauseToggle() {
				h.pauseBtn.Text().Label = "Resume"
			} else {
				h.pauseBtn.Text().Label = "Pause"
			}
		}),
	)
	ctrlRow.AddChild(h.pauseBtn)

	ctrlRow.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Reset view", &face, btnTextColor),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 3, Bottom: 3, Left: 10, Right: 10}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cb.OnReset != nil {
				cb.OnReset()
			}
		}),
	))
	panel.AddChild(ctrlRow)

	// Focus buttons, wrapped into rows of six.
	const perRow = 6
	var focusRow *widget.Container
	for i, name := range bodyNames {
		if i%perRow == 0 {
			focusRow = widget.NewContainer(
				widget.ContainerOpts.Layout(widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
					widget.RowLayoutOpts.Spacing(6),
				)),
			)
			panel.AddChild(focusRow)
		}
		name := name
		focusRow.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(name, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 2, Bottom: 2, Left: 7, Right: 7}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if cb.OnFocus != nil {
					cb.OnFocus(name)
				}
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: 12, Bottom: 12}),
		)),
	)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Update advances widget state. Call once per tick.
func (h *HUD) Update() {
	h.ui.Update()
}

// Draw renders the panel over the scene.
func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

// Contains reports whether the point lies on the panel, so scene
// picking can ignore clicks meant for the controls.
func (h *HUD) Contains(x, y int) bool {
	return image.Pt(x, y).In(h.panel.GetWidget().Rect)
}
