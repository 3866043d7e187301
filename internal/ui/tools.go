package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/tool"
)

var blue = color.NRGBA{B: 0xff, A: 0xff}

// --- Blue Brush swatch ---
// Tapping selects a Brush in the swatch color; double tapping moves to the
// next palette color first.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	palette  []color.NRGBA
	next     int
	OnTapped func(color.NRGBA)
	rect     *canvas.Rectangle
}

func newColorSwatch(c color.NRGBA, palette []color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, palette: palette, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color)
	s.rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func (s *colorSwatch) DoubleTapped(_ *fyne.PointEvent) {
	if len(s.palette) == 0 {
		return
	}
	s.next = (s.next + 1) % len(s.palette)
	s.Color = s.palette[s.next]
	if s.rect != nil {
		s.rect.FillColor = s.Color
		s.rect.Refresh()
	}
	s.Tapped(nil)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// menuButton pops up a menu with one entry per tool kind.
func menuButton(label string, kinds []tool.Kind, board *BoardWidget) *widget.Button {
	items := make([]*fyne.MenuItem, 0, len(kinds))
	for _, k := range kinds {
		kind := k
		items = append(items, fyne.NewMenuItem(string(kind), func() { board.SelectTool(kind) }))
	}
	menu := fyne.NewMenu(label, items...)

	var btn *widget.Button
	btn = widget.NewButton(label, func() {
		c := fyne.CurrentApp().Driver().CanvasForObject(btn)
		at := fyne.CurrentApp().Driver().AbsolutePositionForObject(btn)
		widget.ShowPopUpMenuAtPosition(menu, c, at.Add(fyne.NewPos(0, btn.Size().Height)))
	})
	return btn
}

func showLayers(board *BoardWidget, win fyne.Window) {
	names := board.Canvas().LayerNames()
	sel := widget.NewSelect(names, nil)
	if len(names) > 0 {
		sel.SetSelected(names[0])
	}

	var d dialog.Dialog
	add := widget.NewButtonWithIcon("New layer", theme.ContentAddIcon(), func() {
		board.NewLayer()
		d.Hide()
	})
	content := container.NewVBox(widget.NewLabel("Select a layer to remove:"), sel, add)
	d = dialog.NewCustomConfirm("Layers", "Remove", "Cancel", content, func(ok bool) {
		if ok && sel.Selected != "" {
			board.RemoveLayer(sel.Selected)
		}
	}, win)
	d.Show()
}

func showColorPicker(board *BoardWidget, win fyne.Window) {
	picker := dialog.NewColorPicker("Choose Color", "", func(c color.Color) {
		board.SetColor(toNRGBA(c))
	}, win)
	picker.Advanced = true
	picker.Show()
}

// NewToolbar builds the tool row for an editable board.
func NewToolbar(board *BoardWidget, palette []color.NRGBA, win fyne.Window, onExport func()) fyne.CanvasObject {
	blueBrush := newColorSwatch(blue, palette, func(c color.NRGBA) {
		board.SetColor(c)
		board.SelectTool(tool.Brush)
	})

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() { showColorPicker(board, win) }),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() { board.SelectTool(tool.Eraser) }),
		widget.NewToolbarAction(theme.DeleteIcon(), board.Clear),
		widget.NewToolbarAction(theme.ListIcon(), func() { showLayers(board, win) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), onExport),
	)

	return container.NewHBox(
		menuButton("Brush", tool.BrushKinds, board),
		menuButton("Shape", tool.ShapeKinds, board),
		widget.NewSeparator(),
		widget.NewLabel("Blue Brush:"),
		blueBrush,
		widget.NewSeparator(),
		actions,
		layout.NewSpacer(),
	)
}
