package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/config"
	"LocalPaint/internal/export"
	"LocalPaint/internal/tool"
)

// exportPDF asks for a file and writes the board to it.
func exportPDF(board *BoardWidget, win fyne.Window) {
	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return
		}
		defer func() {
			if err := w.Close(); err != nil {
				log.Printf("[EXPORT] Error closing writer: %v", err)
			}
		}()

		if err := export.WritePDF(w, board.Canvas()); err != nil {
			log.Printf("[EXPORT] %v", err)
			board.statusBar.SetText("Export failed")
			return
		}
		board.statusBar.SetText(fmt.Sprintf("Exported to %s", w.URI().Name()))
	}, win)
	save.SetFileName("drawing.pdf")
	save.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	save.Show()
}

// RunApp opens the main window and blocks until it closes. Read-only boards
// get no drawing tools. onStarted runs once the app is up, on the UI
// goroutine.
func RunApp(cfg *config.Resolved, board *BoardWidget, onStarted func()) {
	myApp := app.New()
	if onStarted != nil {
		myApp.Lifecycle().SetOnStarted(onStarted)
	}
	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(cfg.Width, cfg.Height))

	var top fyne.CanvasObject
	if board.ReadOnly {
		top = container.NewHBox(widget.NewButton("Export PDF", func() { exportPDF(board, myWindow) }))
	} else {
		board.SelectTool(tool.Pencil)
		top = NewToolbar(board, cfg.Palette, myWindow, func() { exportPDF(board, myWindow) })
	}

	content := container.NewBorder(top, board.statusBar, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
