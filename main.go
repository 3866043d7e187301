package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"LocalPaint/internal/config"
	share "LocalPaint/internal/net"
	"LocalPaint/internal/state"
	"LocalPaint/internal/ui"
)

const (
	CustomURLScheme = "localpaint://"
	discoverHost    = "discover"
	discoverTimeout = 3 * time.Second
)

func main() {
	cfg, err := config.Resolve(config.Path())
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	args := os.Args
	if len(args) > 1 && strings.HasPrefix(args[1], CustomURLScheme) {
		runViewer(cfg, args[1])
	} else {
		runHost(cfg)
	}
}

func runHost(cfg *config.Resolved) {
	log.Println("Starting as HOST")
	canvas := state.NewCanvas()
	board := ui.NewBoardWidget(canvas)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var onStarted func()
	if cfg.Share {
		onStarted = func() { startSharing(ctx, cfg, canvas, board) }
	}
	ui.RunApp(cfg, board, onStarted)
}

// startSharing streams the host's canvas to viewers. It runs on the UI
// goroutine, so installing OnOp cannot race with drawing.
func startSharing(ctx context.Context, cfg *config.Resolved, canvas *state.Canvas, board *ui.BoardWidget) {
	hub := share.NewHub(canvas.Snapshot, fyne.DoAndWait)
	canvas.OnOp = hub.Broadcast

	go func() {
		if err := hub.Serve(ctx, cfg.Port); err != nil {
			log.Printf("[HOST] %v", err)
			board.SetStatus(fmt.Sprintf("Sharing failed: %v", err))
		}
	}()

	if cfg.Advertise {
		server, err := share.Advertise(cfg.Port)
		if err != nil {
			log.Printf("[HOST] %v", err)
		} else {
			go func() {
				<-ctx.Done()
				server.Shutdown()
			}()
		}
	}

	shareLink := fmt.Sprintf("%s%s:%d", CustomURLScheme, share.OutgoingIP(), cfg.Port)
	board.SetStatus("Sharing at " + shareLink)
}

func runViewer(cfg *config.Resolved, link string) {
	log.Println("Starting as VIEWER")
	canvas := state.NewCanvas()
	board := ui.NewBoardWidget(canvas)
	board.ReadOnly = true
	replica := state.NewReplica(canvas)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ui.RunApp(cfg, board, func() {
		go connectToHost(ctx, link, board, replica)
	})
}

func connectToHost(ctx context.Context, link string, board *ui.BoardWidget, replica *state.Replica) {
	address := strings.TrimPrefix(link, CustomURLScheme)
	address = strings.TrimSuffix(address, "/")

	if address == discoverHost {
		board.SetStatus("Looking for a shared board...")
		found, err := share.Discover(ctx, discoverTimeout)
		if err != nil {
			board.SetStatus(fmt.Sprintf("Discovery failed: %v", err))
			return
		}
		address = found
	}

	board.SetStatus("Watching " + address)
	err := share.Follow(ctx, address,
		func(s state.Snapshot) { fyne.Do(func() { replica.Restore(s) }) },
		func(op state.Op) { fyne.Do(func() { replica.Apply(op) }) },
	)
	if err != nil {
		board.SetStatus(fmt.Sprintf("Disconnected from host: %v", err))
		return
	}
	board.SetStatus("Host closed the board")
}
