package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gaminal/constants"
	"github.com/lixenwraith/gaminal/engine"
	"github.com/lixenwraith/gaminal/input"
	"github.com/lixenwraith/gaminal/modes"
	"github.com/lixenwraith/gaminal/render"
)

var errTerminalTooSmall = errors.New("terminal too small")

// run is the drive loop: one frame per tick of the frame interval, each frame consuming at
// most one pending event. Returns nil on a quit key and ctx.Err() on cancellation.
func run(ctx context.Context, screen tcell.Screen, cfg engine.Config, provider engine.TimeProvider) error {
	game, err := engine.NewGame(cfg)
	if err != nil {
		return err
	}

	surface := render.NewScreenSurface(screen)
	needW, needH := game.Width(), game.Height()+constants.StatusRowOffset
	if w, h := surface.Size(); w < needW || h < needH {
		return fmt.Errorf("%w: have %dx%d, need %dx%d", errTerminalTooSmall, w, h, needW, needH)
	}

	handler := modes.NewInputHandler(game, surface, input.DefaultKeyTable(), engine.NewFrameClock(provider))
	handler.ShowWelcome()
	surface.Show()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			// nil after Fini
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	frameTicker := time.NewTicker(game.FrameInterval())
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Drive loop cancelled: %v", ctx.Err())
			return ctx.Err()
		case <-frameTicker.C:
		}

		var ev tcell.Event
		select {
		case ev = <-eventChan:
		default:
		}

		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}

		running := handler.Frame(ev)
		surface.Show()
		if !running {
			log.Printf("Quit requested")
			return nil
		}
	}
}
