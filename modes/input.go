package modes

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gaminal/constants"
	"github.com/lixenwraith/gaminal/engine"
	"github.com/lixenwraith/gaminal/input"
	"github.com/lixenwraith/gaminal/render"
)

// InputHandler drives the game one frame at a time and applies key intents to its lifecycle
type InputHandler struct {
	game   *engine.Game
	canvas render.Canvas
	keys   *input.KeyTable
	clock  *engine.FrameClock

	// Set by the first start; later start keys only resume
	launched bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(game *engine.Game, canvas render.Canvas, keys *input.KeyTable, clock *engine.FrameClock) *InputHandler {
	return &InputHandler{
		game:   game,
		canvas: canvas,
		keys:   keys,
		clock:  clock,
	}
}

// ShowWelcome clears the canvas and prints the key help at the top-left corner
func (h *InputHandler) ShowWelcome() {
	h.canvas.Clear()
	render.DrawLines(h.canvas, 1, 1, constants.WelcomeLines, constants.TextStyle)
}

// Frame runs one drive-loop iteration. ev is the event polled this frame, nil when none.
// While the game runs it renders, updates and steers the ship; lifecycle keys are applied last.
// Returns false when the program should exit.
func (h *InputHandler) Frame(ev tcell.Event) bool {
	intent := h.resolve(ev)

	if h.game.IsStarted() {
		sinceHeartbeat, fps := h.clock.Tick()
		h.game.Render(h.canvas, fps)
		if h.game.Update(sinceHeartbeat) {
			h.clock.ResetHeartbeat()
		}
		h.game.HandleInput(intent)
	}

	return h.applyLifecycle(intent)
}

// resolve maps key events to intents; other events carry none
func (h *InputHandler) resolve(ev tcell.Event) input.IntentType {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return input.IntentNone
	}
	return h.keys.Resolve(key)
}

// applyLifecycle handles quit, start, pause and the restart prompt answers
func (h *InputHandler) applyLifecycle(intent input.IntentType) bool {
	switch intent {
	case input.IntentQuit:
		h.canvas.Clear()
		return false

	case input.IntentStart:
		if !h.launched {
			h.launch()
		} else if !h.game.IsStarted() {
			h.resume()
		}

	case input.IntentPause:
		if h.game.IsStarted() {
			h.game.SetStarted(false)
			h.clock.Pause()
			log.Printf("Game paused")
		} else if h.launched {
			h.resume()
		}

	case input.IntentRestart:
		if h.game.IsStarted() {
			h.canvas.Clear()
			h.game.Restart(h.canvas)
			h.clock.ResetHeartbeat()
		}

	case input.IntentDecline:
		if h.game.IsStarted() {
			h.canvas.Clear()
			return false
		}
	}
	return true
}

// launch starts the first game
func (h *InputHandler) launch() {
	h.launched = true
	h.canvas.Clear()
	h.game.SetStarted(true)
	h.game.Start(h.canvas)
	h.clock.ResetHeartbeat()
}

func (h *InputHandler) resume() {
	h.game.SetStarted(true)
	h.clock.Resume()
	log.Printf("Game resumed")
}
