// Package world holds the state shared by every scene: resources, the
// integrated input state, audio and the battle log.
package world

import (
	"math/rand"

	"sudokubattle/pkg/engine/assets"
	"sudokubattle/pkg/engine/audio"
	"sudokubattle/pkg/game/config"
	"sudokubattle/pkg/game/controls"
)

// MaxMessages is how many log lines are kept.
const MaxMessages = 5

// World is passed to every scene on every call.
type World struct {
	Config *config.Config
	Assets *assets.Store
	Input  *controls.State
	Audio  audio.Player
	Rand   *rand.Rand

	// Messages is the battle log, oldest first.
	Messages []string

	// QuitRequested ends the game loop after the current tick.
	QuitRequested bool
}

// New creates a world. A nil player is replaced by a silent one.
func New(cfg *config.Config, store *assets.Store, player audio.Player, rng *rand.Rand) *World {
	if player == nil {
		player = audio.Nop{}
	}
	return &World{
		Config:   cfg,
		Assets:   store,
		Input:    controls.NewState(),
		Audio:    player,
		Rand:     rng,
		Messages: make([]string, 0, MaxMessages),
	}
}

// AddMessage appends a line to the battle log, keeping only the last
// MaxMessages.
func (w *World) AddMessage(msg string) {
	w.Messages = append(w.Messages, msg)
	if len(w.Messages) > MaxMessages {
		w.Messages = w.Messages[len(w.Messages)-MaxMessages:]
	}
}

// ClearMessages empties the battle log.
func (w *World) ClearMessages() {
	w.Messages = w.Messages[:0]
}
