// Package registry maps game ids to factories. Games register from init(),
// so importing a game package is enough for the CLI and the SSH server to
// start it by id.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/keyfall/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is driven by the platform one fixed tick at a time. Implementations
// never touch the terminal; they read an InputFrame and draw into a Screen.
type Game interface {
	// ID is the name used on the command line.
	ID() string

	// Title is the display name.
	Title() string

	// Reset (re)starts the game for the given session.
	Reset(cfg core.RuntimeConfig)

	// Step consumes one frame of input and advances at most one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports pause and freeze status.
	State() core.GameState
}

// Factory builds a fresh game.
type Factory func() Game

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu    sync.RWMutex
	games = map[string]entry{}
)

// Register adds a factory under id. It panics on an empty or duplicate id,
// which can only happen through a programming error in an init().
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(games))
	for _, e := range games {
		infos = append(infos, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
