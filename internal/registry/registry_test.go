package registry

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/keyfall/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	assert.True(t, Exists("zz-stub"))
	assert.False(t, Exists("zz-missing"))

	g, err := Create("zz-stub")
	require.NoError(t, err)
	assert.Equal(t, "zz-stub", g.ID())

	_, err = Create("zz-missing")
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.ErrorContains(t, err, `"zz-missing"`)

	var found bool
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			assert.Equal(t, "Stub zz-stub", info.Title)
		}
	}
	assert.True(t, found, "List should include registered game")

	assert.Panics(t, func() {
		Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	})
	assert.Panics(t, func() {
		Register("", func() Game { return &stubGame{} })
	})
}

func TestListIsSorted(t *testing.T) {
	Register("zz-b", func() Game { return &stubGame{id: "zz-b"} })
	Register("zz-a", func() Game { return &stubGame{id: "zz-a"} })

	list := List()
	assert.True(t, slices.IsSortedFunc(list, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	}))
}
