package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gamehub/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                     { return g.id }
func (g stubGame) Title() string                  { return strings.ToUpper(g.id) }
func (g stubGame) Description() string            { return "stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) error { return nil }
func (g stubGame) HandleAction(core.Action)       {}
func (g stubGame) Timers() []core.Timer           { return nil }
func (g stubGame) Render(*core.Screen)            {}
func (g stubGame) State() core.GameState          { return core.GameState{} }

func init() {
	Register("zeta", func() Game { return stubGame{id: "zeta"} })
	Register("alpha", func() Game { return stubGame{id: "alpha"} })
}

func TestListSortedWithInfo(t *testing.T) {
	games := List()
	if len(games) != 2 {
		t.Fatalf("List() returned %d games, expected 2", len(games))
	}

	want := []GameInfo{
		{ID: "alpha", Title: "ALPHA", Description: "stub alpha"},
		{ID: "zeta", Title: "ZETA", Description: "stub zeta"},
	}
	for i, w := range want {
		if games[i] != w {
			t.Errorf("List()[%d] = %+v, expected %+v", i, games[i], w)
		}
	}
}

func TestCreateAndExists(t *testing.T) {
	tests := []struct {
		id     string
		exists bool
	}{
		{"alpha", true},
		{"zeta", true},
		{"missing", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Exists(tt.id); got != tt.exists {
				t.Errorf("Exists(%q) = %v, expected %v", tt.id, got, tt.exists)
			}

			g, err := Create(tt.id)
			if tt.exists {
				if err != nil {
					t.Fatalf("Create(%q): %v", tt.id, err)
				}
				if g.ID() != tt.id {
					t.Errorf("Create(%q).ID() = %q", tt.id, g.ID())
				}
				return
			}
			if err == nil {
				t.Errorf("Create(%q) should fail", tt.id)
			}
		})
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate id should panic")
		}
	}()
	Register("alpha", func() Game { return stubGame{id: "alpha"} })
}
