package game

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/napolitain/defense-econ/internal/models"
)

func quietEngine() *Engine {
	return NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// mustApply fails the test when a command is rejected
func mustApply(t *testing.T, e *Engine, s *models.GameState, cmd Command) {
	t.Helper()
	if err := e.Apply(s, cmd); err != nil {
		t.Fatalf("%s: unexpected error: %v", cmd.Name(), err)
	}
}

// expectRejected fails the test unless err wraps want
func expectRejected(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Errorf("error = %v, want %v", err, want)
	}
}

// newTestState builds a bare nation with a small hand-written catalog
func newTestState() *models.GameState {
	s := models.NewGameState(models.NewNation("Player"))
	s.AllIndustries = []*models.Industry{
		models.NewIndustry("X", 1, 1.0, 5, 5, nil),
		models.NewIndustry("Y", 2, 1.5, 5, 5, nil),
	}
	s.AvailableTechnologies = []*models.Technology{
		models.NewTechnology("Unlock Y", 100, []string{"Y"}, 0, nil),
		models.NewTechnology("Growth", 1000, nil, 0, map[string]float64{models.EffectGDPGrowthModifier: 0.01}),
	}
	s.AvailableProjects = []*models.ProjectDefinition{
		{ID: "build_ic", Name: "Build IC", CPCost: 10, UpkeepCost: 10, RequiresTarget: true,
			Effects: map[models.ProjectEffect]float64{models.AddIC: 5}},
		{ID: "build_infra", Name: "Build Infrastructure", CPCost: 15, UpkeepCost: 15,
			Effects: map[models.ProjectEffect]float64{models.AddInfrastructure: 1}},
		{ID: "big", Name: "Big Project", CPCost: 10000, UpkeepCost: 20},
	}
	return s
}

func addIndustry(s *models.GameState, name string, gov, private float64) *models.Industry {
	ind := models.NewIndustry(name, 1, 1.0, gov, private, nil)
	s.Player.Industries = append(s.Player.Industries, ind)
	return ind
}
