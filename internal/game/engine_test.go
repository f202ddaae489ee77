package game

import (
	"testing"

	"github.com/napolitain/defense-econ/internal/config"
	"github.com/napolitain/defense-econ/internal/loader"
)

func TestNewStateFromCatalogs(t *testing.T) {
	catalogs, err := loader.LoadCatalogs("../../data")
	if err != nil {
		t.Fatalf("Failed to load catalogs: %v", err)
	}

	s := NewState(catalogs, config.Default())
	n := s.Player

	if n.Name != "Player" || n.Treasury != 1000 {
		t.Errorf("unexpected player: %s with treasury %v", n.Name, n.Treasury)
	}
	if len(s.AllIndustries) != len(catalogs.Industries) {
		t.Errorf("archetypes = %d, want %d", len(s.AllIndustries), len(catalogs.Industries))
	}
	for _, ind := range n.Industries {
		if ind.Tier != 1 {
			t.Errorf("%s seeded with tier %d, want only tier 1", ind.Name, ind.Tier)
		}
	}
	mining := n.Industry("Ore Mining")
	if mining == nil {
		t.Fatal("Ore Mining not seeded")
	}
	if mining.GovernmentIC != 5 || mining.PrivateIC != 5 {
		t.Errorf("Ore Mining IC = %v/%v, want 5/5", mining.GovernmentIC, mining.PrivateIC)
	}

	// Game state owns copies; the catalogs stay pristine
	if err := Apply(s, Research{Technology: "Industrialization"}); err != nil {
		t.Fatalf("research: %v", err)
	}
	quietEngine().EndTurn(s)
	if catalogs.Technologies[0].RPProgress != 0 {
		t.Errorf("catalog technology progressed to %v", catalogs.Technologies[0].RPProgress)
	}
	if s.Archetype("Ore Mining") == mining {
		t.Error("nation industry shares its archetype pointer")
	}
}

func TestFullGameAdvancedManufacturing(t *testing.T) {
	catalogs, err := loader.LoadCatalogs("../../data")
	if err != nil {
		t.Fatalf("Failed to load catalogs: %v", err)
	}
	s := NewState(catalogs, config.Default())
	e := quietEngine()

	initial := len(s.Player.Industries)
	mustApply(t, e, s, Research{Technology: "Advanced Manufacturing"})
	mustApply(t, e, s, StartProject{ProjectID: "build_ic_1", Target: "Ore Mining"})
	// 27 starting IC gives 6.35 CP a turn against a cost of 50
	for i := 0; i < 8; i++ {
		mustApply(t, e, s, EndTurn{})
	}

	if len(s.Player.Industries) <= initial {
		t.Errorf("industries = %d, want more than %d", len(s.Player.Industries), initial)
	}
	if s.Player.Industry("Advanced Machinery") == nil {
		t.Error("Advanced Machinery not unlocked")
	}
	if got := s.Player.Industry("Ore Mining").GovernmentIC; got <= 5 {
		t.Errorf("Ore Mining government IC = %v, want above 5", got)
	}
	if s.Turn != 8 {
		t.Errorf("Turn = %d, want 8", s.Turn)
	}
}
