package game

import (
	"reflect"
	"testing"

	"github.com/napolitain/defense-econ/internal/models"
)

func TestEndTurnFreshNation(t *testing.T) {
	e := quietEngine()
	s := newTestState()

	report := e.EndTurn(s)

	// growth 0.01 base + 0.005 neutral stability at opinion 50
	if s.Turn != 1 || report.Turn != 1 {
		t.Errorf("turn = %d, report turn = %d, want 1", s.Turn, report.Turn)
	}
	if !near(s.Player.CivilianGDP, 10150) {
		t.Errorf("GDP = %v, want 10150", s.Player.CivilianGDP)
	}
	if !near(s.Player.Treasury, 1000+10150*0.15) {
		t.Errorf("treasury = %v, want %v", s.Player.Treasury, 1000+10150*0.15)
	}
	if !near(s.Player.PublicOpinion, 50) {
		t.Errorf("opinion = %v, want 50", s.Player.PublicOpinion)
	}
	if len(report.Nations) != 1 {
		t.Fatalf("nation reports = %d, want 1", len(report.Nations))
	}
	if !near(report.Nations[0].TreasuryDelta, 1522.5) {
		t.Errorf("treasury delta = %v, want 1522.5", report.Nations[0].TreasuryDelta)
	}
}

func TestTurnAdvancesByOne(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	s.Player.Treasury = -5000 // even under deficit the pipeline completes

	for want := 1; want <= 5; want++ {
		e.EndTurn(s)
		if s.Turn != want {
			t.Fatalf("turn = %d, want %d", s.Turn, want)
		}
	}

	mustApply(t, e, s, SetTax{Rate: 0.2})
	if s.Turn != 5 {
		t.Errorf("commands advanced the turn to %d", s.Turn)
	}
	mustApply(t, e, s, EndTurn{})
	if s.Turn != 6 {
		t.Errorf("turn = %d, want 6", s.Turn)
	}
}

func TestResearchCompletionUnlocksIndustry(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	n := s.Player
	mustApply(t, e, s, Research{Technology: "Unlock Y"})

	e.EndTurn(s)
	tech := s.Technology("Unlock Y")
	if tech.Researched || n.Industry("Y") != nil {
		t.Fatal("research completed after one turn at 50 RP")
	}

	report := e.EndTurn(s)
	if !tech.Researched || n.CurrentResearch != nil || !n.HasResearched("Unlock Y") {
		t.Fatalf("research not completed: researched=%v current=%v", tech.Researched, n.CurrentResearch)
	}
	nr := report.Nations[0]
	if nr.CompletedResearch != "Unlock Y" || !reflect.DeepEqual(nr.UnlockedIndustries, []string{"Y"}) {
		t.Errorf("report = %q / %v", nr.CompletedResearch, nr.UnlockedIndustries)
	}

	count := 0
	for _, ind := range n.Industries {
		if ind.Name == "Y" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Y owned %d times, want 1", count)
	}
	y := n.Industry("Y")
	if y.GovernmentIC != 0 || y.PrivateIC != 0 || y.BaseProfitability != 1.5 {
		t.Errorf("unlocked industry = %+v", y)
	}
	if s.Archetype("Y") == y {
		t.Error("unlocked industry shares its archetype pointer")
	}
}

func TestUnlockSkipsOwnedIndustry(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	owned := addIndustry(s, "Y", 3, 3)
	s.Technology("Unlock Y").RPProgress = 99
	mustApply(t, e, s, Research{Technology: "Unlock Y"})

	e.EndTurn(s)
	if len(s.Player.Industries) != 1 || s.Player.Industries[0] != owned {
		t.Errorf("industries = %v, want only the owned Y", s.Player.Industries)
	}
}

func TestConstructionCompletesOnce(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	n := s.Player
	ind := addIndustry(s, "X", 0, 0)
	mustApply(t, e, s, StartProject{ProjectID: "build_ic", Target: "X"})
	p := n.ActiveProjects[0]

	// No industry capacity: 5 CP per turn against a cost of 10
	e.EndTurn(s)
	if !near(p.CurrentCP, 5) || ind.GovernmentIC != 0 {
		t.Fatalf("after one turn CP = %v, IC = %v", p.CurrentCP, ind.GovernmentIC)
	}

	report := e.EndTurn(s)
	if len(n.ActiveProjects) != 0 {
		t.Errorf("completed project still active")
	}
	if !reflect.DeepEqual(report.Nations[0].CompletedProjects, []string{"build_ic"}) {
		t.Errorf("completed = %v", report.Nations[0].CompletedProjects)
	}
	if ind.GovernmentIC != 5 {
		t.Errorf("government IC = %v, want 5", ind.GovernmentIC)
	}

	e.EndTurn(s)
	if ind.GovernmentIC != 5 {
		t.Errorf("effect applied twice: government IC = %v", ind.GovernmentIC)
	}
}

func TestEveryActiveProjectGetsFullConstructionPoints(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	n := s.Player
	addIndustry(s, "X", 10, 10) // 5 + 20*0.5*0.1 = 6 CP
	mustApply(t, e, s, StartProject{ProjectID: "big"})
	mustApply(t, e, s, StartProject{ProjectID: "big"})

	report := e.EndTurn(s)
	if !near(report.Nations[0].ConstructionPoints, 6) {
		t.Errorf("CP = %v, want 6", report.Nations[0].ConstructionPoints)
	}
	for i, p := range n.ActiveProjects {
		if !near(p.CurrentCP, 6) {
			t.Errorf("project %d CP = %v, want 6", i, p.CurrentCP)
		}
	}
}

func TestInfrastructureProject(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	mustApply(t, e, s, StartProject{ProjectID: "build_infra"})

	for i := 0; i < 3; i++ {
		e.EndTurn(s)
	}
	if s.Player.InfrastructureLevel != 2 {
		t.Errorf("infrastructure = %d, want 2", s.Player.InfrastructureLevel)
	}
	if len(s.Player.ActiveProjects) != 0 {
		t.Errorf("active projects = %d, want 0", len(s.Player.ActiveProjects))
	}
}

func TestConstructionPausedByDeficit(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	n := s.Player
	n.ConstructionSlots = 1
	n.Treasury = -100000
	n.ProjectQueue = []*models.ProjectInstance{models.NewProjectInstance("build_ic", "X")}

	report := e.EndTurn(s)
	if !report.Nations[0].ConstructionPaused {
		t.Error("construction not reported as paused")
	}
	// queue promotion still happens
	if len(n.ActiveProjects) != 1 || len(n.ProjectQueue) != 0 {
		t.Fatalf("active %d queued %d, want 1 and 0", len(n.ActiveProjects), len(n.ProjectQueue))
	}
	if n.ActiveProjects[0].CurrentCP != 0 {
		t.Errorf("paused project progressed to %v", n.ActiveProjects[0].CurrentCP)
	}
}

func TestUnknownProjectNeverCompletes(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	mustApply(t, e, s, StartProject{ProjectID: "ghost"})
	before := ProjectTreasuryDelta(s)

	for i := 0; i < 10; i++ {
		e.EndTurn(s)
	}
	if len(s.Player.ActiveProjects) != 1 || s.Player.ActiveProjects[0].CurrentCP != 0 {
		t.Errorf("unknown project changed: %v", s.Player.ActiveProjects)
	}
	// no upkeep for unknown ids
	if !near(before, 10000*1.015*0.15) {
		t.Errorf("projection = %v, want %v", before, 10000*1.015*0.15)
	}
}

func TestCompletedProjectPaysNoUpkeep(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	n := s.Player
	mustApply(t, e, s, StartProject{ProjectID: "build_ic", Target: "X"})
	n.ActiveProjects[0].CurrentCP = 9

	report := e.EndTurn(s)
	if !reflect.DeepEqual(report.Nations[0].CompletedProjects, []string{"build_ic"}) {
		t.Fatalf("completed = %v", report.Nations[0].CompletedProjects)
	}
	if !near(report.Nations[0].TreasuryDelta, 10000*1.015*0.15) {
		t.Errorf("treasury delta = %v, want %v", report.Nations[0].TreasuryDelta, 10000*1.015*0.15)
	}
}

func TestProjectTreasuryDeltaMatchesSettlement(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	addIndustry(s, "X", 5, 5)
	mustApply(t, e, s, SetBudget{Category: models.BudgetSocialSpending, Amount: 100})
	mustApply(t, e, s, StartProject{ProjectID: "big"})

	treasury := s.Player.Treasury
	first := ProjectTreasuryDelta(s)
	if second := ProjectTreasuryDelta(s); first != second {
		t.Errorf("projection not stable: %v then %v", first, second)
	}
	if s.Player.Treasury != treasury {
		t.Errorf("projection mutated treasury to %v", s.Player.Treasury)
	}

	e.EndTurn(s)
	if got := s.Player.Treasury - treasury; !near(got, first) {
		t.Errorf("actual change %v, projected %v", got, first)
	}
}

func TestTreasurySettlementWithIndustries(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	addIndustry(s, "X", 5, 5)
	mustApply(t, e, s, SetBudget{Category: models.BudgetSocialSpending, Amount: 100})
	mustApply(t, e, s, StartProject{ProjectID: "big"})

	report := e.EndTurn(s)

	// 5*1*0.8 + 5*0.8*0.2 + 10150*0.15 - 100 - 20
	expected := 4 + 0.8 + 1522.5 - 100 - 20
	if !near(report.Nations[0].TreasuryDelta, expected) {
		t.Errorf("treasury delta = %v, want %v", report.Nations[0].TreasuryDelta, expected)
	}
	if !near(s.Player.Treasury, 1000+expected) {
		t.Errorf("treasury = %v, want %v", s.Player.Treasury, 1000+expected)
	}
}

func TestPrivateReinvestment(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	a := addIndustry(s, "A", 0, 10)
	b := addIndustry(s, "B", 0, 10)
	b.Level = 3
	s.Player.Technologies = []*models.Technology{models.NewTechnology("Cheap", 1, nil, 0.1, nil)}

	report := e.EndTurn(s)

	// each industry: profit 10*0.8 = 8, 80% of it pooled; pool 12.8 split evenly
	nr := report.Nations[0]
	tests := []struct {
		name          string
		got, expected float64
	}{
		{"pool", nr.ReinvestmentPool, 12.8},
		{"A private IC", a.PrivateIC, 10 + 6.4/(10*0.9)},
		{"B private IC", b.PrivateIC, 10 + 6.4/(10*0.9*0.9)},
		{"reinvested IC", nr.ReinvestedIC, 6.4/9 + 6.4/8.1},
	}
	for _, tt := range tests {
		if !near(tt.got, tt.expected) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
		}
	}
}

func TestReinvestmentSkippedWithoutProfit(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	ind := addIndustry(s, "A", 0, 10)
	ind.BaseProfitability = 0

	e.EndTurn(s)
	if ind.PrivateIC != 10 {
		t.Errorf("private IC = %v, want 10", ind.PrivateIC)
	}
}

func TestEventsFireOnce(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	addIndustry(s, "X", 10, 0) // +1 crisis awareness per turn, no reinvestment
	s.AvailableEvents = []*models.Event{
		{Name: "Windfall", TriggerThreshold: 1, Effects: map[models.NationAttribute]float64{models.AttrTreasury: 100}},
		{Name: "Later", TriggerThreshold: 3, Effects: map[models.NationAttribute]float64{models.AttrPublicOpinion: -10}},
	}

	report := e.EndTurn(s)
	if !near(s.CrisisAwareness, 1) {
		t.Errorf("crisis awareness = %v, want 1", s.CrisisAwareness)
	}
	if !reflect.DeepEqual(report.FiredEvents, []string{"Windfall"}) {
		t.Errorf("fired = %v, want [Windfall]", report.FiredEvents)
	}
	if len(report.EventChanges) != 1 || report.EventChanges[0].Attribute != models.AttrTreasury ||
		!near(report.EventChanges[0].After-report.EventChanges[0].Before, 100) {
		t.Errorf("event changes = %+v", report.EventChanges)
	}
	if len(s.AvailableEvents) != 1 || s.AvailableEvents[0].Name != "Later" {
		t.Fatalf("pending events = %v", s.AvailableEvents)
	}

	if report = e.EndTurn(s); len(report.FiredEvents) != 0 {
		t.Errorf("fired = %v, want none", report.FiredEvents)
	}

	report = e.EndTurn(s)
	if !reflect.DeepEqual(report.FiredEvents, []string{"Later"}) {
		t.Errorf("fired = %v, want [Later]", report.FiredEvents)
	}
	if len(s.AvailableEvents) != 0 {
		t.Errorf("pending events = %d, want 0", len(s.AvailableEvents))
	}
	if !near(s.Player.PublicOpinion, 40) {
		t.Errorf("opinion = %v, want 40", s.Player.PublicOpinion)
	}
}

func TestCurrentCPMonotonic(t *testing.T) {
	e := quietEngine()
	s := newTestState()
	mustApply(t, e, s, StartProject{ProjectID: "big"})
	p := s.Player.ActiveProjects[0]

	last := p.CurrentCP
	for i := 0; i < 20; i++ {
		if i == 10 {
			s.Player.Treasury = -1e9
		}
		e.EndTurn(s)
		if p.CurrentCP < last {
			t.Fatalf("turn %d: CP fell from %v to %v", i, last, p.CurrentCP)
		}
		last = p.CurrentCP
	}
}
