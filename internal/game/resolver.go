package game

import (
	"github.com/napolitain/defense-econ/internal/economy"
	"github.com/napolitain/defense-econ/internal/models"
)

// TurnReport summarizes what one end turn changed
type TurnReport struct {
	Turn            int // turn number after advancing
	Nations         []*NationReport
	FiredEvents     []string
	EventChanges    []models.AttributeChange
	CrisisAwareness float64
}

// NationReport summarizes one nation's resolution
type NationReport struct {
	Nation             string
	CompletedResearch  string
	UnlockedIndustries []string
	ConstructionPaused bool
	ConstructionPoints float64
	CompletedProjects  []string
	GDPGrowthRate      float64
	TreasuryDelta      float64
	ReinvestmentPool   float64
	ReinvestedIC       float64
}

// EndTurn runs the turn pipeline once. Each stage sees the effects of the ones before it:
// research, construction, civilian economy, treasury, reinvestment, events, then the
// turn counter advances.
func (e *Engine) EndTurn(s *models.GameState) *TurnReport {
	report := &TurnReport{}

	for _, n := range s.Nations() {
		nr := &NationReport{Nation: n.Name}
		e.resolveResearch(s, n, nr)
		e.resolveConstruction(s, n, nr)
		e.resolveCivilianEconomy(n, nr)
		pool := e.resolveTreasury(s, n, nr)
		e.resolveReinvestment(n, pool, nr)
		report.Nations = append(report.Nations, nr)
	}

	e.resolveEvents(s, report)

	s.Turn++
	report.Turn = s.Turn
	report.CrisisAwareness = s.CrisisAwareness

	if s.Player != nil {
		e.logger.Info("turn resolved",
			"turn", s.Turn,
			"treasury", s.Player.Treasury,
			"gdp", s.Player.CivilianGDP,
			"opinion", s.Player.PublicOpinion,
			"ic", s.Player.IndustrialCapacity(),
			"crisis_awareness", s.CrisisAwareness,
		)
	}
	return report
}

func (e *Engine) resolveResearch(s *models.GameState, n *models.Nation, nr *NationReport) {
	tech := n.CurrentResearch
	if tech == nil {
		return
	}

	tech.RPProgress += economy.EffectiveResearchPoints(n)
	if tech.RPProgress < tech.RPCost {
		return
	}

	tech.Researched = true
	n.Technologies = append(n.Technologies, tech)
	n.CurrentResearch = nil
	nr.CompletedResearch = tech.Name
	e.logger.Info("research completed", "nation", n.Name, "technology", tech.Name)

	for _, name := range tech.UnlocksIndustries {
		if n.Industry(name) != nil {
			continue
		}
		archetype := s.Archetype(name)
		if archetype == nil {
			e.logger.Warn("unlocked industry has no archetype", "technology", tech.Name, "industry", name)
			continue
		}
		n.Industries = append(n.Industries, models.NewIndustryFromArchetype(archetype))
		nr.UnlockedIndustries = append(nr.UnlockedIndustries, name)
		e.logger.Info("industry unlocked", "nation", n.Name, "industry", name)
	}
}

func (e *Engine) resolveConstruction(s *models.GameState, n *models.Nation, nr *NationReport) {
	if moved := n.PromoteQueued(); moved > 0 {
		e.logger.Debug("queued projects promoted", "nation", n.Name, "count", moved)
	}

	if n.Treasury < 0 {
		nr.ConstructionPaused = true
		e.logger.Warn("construction paused by deficit", "nation", n.Name, "treasury", n.Treasury)
		return
	}

	// Every active project receives the full amount; it is not split.
	cp := economy.ConstructionPoints(n)
	nr.ConstructionPoints = cp

	kept := make([]*models.ProjectInstance, 0, len(n.ActiveProjects))
	for _, p := range n.ActiveProjects {
		def := s.Project(p.ProjectID)
		if def == nil {
			kept = append(kept, p)
			continue
		}

		p.CurrentCP += cp
		if p.CurrentCP < def.CPCost {
			kept = append(kept, p)
			continue
		}

		e.completeProject(n, p, def)
		nr.CompletedProjects = append(nr.CompletedProjects, def.ID)
	}
	n.ActiveProjects = kept
}

func (e *Engine) completeProject(n *models.Nation, p *models.ProjectInstance, def *models.ProjectDefinition) {
	for _, effect := range models.AllProjectEffects() {
		magnitude, ok := def.Effects[effect]
		if !ok {
			continue
		}
		switch effect {
		case models.AddIC:
			ind := n.Industry(p.Target)
			if ind == nil {
				e.logger.Warn("project target not found", "project", def.ID, "target", p.Target)
				continue
			}
			ind.GovernmentIC += magnitude
		case models.AddInfrastructure:
			n.InfrastructureLevel += int(magnitude)
		}
	}
	e.logger.Info("project completed", "nation", n.Name, "project", def.ID, "id", p.ID, "target", p.Target)
}

func (e *Engine) resolveCivilianEconomy(n *models.Nation, nr *NationReport) {
	rate := economy.GDPGrowthRate(n)
	n.CivilianGDP *= 1 + rate
	n.PublicOpinion = economy.OpinionStep(n.PublicOpinion, n.TargetPublicOpinion)
	nr.GDPGrowthRate = rate
}

// resolveTreasury applies the settlement in one update and returns the reinvestment pool
func (e *Engine) resolveTreasury(s *models.GameState, n *models.Nation, nr *NationReport) float64 {
	delta, settlement := economy.TreasuryChange(n, s.AvailableProjects)
	n.Treasury += delta
	nr.TreasuryDelta = delta
	nr.ReinvestmentPool = settlement.ReinvestmentPool
	return settlement.ReinvestmentPool
}

func (e *Engine) resolveReinvestment(n *models.Nation, pool float64, nr *NationReport) {
	allocations := economy.ReinvestmentShares(n.Industries, pool, economy.TechCostReduction(n))
	for _, a := range allocations {
		a.Industry.PrivateIC += a.IC
		nr.ReinvestedIC += a.IC
	}
}

// resolveEvents grows crisis awareness from the player's industry and fires
// every pending event whose threshold is met. Fired events are removed.
func (e *Engine) resolveEvents(s *models.GameState, report *TurnReport) {
	n := s.Player
	if n == nil {
		return
	}
	s.CrisisAwareness += n.IndustrialCapacity() * economy.CrisisAwarenessPerIC

	pending := make([]*models.Event, 0, len(s.AvailableEvents))
	for _, ev := range s.AvailableEvents {
		if !ev.Triggered(s.CrisisAwareness) {
			pending = append(pending, ev)
			continue
		}
		changes := ev.Apply(n)
		report.FiredEvents = append(report.FiredEvents, ev.Name)
		report.EventChanges = append(report.EventChanges, changes...)
		e.logger.Info("event triggered", "event", ev.Name, "crisis_awareness", s.CrisisAwareness)
		for _, c := range changes {
			e.logger.Debug("event effect", "event", ev.Name, "attribute", c.Attribute, "before", c.Before, "after", c.After)
		}
	}
	s.AvailableEvents = pending
}
