package economy

import (
	"math"

	"github.com/napolitain/defense-econ/internal/models"
)

// EffectiveResearchPoints returns the nation's research rate toward its current target,
// including level bonuses of every industry that speed up that technology
func EffectiveResearchPoints(n *models.Nation) float64 {
	bonus := 0.0
	if n.CurrentResearch != nil {
		for _, ind := range n.Industries {
			bonus += ind.ActiveResearchBonus(n.CurrentResearch.Name)
		}
	}
	return n.ResearchPoints * (1 + bonus)
}

// TurnsToComplete estimates the turns left on a technology at the given rate.
// Returns false when the rate makes no progress.
func TurnsToComplete(tech *models.Technology, rate float64) (int, bool) {
	if rate <= 0 {
		return 0, false
	}
	return int(math.Ceil(tech.Remaining() / rate)), true
}

// TechCostReduction sums the private IC cost reductions of researched technologies
func TechCostReduction(n *models.Nation) float64 {
	total := 0.0
	for _, t := range n.Technologies {
		total += t.PrivateICCostReduction
	}
	return total
}

// TechGDPModifier sums the GDP growth modifiers of researched technologies
func TechGDPModifier(n *models.Nation) float64 {
	total := 0.0
	for _, t := range n.Technologies {
		total += t.Effect(models.EffectGDPGrowthModifier)
	}
	return total
}
