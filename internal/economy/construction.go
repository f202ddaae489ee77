package economy

import (
	"math"

	"github.com/napolitain/defense-econ/internal/models"
)

// FocusModifier returns the share of IC that feeds construction under a focus policy
func FocusModifier(policy string) float64 {
	switch policy {
	case models.FocusInfrastructure:
		return InfrastructureFocusModifier
	default:
		return BalancedFocusModifier
	}
}

// TechnologyConstructionBonus is reserved for technologies that speed construction.
// No technology grants one yet.
func TechnologyConstructionBonus(n *models.Nation) float64 {
	return 0
}

// ConstructionPoints returns the CP every active project receives this turn
func ConstructionPoints(n *models.Nation) float64 {
	fromIC := n.IndustrialCapacity() * FocusModifier(n.ICFocusPolicy) * CPPerICPoint
	return BaseConstructionPoints + fromIC + TechnologyConstructionBonus(n)
}

// ProjectUpkeep sums the upkeep of active projects with a known definition
func ProjectUpkeep(n *models.Nation, defs []*models.ProjectDefinition) float64 {
	total := 0.0
	for _, p := range n.ActiveProjects {
		if def := models.FindProject(defs, p.ProjectID); def != nil {
			total += def.UpkeepCost
		}
	}
	return total
}

// TurnsToBuild estimates the turns left on a project at the current CP rate.
// Returns false when the project has no definition or no CP is generated.
func TurnsToBuild(n *models.Nation, p *models.ProjectInstance, def *models.ProjectDefinition) (int, bool) {
	if def == nil {
		return 0, false
	}
	cp := ConstructionPoints(n)
	if cp <= 0 {
		return 0, false
	}
	remaining := def.CPCost - p.CurrentCP
	if remaining <= 0 {
		return 0, true
	}
	return int(math.Ceil(remaining / cp)), true
}
