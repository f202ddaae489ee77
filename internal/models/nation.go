package models

import (
	"fmt"
	"math"
)

// Budget categories
const (
	BudgetSocialSpending = "social_spending"
)

// Industrial capacity focus policies
const (
	FocusBalanced       = "Balanced"
	FocusInfrastructure = "Infrastructure_Focus"
)

// Opinion bounds
const (
	MinOpinion = 0.0
	MaxOpinion = 100.0
)

// Nation defaults
const (
	DefaultTreasury          = 1000.0
	DefaultResearchPoints    = 50.0
	DefaultTaxRate           = 0.15
	DefaultCivilianGDP       = 10000.0
	DefaultPublicOpinion     = 50.0
	DefaultConstructionSlots = 3
)

// Nation represents one economy. Only the player nation is resolved each turn.
type Nation struct {
	Name                string
	Treasury            float64 // may go negative (deficit)
	ResearchPoints      float64 // base research rate per turn
	TaxRate             float64
	CivilianGDP         float64
	PublicOpinion       float64
	TargetPublicOpinion float64
	Budget              map[string]float64
	InfrastructureLevel int
	ICFocusPolicy       string

	Industries      []*Industry
	Technologies    []*Technology // researched, in completion order
	CurrentResearch *Technology

	ConstructionSlots int
	ActiveProjects    []*ProjectInstance
	ProjectQueue      []*ProjectInstance
}

// NewNation creates a nation with default economy values
func NewNation(name string) *Nation {
	n := &Nation{
		Name:                name,
		Treasury:            DefaultTreasury,
		ResearchPoints:      DefaultResearchPoints,
		TaxRate:             DefaultTaxRate,
		CivilianGDP:         DefaultCivilianGDP,
		PublicOpinion:       DefaultPublicOpinion,
		Budget:              map[string]float64{BudgetSocialSpending: 0},
		InfrastructureLevel: 1,
		ICFocusPolicy:       FocusBalanced,
		ConstructionSlots:   DefaultConstructionSlots,
	}
	n.RecomputeTargetOpinion()
	return n
}

// IsBudgetCategory reports whether category is a recognized budget line
func IsBudgetCategory(category string) bool {
	return category == BudgetSocialSpending
}

// TargetOpinion computes where public opinion drifts given tax and social spending.
// Neutral (50) at the default tax rate with no social spending.
func TargetOpinion(taxRate, socialSpending float64) float64 {
	target := 50 - (taxRate-DefaultTaxRate)*100 + socialSpending/10
	return ClampOpinion(target)
}

// ClampOpinion bounds an opinion value to [0, 100]. NaN maps to the minimum.
func ClampOpinion(v float64) float64 {
	if math.IsNaN(v) || v < MinOpinion {
		return MinOpinion
	}
	if v > MaxOpinion {
		return MaxOpinion
	}
	return v
}

// RecomputeTargetOpinion refreshes TargetPublicOpinion from tax rate and budget
func (n *Nation) RecomputeTargetOpinion() {
	n.TargetPublicOpinion = TargetOpinion(n.TaxRate, n.Budget[BudgetSocialSpending])
}

// SetTaxRate assigns the national tax rate
func (n *Nation) SetTaxRate(rate float64) {
	n.TaxRate = rate
	n.RecomputeTargetOpinion()
}

// SetBudget assigns a budget line. The caller validates the category.
func (n *Nation) SetBudget(category string, amount float64) {
	if n.Budget == nil {
		n.Budget = make(map[string]float64)
	}
	n.Budget[category] = amount
	n.RecomputeTargetOpinion()
}

// SocialSpending returns the social spending budget line
func (n *Nation) SocialSpending() float64 {
	return n.Budget[BudgetSocialSpending]
}

// IndustrialCapacity returns the total IC across all industries
func (n *Nation) IndustrialCapacity() float64 {
	total := 0.0
	for _, ind := range n.Industries {
		total += ind.IC()
	}
	return total
}

// Industry returns the owned industry with the given name, or nil
func (n *Nation) Industry(name string) *Industry {
	for _, ind := range n.Industries {
		if ind.Name == name {
			return ind
		}
	}
	return nil
}

// HasResearched reports whether a technology is in the researched list
func (n *Nation) HasResearched(name string) bool {
	for _, t := range n.Technologies {
		if t.Name == name {
			return true
		}
	}
	return false
}

// FreeSlots returns the number of construction slots not in use
func (n *Nation) FreeSlots() int {
	free := n.ConstructionSlots - len(n.ActiveProjects)
	if free < 0 {
		return 0
	}
	return free
}

// PromoteQueued moves queued projects into free slots in FIFO order and returns how many moved
func (n *Nation) PromoteQueued() int {
	moved := 0
	for n.FreeSlots() > 0 && len(n.ProjectQueue) > 0 {
		n.ActiveProjects = append(n.ActiveProjects, n.ProjectQueue[0])
		n.ProjectQueue = n.ProjectQueue[1:]
		moved++
	}
	return moved
}

// NationAttribute names a nation field that event effects may change
type NationAttribute string

const (
	AttrTreasury            NationAttribute = "treasury"
	AttrTaxRate             NationAttribute = "tax_rate"
	AttrCivilianGDP         NationAttribute = "civilian_gdp"
	AttrResearchPoints      NationAttribute = "research_points"
	AttrInfrastructureLevel NationAttribute = "infrastructure_level"
	AttrPublicOpinion       NationAttribute = "public_opinion"
	AttrTargetPublicOpinion NationAttribute = "target_public_opinion"
)

// AllNationAttributes returns all event-mutable attributes in application order.
// Target opinion comes after tax rate so a direct target delta survives the recompute.
func AllNationAttributes() []NationAttribute {
	return []NationAttribute{
		AttrTreasury, AttrTaxRate, AttrCivilianGDP, AttrResearchPoints,
		AttrInfrastructureLevel, AttrPublicOpinion, AttrTargetPublicOpinion,
	}
}

// ParseNationAttribute converts a catalog key to a NationAttribute
func ParseNationAttribute(s string) (NationAttribute, error) {
	for _, a := range AllNationAttributes() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown nation attribute %q", s)
}

// Attribute returns the current value of an attribute
func (n *Nation) Attribute(a NationAttribute) float64 {
	switch a {
	case AttrTreasury:
		return n.Treasury
	case AttrTaxRate:
		return n.TaxRate
	case AttrCivilianGDP:
		return n.CivilianGDP
	case AttrResearchPoints:
		return n.ResearchPoints
	case AttrInfrastructureLevel:
		return float64(n.InfrastructureLevel)
	case AttrPublicOpinion:
		return n.PublicOpinion
	case AttrTargetPublicOpinion:
		return n.TargetPublicOpinion
	}
	return 0
}

// AddToAttribute adds delta to an attribute, keeping its invariants
func (n *Nation) AddToAttribute(a NationAttribute, delta float64) {
	switch a {
	case AttrTreasury:
		n.Treasury += delta
	case AttrTaxRate:
		n.SetTaxRate(n.TaxRate + delta)
	case AttrCivilianGDP:
		n.CivilianGDP += delta
	case AttrResearchPoints:
		n.ResearchPoints += delta
	case AttrInfrastructureLevel:
		n.InfrastructureLevel += int(delta)
		if n.InfrastructureLevel < 1 {
			n.InfrastructureLevel = 1
		}
	case AttrPublicOpinion:
		n.PublicOpinion = ClampOpinion(n.PublicOpinion + delta)
	case AttrTargetPublicOpinion:
		n.TargetPublicOpinion = ClampOpinion(n.TargetPublicOpinion + delta)
	}
}
