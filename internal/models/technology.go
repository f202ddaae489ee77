package models

// EffectGDPGrowthModifier is the technology effect key added to the GDP growth rate
const EffectGDPGrowthModifier = "gdp_growth_modifier"

// Technology represents a researchable technology
type Technology struct {
	Name                   string
	RPCost                 float64
	RPProgress             float64
	Researched             bool
	UnlocksIndustries      []string
	PrivateICCostReduction float64
	Effects                map[string]float64
}

// NewTechnology creates an unresearched technology with no progress
func NewTechnology(name string, rpCost float64, unlocks []string, costReduction float64, effects map[string]float64) *Technology {
	if effects == nil {
		effects = make(map[string]float64)
	}
	return &Technology{
		Name:                   name,
		RPCost:                 rpCost,
		UnlocksIndustries:      unlocks,
		PrivateICCostReduction: costReduction,
		Effects:                effects,
	}
}

// Remaining returns the research points still needed
func (t *Technology) Remaining() float64 {
	if t.RPProgress >= t.RPCost {
		return 0
	}
	return t.RPCost - t.RPProgress
}

// Effect returns the magnitude of a named effect, 0 if absent
func (t *Technology) Effect(name string) float64 {
	return t.Effects[name]
}

// Clone creates a deep copy of the technology
func (t *Technology) Clone() *Technology {
	clone := *t
	clone.UnlocksIndustries = append([]string(nil), t.UnlocksIndustries...)
	clone.Effects = make(map[string]float64, len(t.Effects))
	for k, v := range t.Effects {
		clone.Effects[k] = v
	}
	return &clone
}
