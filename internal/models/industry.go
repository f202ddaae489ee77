package models

// DefaultIndustryTaxRate is the per-industry tax rate applied to new industries
const DefaultIndustryTaxRate = 0.20

// ResearchBonus speeds up research of a single technology
type ResearchBonus struct {
	TechnologyName string  `json:"technology_name" yaml:"technology_name" validate:"required"`
	BonusPerLevel  float64 `json:"bonus_per_level" yaml:"bonus_per_level"`
}

// LevelBonus is a rule that becomes active once an industry reaches Level
type LevelBonus struct {
	Level         int            `json:"level" yaml:"level" validate:"gte=1"`
	ResearchBonus *ResearchBonus `json:"research_bonus,omitempty" yaml:"research_bonus,omitempty"`
}

// Industry represents one industrial sector of a nation
type Industry struct {
	Name              string
	Tier              int
	Level             int
	GovernmentIC      float64
	PrivateIC         float64
	BaseProfitability float64
	TaxRate           float64
	SubsidyPerIC      float64
	LevelBonuses      []LevelBonus
}

// NewIndustry creates a level 1 industry with the default tax rate
func NewIndustry(name string, tier int, profitability, governmentIC, privateIC float64, bonuses []LevelBonus) *Industry {
	return &Industry{
		Name:              name,
		Tier:              tier,
		Level:             1,
		GovernmentIC:      governmentIC,
		PrivateIC:         privateIC,
		BaseProfitability: profitability,
		TaxRate:           DefaultIndustryTaxRate,
		LevelBonuses:      bonuses,
	}
}

// NewIndustryFromArchetype instantiates a catalog template with zeroed capacities.
// Used when research unlocks an industry.
func NewIndustryFromArchetype(archetype *Industry) *Industry {
	return NewIndustry(archetype.Name, archetype.Tier, archetype.BaseProfitability, 0, 0, archetype.cloneBonuses())
}

// IC returns the total industrial capacity
func (i *Industry) IC() float64 {
	return i.GovernmentIC + i.PrivateIC
}

// Profitability returns the effective profitability of private capacity
func (i *Industry) Profitability() float64 {
	return i.BaseProfitability*(1-i.TaxRate) + i.SubsidyPerIC
}

// ReinvestmentCostReduction returns the level discount on private IC purchases (5% per level above 1)
func (i *Industry) ReinvestmentCostReduction() float64 {
	return float64(i.Level-1) * 0.05
}

// ActiveResearchBonus sums the research bonuses this industry grants toward tech
func (i *Industry) ActiveResearchBonus(tech string) float64 {
	bonus := 0.0
	for _, lb := range i.LevelBonuses {
		if lb.Level > i.Level || lb.ResearchBonus == nil {
			continue
		}
		if lb.ResearchBonus.TechnologyName == tech {
			bonus += lb.ResearchBonus.BonusPerLevel * float64(i.Level)
		}
	}
	return bonus
}

// Clone creates a deep copy of the industry
func (i *Industry) Clone() *Industry {
	clone := *i
	clone.LevelBonuses = i.cloneBonuses()
	return &clone
}

func (i *Industry) cloneBonuses() []LevelBonus {
	if i.LevelBonuses == nil {
		return nil
	}
	bonuses := make([]LevelBonus, len(i.LevelBonuses))
	for idx, lb := range i.LevelBonuses {
		bonuses[idx] = lb
		if lb.ResearchBonus != nil {
			rb := *lb.ResearchBonus
			bonuses[idx].ResearchBonus = &rb
		}
	}
	return bonuses
}
