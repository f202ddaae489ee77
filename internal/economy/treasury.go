package economy

import "github.com/napolitain/defense-econ/internal/models"

// Settlement is the industrial side of one turn's treasury settlement
type Settlement struct {
	// TreasuryGain is government profit share plus taxes on private profit
	TreasuryGain float64
	// ReinvestmentPool is after-tax private profit available for new private IC
	ReinvestmentPool float64
}

// SettleIndustries computes industry income without touching the nation
func SettleIndustries(industries []*models.Industry) Settlement {
	var s Settlement
	for _, ind := range industries {
		governmentProfit := ind.GovernmentIC * ind.BaseProfitability
		privateProfit := ind.PrivateIC * ind.Profitability()

		s.TreasuryGain += governmentProfit * GovernmentProfitShare
		s.TreasuryGain += privateProfit * ind.TaxRate
		s.ReinvestmentPool += privateProfit * (1 - ind.TaxRate)
	}
	return s
}

// NationalTaxRevenue returns the tax collected on a GDP figure
func NationalTaxRevenue(gdp, taxRate float64) float64 {
	return gdp * taxRate
}

// TreasuryChange is the full settlement for a nation whose GDP has already grown this turn
func TreasuryChange(n *models.Nation, defs []*models.ProjectDefinition) (float64, Settlement) {
	s := SettleIndustries(n.Industries)
	delta := s.TreasuryGain
	delta += NationalTaxRevenue(n.CivilianGDP, n.TaxRate)
	delta -= n.SocialSpending()
	delta -= ProjectUpkeep(n, defs)
	return delta, s
}

// ProjectTreasuryChange estimates next turn's treasury delta from the current state.
// GDP is grown by this turn's rate before taxing, as the turn resolver does.
func ProjectTreasuryChange(n *models.Nation, defs []*models.ProjectDefinition) float64 {
	s := SettleIndustries(n.Industries)
	grownGDP := n.CivilianGDP * (1 + GDPGrowthRate(n))

	delta := s.TreasuryGain
	delta += NationalTaxRevenue(grownGDP, n.TaxRate)
	delta -= n.SocialSpending()
	delta -= ProjectUpkeep(n, defs)
	return delta
}
