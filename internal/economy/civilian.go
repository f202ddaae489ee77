package economy

import "github.com/napolitain/defense-econ/internal/models"

// StabilityModifier returns the growth contribution of public opinion
func StabilityModifier(opinion float64) float64 {
	switch {
	case opinion > HighOpinionThreshold:
		return HighOpinionGrowth
	case opinion < LowOpinionThreshold:
		return LowOpinionGrowth
	default:
		return NeutralOpinionGrowth
	}
}

// GDPGrowthRate returns the civilian GDP growth rate for the coming turn
func GDPGrowthRate(n *models.Nation) float64 {
	rate := BaseGDPGrowth
	rate += GrowthPerInfrastructure * float64(n.InfrastructureLevel-1)
	rate += StabilityModifier(n.PublicOpinion)
	rate += TechGDPModifier(n)
	return rate
}

// OpinionStep moves opinion part of the way toward target and clamps the result
func OpinionStep(opinion, target float64) float64 {
	return models.ClampOpinion(opinion + (target-opinion)*OpinionDriftRate)
}
