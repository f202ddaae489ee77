package economy

import "github.com/napolitain/defense-econ/internal/models"

// Allocation is one industry's cut of the reinvestment pool
type Allocation struct {
	Industry *models.Industry
	Dollars  float64
	IC       float64 // capacity bought with Dollars, 0 if unit cost is not positive
}

// PrivateICUnitCost returns the price of one private IC for an industry after
// the technology discount and then the industry's level discount
func PrivateICUnitCost(techReduction float64, ind *models.Industry) float64 {
	cost := BasePrivateICCost * (1 - techReduction)
	return cost * (1 - ind.ReinvestmentCostReduction())
}

// ProfitableTotal sums effective profitability over industries where it is positive
func ProfitableTotal(industries []*models.Industry) float64 {
	total := 0.0
	for _, ind := range industries {
		if p := ind.Profitability(); p > 0 {
			total += p
		}
	}
	return total
}

// ReinvestmentShare returns the fraction of the pool an industry would receive
func ReinvestmentShare(industries []*models.Industry, ind *models.Industry) float64 {
	total := ProfitableTotal(industries)
	p := ind.Profitability()
	if total <= 0 || p <= 0 {
		return 0
	}
	return p / total
}

// ReinvestmentShares splits pool across profitable industries proportionally to
// effective profitability. Returns nil when there is nothing to split.
func ReinvestmentShares(industries []*models.Industry, pool, techReduction float64) []Allocation {
	if pool <= 0 {
		return nil
	}
	total := ProfitableTotal(industries)
	if total <= 0 {
		return nil
	}

	allocations := make([]Allocation, 0, len(industries))
	for _, ind := range industries {
		p := ind.Profitability()
		if p <= 0 {
			continue
		}
		a := Allocation{Industry: ind, Dollars: pool * p / total}
		if cost := PrivateICUnitCost(techReduction, ind); cost > 0 {
			a.IC = a.Dollars / cost
		}
		allocations = append(allocations, a)
	}
	return allocations
}
