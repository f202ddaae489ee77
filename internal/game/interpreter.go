package game

import (
	"fmt"
	"math"

	"github.com/napolitain/defense-econ/internal/economy"
	"github.com/napolitain/defense-econ/internal/models"
)

// setResearch switches the current target. Progress on the previous target is kept.
func setResearch(s *models.GameState, n *models.Nation, name string) error {
	tech := s.Technology(name)
	if tech == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTechnology, name)
	}
	if tech.Researched {
		return fmt.Errorf("%w: %q", ErrAlreadyResearched, name)
	}
	n.CurrentResearch = tech
	return nil
}

func (e *Engine) setPolicy(n *models.Nation, p Policy) error {
	ind := n.Industry(p.Industry)
	if ind == nil {
		return fmt.Errorf("%w: %q", ErrUnknownIndustry, p.Industry)
	}

	switch p.Kind {
	case TaxBreak:
		if !(p.Amount >= 0 && p.Amount <= economy.MaxIndustryTaxRate) {
			return fmt.Errorf("%w: %.2f not in [0, %.2f]", ErrTaxBreakOutOfRange, p.Amount, economy.MaxIndustryTaxRate)
		}
		ind.TaxRate = p.Amount
	case Subsidy:
		if !(p.Amount >= 0 && p.Amount <= n.Treasury) || math.IsInf(p.Amount, 0) {
			return fmt.Errorf("%w: %.2f with treasury %.2f", ErrSubsidyOutOfRange, p.Amount, n.Treasury)
		}
		n.Treasury -= p.Amount
		// The money is spent even when there is no private capacity to subsidize.
		if ind.PrivateIC > 0 {
			ind.SubsidyPerIC = p.Amount / ind.PrivateIC
		} else {
			e.logger.Warn("subsidy paid with no private capacity", "industry", ind.Name, "amount", p.Amount)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownPolicy, p.Kind)
	}
	return nil
}

func setBudget(n *models.Nation, category string, amount float64) error {
	if !models.IsBudgetCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownBudgetCategory, category)
	}
	if !isFinite(amount) {
		return fmt.Errorf("%w: %v", ErrNonFiniteAmount, amount)
	}
	if amount < 0 {
		return fmt.Errorf("%w: %.2f", ErrNegativeBudget, amount)
	}
	n.SetBudget(category, amount)
	return nil
}

// startProject does not check the catalog. An unknown id never completes.
func startProject(n *models.Nation, projectID, target string) {
	p := models.NewProjectInstance(projectID, target)
	if len(n.ActiveProjects) < n.ConstructionSlots {
		n.ActiveProjects = append(n.ActiveProjects, p)
		return
	}
	n.ProjectQueue = append(n.ProjectQueue, p)
}

// cancelProject indexes active projects first, then the queue. No refund.
func cancelProject(n *models.Nation, index int) error {
	active := len(n.ActiveProjects)
	switch {
	case index >= 0 && index < active:
		n.ActiveProjects = append(n.ActiveProjects[:index:index], n.ActiveProjects[index+1:]...)
	case index >= active && index < active+len(n.ProjectQueue):
		q := index - active
		n.ProjectQueue = append(n.ProjectQueue[:q:q], n.ProjectQueue[q+1:]...)
	default:
		return fmt.Errorf("%w: %d", ErrCancelIndexOutOfRange, index)
	}
	return nil
}

func setTax(n *models.Nation, rate float64) error {
	if !isFinite(rate) {
		return fmt.Errorf("%w: %v", ErrNonFiniteAmount, rate)
	}
	n.SetTaxRate(rate)
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
