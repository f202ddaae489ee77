package game

import "errors"

// Validation rejections. A rejected command leaves the state unchanged.
var (
	ErrUnknownTechnology     = errors.New("invalid technology")
	ErrAlreadyResearched     = errors.New("technology already researched")
	ErrUnknownIndustry       = errors.New("unknown industry")
	ErrUnknownPolicy         = errors.New("unknown industry policy")
	ErrTaxBreakOutOfRange    = errors.New("tax break out of range")
	ErrSubsidyOutOfRange     = errors.New("subsidy out of range")
	ErrUnknownBudgetCategory = errors.New("unknown budget category")
	ErrNegativeBudget        = errors.New("budget amount must be non-negative")
	ErrNonFiniteAmount       = errors.New("amount must be a finite number")
	ErrCancelIndexOutOfRange = errors.New("project index out of range")
	ErrUnknownCommand        = errors.New("unknown command")
	ErrNoPlayerNation        = errors.New("state has no player nation")
)

var rejections = []error{
	ErrUnknownTechnology,
	ErrAlreadyResearched,
	ErrUnknownIndustry,
	ErrUnknownPolicy,
	ErrTaxBreakOutOfRange,
	ErrSubsidyOutOfRange,
	ErrUnknownBudgetCategory,
	ErrNegativeBudget,
	ErrNonFiniteAmount,
	ErrCancelIndexOutOfRange,
	ErrUnknownCommand,
}

// IsRejection reports whether err is a non-fatal command validation failure
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
