package game

// Command is one discrete player action
type Command interface {
	// Name identifies the command in logs
	Name() string
}

// PolicyKind selects what an industry policy changes
type PolicyKind int

const (
	TaxBreak PolicyKind = iota
	Subsidy
)

// String returns a string representation of the policy kind
func (k PolicyKind) String() string {
	switch k {
	case TaxBreak:
		return "tax break"
	case Subsidy:
		return "subsidy"
	default:
		return "unknown"
	}
}

// EndTurn resolves the turn
type EndTurn struct{}

// Research sets the nation's current research target
type Research struct {
	Technology string
}

// Policy applies a tax break or subsidy to one industry
type Policy struct {
	Industry string
	Kind     PolicyKind
	Amount   float64
}

// SetTax sets the national tax rate
type SetTax struct {
	Rate float64
}

// SetBudget sets a budget line
type SetBudget struct {
	Category string
	Amount   float64
}

// StartProject orders a construction project, queued if slots are full
type StartProject struct {
	ProjectID string
	Target    string
}

// CancelProject removes a project by its position in active projects followed by the queue
type CancelProject struct {
	Index int
}

// SetFocus sets the industrial capacity focus policy
type SetFocus struct {
	Policy string
}

func (EndTurn) Name() string       { return "end_turn" }
func (Research) Name() string      { return "research" }
func (Policy) Name() string        { return "policy" }
func (SetTax) Name() string        { return "set_tax" }
func (SetBudget) Name() string     { return "budget" }
func (StartProject) Name() string  { return "start_project" }
func (CancelProject) Name() string { return "cancel_project" }
func (SetFocus) Name() string      { return "set_focus" }
