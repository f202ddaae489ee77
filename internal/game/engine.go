package game

import (
	"fmt"
	"log/slog"

	"github.com/napolitain/defense-econ/internal/config"
	"github.com/napolitain/defense-econ/internal/economy"
	"github.com/napolitain/defense-econ/internal/loader"
	"github.com/napolitain/defense-econ/internal/models"
)

// Engine applies commands and resolves turns against a GameState.
// It holds no game state of its own.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an engine. A nil logger uses slog.Default().
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Apply runs a single command against the state
func Apply(s *models.GameState, cmd Command) error {
	return NewEngine(nil).Apply(s, cmd)
}

// ProjectTreasuryDelta estimates the player's treasury change over the next turn
// without modifying the state
func ProjectTreasuryDelta(s *models.GameState) float64 {
	if s.Player == nil {
		return 0
	}
	return economy.ProjectTreasuryChange(s.Player, s.AvailableProjects)
}

// NewState builds a fresh game from loaded catalogs. The player starts with
// every tier 1 industry.
func NewState(c *loader.Catalogs, settings config.Settings) *models.GameState {
	player := settings.NewNation()
	s := models.NewGameState(player)

	for _, ind := range c.Industries {
		s.AllIndustries = append(s.AllIndustries, ind.Clone())
		if ind.Tier == 1 {
			player.Industries = append(player.Industries, ind.Clone())
		}
	}
	for _, t := range c.Technologies {
		s.AvailableTechnologies = append(s.AvailableTechnologies, t.Clone())
	}
	s.AvailableEvents = append(s.AvailableEvents, c.Events...)
	s.AvailableProjects = append(s.AvailableProjects, c.Projects...)
	return s
}

// Apply runs a single command against the state. End turn resolves the full
// pipeline; all other commands mutate the player nation.
func (e *Engine) Apply(s *models.GameState, cmd Command) error {
	if s.Player == nil {
		return ErrNoPlayerNation
	}
	if _, ok := cmd.(EndTurn); ok {
		e.EndTurn(s)
		return nil
	}

	err := e.interpret(s, s.Player, cmd)
	if err != nil {
		e.logger.Debug("command rejected", "command", commandName(cmd), "err", err)
		return err
	}
	e.logger.Debug("command applied", "command", commandName(cmd), "turn", s.Turn)
	return nil
}

func commandName(cmd Command) string {
	if cmd == nil {
		return "<nil>"
	}
	return cmd.Name()
}

func (e *Engine) interpret(s *models.GameState, n *models.Nation, cmd Command) error {
	switch c := cmd.(type) {
	case Research:
		return setResearch(s, n, c.Technology)
	case Policy:
		return e.setPolicy(n, c)
	case SetTax:
		return setTax(n, c.Rate)
	case SetBudget:
		return setBudget(n, c.Category, c.Amount)
	case StartProject:
		startProject(n, c.ProjectID, c.Target)
		return nil
	case CancelProject:
		return cancelProject(n, c.Index)
	case SetFocus:
		n.ICFocusPolicy = c.Policy
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, commandName(cmd))
	}
}
