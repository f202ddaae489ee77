package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/napolitain/defense-econ/internal/game"
)

var (
	errQuit  = errors.New("quit")
	errHelp  = errors.New("help")
	errEmpty = errors.New("empty input")
)

const helpText = `Commands:
  end                              resolve the turn
  research <technology>            set the research target
  tax <rate>                       national tax rate, e.g. 0.2 or 20%
  budget <category> <amount>       e.g. budget social_spending 100
  taxbreak <industry> <rate>       industry tax rate, 0 to 0.2
  subsidy <industry> <amount>      subsidy per IC, 0 or more
  build <project> [industry]       start or queue a project
  cancel <n>                       cancel project n as numbered in the construction list
  focus <policy>                   Balanced or Infrastructure_Focus
  help, quit
`

// parseCommand turns one input line into an engine command. Project numbers are
// 1-based as displayed; technology, industry and target names may contain spaces.
func parseCommand(line string) (game.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errEmpty
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "e", "end", "end_turn":
		return game.EndTurn{}, nil
	case "q", "quit", "exit":
		return nil, errQuit
	case "h", "help", "?":
		return nil, errHelp
	case "r", "research":
		if len(args) == 0 {
			return nil, fmt.Errorf("usage: research <technology>")
		}
		return game.Research{Technology: strings.Join(args, " ")}, nil
	case "tax", "set_tax":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: tax <rate>")
		}
		rate, err := parseRate(args[0])
		if err != nil {
			return nil, err
		}
		return game.SetTax{Rate: rate}, nil
	case "b", "budget":
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: budget <category> <amount>")
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return nil, err
		}
		return game.SetBudget{Category: args[0], Amount: amount}, nil
	case "taxbreak", "tax_break", "subsidy":
		if len(args) < 2 {
			return nil, fmt.Errorf("usage: %s <industry> <amount>", verb)
		}
		last := args[len(args)-1]
		var (
			amount float64
			err    error
		)
		kind := game.Subsidy
		if verb != "subsidy" {
			kind = game.TaxBreak
			amount, err = parseRate(last)
		} else {
			amount, err = parseAmount(last)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q", last)
		}
		return game.Policy{
			Industry: strings.Join(args[:len(args)-1], " "),
			Kind:     kind,
			Amount:   amount,
		}, nil
	case "build", "start":
		if len(args) == 0 {
			return nil, fmt.Errorf("usage: build <project> [industry]")
		}
		return game.StartProject{ProjectID: args[0], Target: strings.Join(args[1:], " ")}, nil
	case "cancel":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: cancel <n>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid project number %q", args[0])
		}
		return game.CancelProject{Index: n - 1}, nil
	case "f", "focus":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: focus <policy>")
		}
		return game.SetFocus{Policy: args[0]}, nil
	default:
		return nil, fmt.Errorf("%w: %s (try help)", game.ErrUnknownCommand, verb)
	}
}

// parseAmount parses a finite number. NaN and Inf are refused.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// parseRate accepts a fraction ("0.2") or a percentage ("20%")
func parseRate(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseAmount(pct)
		if err != nil {
			return 0, fmt.Errorf("invalid rate %q", s)
		}
		return v / 100, nil
	}
	v, err := parseAmount(s)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q", s)
	}
	return v, nil
}
