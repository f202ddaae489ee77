package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/defense-econ/internal/game"
	"github.com/napolitain/defense-econ/internal/models"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively, one command per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, state, _, err := newGame()
			if err != nil {
				return err
			}
			return play(engine, state, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// play is the read-execute loop. It returns on quit or end of input.
func play(engine *game.Engine, s *models.GameState, in io.Reader, out io.Writer) error {
	r := newRenderer(out)
	scanner := bufio.NewScanner(in)

	r.State(s)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		cmd, err := parseCommand(scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, errHelp):
			fmt.Fprint(out, helpText)
			continue
		case errors.Is(err, errEmpty):
			continue
		case err != nil:
			color.New(color.FgRed).Fprintf(out, "%v\n", err)
			continue
		}

		if _, ok := cmd.(game.EndTurn); ok {
			r.Report(engine.EndTurn(s))
			r.State(s)
			continue
		}
		if err := engine.Apply(s, cmd); err != nil {
			color.New(color.FgRed).Fprintf(out, "Rejected: %v\n", err)
			continue
		}
		color.New(color.FgGreen).Fprintf(out, "OK (projected treasury change %s)\n", signedMoney(game.ProjectTreasuryDelta(s)))
	}
}
