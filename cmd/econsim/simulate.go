package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		turns    int
		research string
		script   []string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a number of turns without interaction",
		Long: `Apply an optional list of commands, then end the turn repeatedly.
Commands use the same syntax as the interactive mode, e.g.
  econsim simulate --turns 10 --do "research Industrialization" --do "build build_ic_1 Ore Mining"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if turns < 0 {
				return fmt.Errorf("turns must be non-negative, got %d", turns)
			}
			engine, state, _, err := newGame()
			if err != nil {
				return err
			}

			if research != "" {
				script = append([]string{"research " + research}, script...)
			}
			for _, line := range script {
				c, err := parseCommand(line)
				if err != nil {
					return fmt.Errorf("command %q: %w", line, err)
				}
				if err := engine.Apply(state, c); err != nil {
					return fmt.Errorf("command %q: %w", strings.TrimSpace(line), err)
				}
			}

			r := newRenderer(cmd.OutOrStdout())
			for i := 0; i < turns; i++ {
				report := engine.EndTurn(state)
				if !quiet {
					r.Report(report)
				}
			}
			r.State(state)
			return nil
		},
	}

	cmd.Flags().IntVarP(&turns, "turns", "t", 10, "Number of turns to resolve")
	cmd.Flags().StringVarP(&research, "research", "r", "", "Technology to research first")
	cmd.Flags().StringArrayVar(&script, "do", nil, "Command to apply before the first turn (repeatable)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final state")
	return cmd
}
