package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/defense-econ/internal/loader"
	"github.com/napolitain/defense-econ/internal/models"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List technologies, industries, projects and events",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			c, err := loader.LoadCatalogs(settings.DataDir)
			if err != nil {
				return fmt.Errorf("failed to load catalogs: %w", err)
			}

			out := cmd.OutOrStdout()
			title := color.New(color.FgCyan, color.Bold)

			title.Fprintln(out, "\nTechnologies")
			techs := tablewriter.NewTable(out,
				tablewriter.WithHeader([]string{"Name", "RP Cost", "Unlocks", "Private IC Cost", "Effects"}),
			)
			for _, t := range c.Technologies {
				_ = techs.Append([]string{
					t.Name,
					fmt.Sprintf("%.0f", t.RPCost),
					strings.Join(t.UnlocksIndustries, ", "),
					fmt.Sprintf("-%.0f%%", t.PrivateICCostReduction*100),
					formatEffects(t.Effects),
				})
			}
			_ = techs.Render()

			title.Fprintln(out, "\nIndustries")
			industries := tablewriter.NewTable(out,
				tablewriter.WithHeader([]string{"Name", "Tier", "Profitability", "Gov IC", "Private IC", "Level Bonuses"}),
			)
			for _, ind := range c.Industries {
				_ = industries.Append([]string{
					ind.Name,
					fmt.Sprintf("%d", ind.Tier),
					fmt.Sprintf("%.2f", ind.BaseProfitability),
					fmt.Sprintf("%.0f", ind.GovernmentIC),
					fmt.Sprintf("%.0f", ind.PrivateIC),
					formatBonuses(ind.LevelBonuses),
				})
			}
			_ = industries.Render()

			title.Fprintln(out, "\nProjects")
			projects := tablewriter.NewTable(out,
				tablewriter.WithHeader([]string{"ID", "Name", "CP Cost", "Upkeep", "Target", "Effects"}),
			)
			for _, p := range c.Projects {
				effects := make(map[string]float64, len(p.Effects))
				for k, v := range p.Effects {
					effects[string(k)] = v
				}
				target := ""
				if p.RequiresTarget {
					target = "industry"
				}
				_ = projects.Append([]string{
					p.ID, p.Name,
					fmt.Sprintf("%.0f", p.CPCost),
					fmt.Sprintf("%.0f", p.UpkeepCost),
					target,
					formatEffects(effects),
				})
			}
			_ = projects.Render()

			title.Fprintln(out, "\nEvents")
			events := tablewriter.NewTable(out,
				tablewriter.WithHeader([]string{"Name", "Threshold", "Effects", "Description"}),
			)
			for _, e := range c.Events {
				effects := make(map[string]float64, len(e.Effects))
				for k, v := range e.Effects {
					effects[string(k)] = v
				}
				_ = events.Append([]string{
					e.Name,
					fmt.Sprintf("%.0f", e.TriggerThreshold),
					formatEffects(effects),
					e.Description,
				})
			}
			_ = events.Render()
			return nil
		},
	}
}

// formatEffects renders a key/value map in stable key order
func formatEffects(effects map[string]float64) string {
	keys := make([]string, 0, len(effects))
	for k := range effects {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %+g", k, effects[k]))
	}
	return strings.Join(parts, ", ")
}

func formatBonuses(bonuses []models.LevelBonus) string {
	parts := make([]string, 0, len(bonuses))
	for _, b := range bonuses {
		if b.ResearchBonus == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("L%d: %s +%.0f%%/lvl",
			b.Level, b.ResearchBonus.TechnologyName, b.ResearchBonus.BonusPerLevel*100))
	}
	return strings.Join(parts, ", ")
}
