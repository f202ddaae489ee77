package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/defense-econ/internal/economy"
	"github.com/napolitain/defense-econ/internal/game"
	"github.com/napolitain/defense-econ/internal/models"
)

// renderer prints game state and turn reports
type renderer struct {
	out     io.Writer
	title   *color.Color
	info    *color.Color
	good    *color.Color
	bad     *color.Color
	warning *color.Color
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		info:    color.New(color.FgYellow),
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgMagenta),
	}
}

func money(v float64) string {
	return humanize.FormatFloat("#,###.#", v)
}

func signedMoney(v float64) string {
	if v >= 0 {
		return "+" + money(v)
	}
	return money(v)
}

// State prints the full player dashboard
func (r *renderer) State(s *models.GameState) {
	n := s.Player
	if n == nil {
		r.bad.Fprintln(r.out, "No player nation")
		return
	}

	r.title.Fprintf(r.out, "\n═══ Turn %d · %s ═══\n", s.Turn, n.Name)

	delta := game.ProjectTreasuryDelta(s)
	treasury := r.good
	if n.Treasury < 0 {
		treasury = r.bad
	}
	fmt.Fprint(r.out, "  Treasury:            ")
	treasury.Fprintf(r.out, "%s", money(n.Treasury))
	fmt.Fprintf(r.out, " (%s)\n", signedMoney(delta))

	growth := economy.GDPGrowthRate(n)
	fmt.Fprintf(r.out, "  Civilian GDP:        %s (+%s, %.2f%%)\n",
		money(n.CivilianGDP), money(n.CivilianGDP*growth), growth*100)
	fmt.Fprintf(r.out, "  Tax Rate:            %.0f%%\n", n.TaxRate*100)
	fmt.Fprintf(r.out, "  Social Spending:     %s\n", money(n.SocialSpending()))
	drift := economy.OpinionStep(n.PublicOpinion, n.TargetPublicOpinion) - n.PublicOpinion
	fmt.Fprintf(r.out, "  Public Opinion:      %.1f (target %.1f, %+.1f)\n",
		n.PublicOpinion, n.TargetPublicOpinion, drift)
	fmt.Fprintf(r.out, "  Industrial Capacity: %.1f\n", n.IndustrialCapacity())
	fmt.Fprintf(r.out, "  Infrastructure:      %d\n", n.InfrastructureLevel)
	fmt.Fprintf(r.out, "  IC Focus:            %s\n", n.ICFocusPolicy)

	r.research(n)

	crisisGain := n.IndustrialCapacity() * economy.CrisisAwarenessPerIC
	r.warning.Fprintf(r.out, "  Crisis Awareness:    %.1f (+%.1f)\n", s.CrisisAwareness, crisisGain)
	fmt.Fprintf(r.out, "  Social Dissonance:   %.1f\n", s.SocialDissonance)

	r.industries(n)
	r.construction(s, n)
}

func (r *renderer) research(n *models.Nation) {
	rate := economy.EffectiveResearchPoints(n)
	if n.CurrentResearch == nil {
		fmt.Fprintf(r.out, "  Research:            none (+%.1f RP/turn)\n", rate)
	} else {
		t := n.CurrentResearch
		remaining := "N/A"
		if turns, ok := economy.TurnsToComplete(t, rate); ok {
			remaining = fmt.Sprintf("%d", turns)
		}
		fmt.Fprintf(r.out, "  Research:            %s (%.0f/%.0f RP, +%.1f RP/turn, %s turns)\n",
			t.Name, t.RPProgress, t.RPCost, rate, remaining)
	}

	names := make([]string, 0, len(n.Technologies))
	for _, t := range n.Technologies {
		names = append(names, t.Name)
	}
	if len(names) == 0 {
		names = append(names, "none")
	}
	fmt.Fprintf(r.out, "  Researched:          %s\n", strings.Join(names, ", "))
}

func (r *renderer) industries(n *models.Nation) {
	r.title.Fprintln(r.out, "\nIndustries")
	table := tablewriter.NewTable(r.out,
		tablewriter.WithHeader([]string{"Industry", "Tier", "Level", "Gov IC", "Private IC", "Profit", "Tax", "Subsidy/IC", "Reinvest"}),
	)
	for _, ind := range n.Industries {
		_ = table.Append([]string{
			ind.Name,
			fmt.Sprintf("%d", ind.Tier),
			fmt.Sprintf("%d", ind.Level),
			fmt.Sprintf("%.1f", ind.GovernmentIC),
			fmt.Sprintf("%.1f", ind.PrivateIC),
			fmt.Sprintf("%.2f", ind.Profitability()),
			fmt.Sprintf("%.0f%%", ind.TaxRate*100),
			fmt.Sprintf("%.2f", ind.SubsidyPerIC),
			fmt.Sprintf("%.1f%%", economy.ReinvestmentShare(n.Industries, ind)*100),
		})
	}
	_ = table.Render()
}

func (r *renderer) construction(s *models.GameState, n *models.Nation) {
	cp := economy.ConstructionPoints(n)
	r.title.Fprintf(r.out, "\nConstruction (%d/%d slots, +%.2f CP/turn each)\n",
		len(n.ActiveProjects), n.ConstructionSlots, cp)
	if len(n.ActiveProjects) == 0 && len(n.ProjectQueue) == 0 {
		fmt.Fprintln(r.out, "  no projects")
		return
	}

	table := tablewriter.NewTable(r.out,
		tablewriter.WithHeader([]string{"#", "Project", "Target", "Progress", "Turns", "Status"}),
	)
	row := func(i int, p *models.ProjectInstance, status string) {
		def := s.Project(p.ProjectID)
		name, progress, turns := p.ProjectID, fmt.Sprintf("%.1f", p.CurrentCP), "?"
		if def != nil {
			name = def.Name
			progress = fmt.Sprintf("%.1f/%.0f", p.CurrentCP, def.CPCost)
			if t, ok := economy.TurnsToBuild(n, p, def); ok && status == "active" {
				turns = fmt.Sprintf("%d", t)
			}
		}
		_ = table.Append([]string{fmt.Sprintf("%d", i+1), name, p.Target, progress, turns, status})
	}
	for i, p := range n.ActiveProjects {
		row(i, p, "active")
	}
	for i, p := range n.ProjectQueue {
		row(len(n.ActiveProjects)+i, p, "queued")
	}
	_ = table.Render()
}

// Report prints what a resolved turn changed
func (r *renderer) Report(report *game.TurnReport) {
	r.title.Fprintf(r.out, "\n─── End of turn → %d ───\n", report.Turn)
	for _, nr := range report.Nations {
		delta := r.good
		if nr.TreasuryDelta < 0 {
			delta = r.bad
		}
		fmt.Fprintf(r.out, "  %s: treasury ", nr.Nation)
		delta.Fprintf(r.out, "%s", signedMoney(nr.TreasuryDelta))
		fmt.Fprintf(r.out, ", GDP growth %.2f%%", nr.GDPGrowthRate*100)
		if nr.ReinvestedIC > 0 {
			fmt.Fprintf(r.out, ", private reinvestment +%.2f IC", nr.ReinvestedIC)
		}
		fmt.Fprintln(r.out)

		if nr.CompletedResearch != "" {
			r.good.Fprintf(r.out, "  Research complete: %s\n", nr.CompletedResearch)
		}
		for _, name := range nr.UnlockedIndustries {
			r.good.Fprintf(r.out, "  New industry: %s\n", name)
		}
		for _, name := range nr.CompletedProjects {
			r.good.Fprintf(r.out, "  Project complete: %s\n", name)
		}
		if nr.ConstructionPaused {
			r.bad.Fprintln(r.out, "  Construction paused: treasury in deficit")
		}
	}
	for _, name := range report.FiredEvents {
		r.warning.Fprintf(r.out, "  Event: %s\n", name)
	}
	for _, c := range report.EventChanges {
		r.warning.Fprintf(r.out, "    %s %.1f -> %.1f\n", c.Attribute, c.Before, c.After)
	}
	if report.CrisisAwareness > 0 {
		r.info.Fprintf(r.out, "  Crisis awareness now %.1f\n", report.CrisisAwareness)
	}
}
