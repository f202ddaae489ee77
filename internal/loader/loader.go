package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/napolitain/defense-econ/internal/models"
)

// Catalog file base names inside the data directory
const (
	TechnologiesFile = "technologies"
	EventsFile       = "events"
	IndustriesFile   = "industries"
	ProjectsFile     = "projects"
)

// DefaultIndustryIC is the starting capacity of an archetype with no "ic" field
const DefaultIndustryIC = 10

var validate = validator.New()

// Catalogs holds every static definition the simulation consumes
type Catalogs struct {
	Technologies []*models.Technology
	Events       []*models.Event
	Industries   []*models.Industry
	Projects     []*models.ProjectDefinition
}

// technologyJSON represents the JSON structure for a technology
type technologyJSON struct {
	Name                   string             `json:"name" yaml:"name" validate:"required"`
	RPCost                 float64            `json:"rp_cost" yaml:"rp_cost" validate:"gt=0"`
	UnlocksIndustries      []string           `json:"unlocks_industries" yaml:"unlocks_industries" validate:"dive,required"`
	PrivateICCostReduction float64            `json:"private_ic_cost_reduction" yaml:"private_ic_cost_reduction" validate:"gte=0,lt=1"`
	Effects                map[string]float64 `json:"effects" yaml:"effects"`
}

// eventJSON represents the JSON structure for an event
type eventJSON struct {
	Name             string             `json:"name" yaml:"name" validate:"required"`
	Description      string             `json:"description" yaml:"description"`
	TriggerThreshold float64            `json:"trigger_threshold" yaml:"trigger_threshold" validate:"gte=0"`
	Effects          map[string]float64 `json:"effects" yaml:"effects" validate:"required"`
}

// industryJSON represents the JSON structure for an industry archetype
type industryJSON struct {
	Name          string              `json:"name" yaml:"name" validate:"required"`
	Tier          int                 `json:"tier" yaml:"tier" validate:"gte=1"`
	Profitability *float64            `json:"profitability" yaml:"profitability"`
	IC            *int                `json:"ic" yaml:"ic" validate:"omitempty,gte=0"`
	LevelBonuses  []models.LevelBonus `json:"level_bonuses" yaml:"level_bonuses" validate:"dive"`
}

// projectJSON represents the JSON structure for a construction project
type projectJSON struct {
	ID             string             `json:"id" yaml:"id" validate:"required"`
	Name           string             `json:"name" yaml:"name" validate:"required"`
	CPCost         float64            `json:"cp_cost" yaml:"cp_cost" validate:"gt=0"`
	UpkeepCost     float64            `json:"upkeep_cost" yaml:"upkeep_cost" validate:"gte=0"`
	RequiresTarget bool               `json:"requires_target" yaml:"requires_target"`
	Effects        map[string]float64 `json:"effects" yaml:"effects" validate:"required"`
}

// LoadCatalogs loads all four catalogs from dataDir
func LoadCatalogs(dataDir string) (*Catalogs, error) {
	techs, err := LoadTechnologies(dataDir)
	if err != nil {
		return nil, err
	}
	events, err := LoadEvents(dataDir)
	if err != nil {
		return nil, err
	}
	industries, err := LoadIndustries(dataDir)
	if err != nil {
		return nil, err
	}
	projects, err := LoadProjects(dataDir)
	if err != nil {
		return nil, err
	}

	c := &Catalogs{
		Technologies: techs,
		Events:       events,
		Industries:   industries,
		Projects:     projects,
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadTechnologies loads technology definitions
func LoadTechnologies(dataDir string) ([]*models.Technology, error) {
	var raw []technologyJSON
	if err := readCatalog(dataDir, TechnologiesFile, &raw); err != nil {
		return nil, err
	}

	techs := make([]*models.Technology, 0, len(raw))
	for _, t := range raw {
		techs = append(techs, models.NewTechnology(t.Name, t.RPCost, t.UnlocksIndustries, t.PrivateICCostReduction, t.Effects))
	}
	return techs, nil
}

// LoadEvents loads event definitions. Effect keys must name a nation attribute.
func LoadEvents(dataDir string) ([]*models.Event, error) {
	var raw []eventJSON
	if err := readCatalog(dataDir, EventsFile, &raw); err != nil {
		return nil, err
	}

	events := make([]*models.Event, 0, len(raw))
	for _, e := range raw {
		effects := make(map[models.NationAttribute]float64, len(e.Effects))
		for key, delta := range e.Effects {
			attr, err := models.ParseNationAttribute(key)
			if err != nil {
				return nil, fmt.Errorf("event %q: %w", e.Name, err)
			}
			effects[attr] = delta
		}
		events = append(events, &models.Event{
			Name:             e.Name,
			Description:      e.Description,
			TriggerThreshold: e.TriggerThreshold,
			Effects:          effects,
		})
	}
	return events, nil
}

// LoadIndustries loads industry archetypes. Initial IC is split with the
// government taking the rounded-down half.
func LoadIndustries(dataDir string) ([]*models.Industry, error) {
	var raw []industryJSON
	if err := readCatalog(dataDir, IndustriesFile, &raw); err != nil {
		return nil, err
	}

	industries := make([]*models.Industry, 0, len(raw))
	for _, ind := range raw {
		profitability := 1.0
		if ind.Profitability != nil {
			profitability = *ind.Profitability
		}
		ic := DefaultIndustryIC
		if ind.IC != nil {
			ic = *ind.IC
		}
		government := float64(ic / 2)
		private := float64(ic) - government

		industries = append(industries, models.NewIndustry(ind.Name, ind.Tier, profitability, government, private, ind.LevelBonuses))
	}
	return industries, nil
}

// LoadProjects loads construction project definitions
func LoadProjects(dataDir string) ([]*models.ProjectDefinition, error) {
	var raw []projectJSON
	if err := readCatalog(dataDir, ProjectsFile, &raw); err != nil {
		return nil, err
	}

	projects := make([]*models.ProjectDefinition, 0, len(raw))
	for _, p := range raw {
		effects := make(map[models.ProjectEffect]float64, len(p.Effects))
		for key, magnitude := range p.Effects {
			effect, err := models.ParseProjectEffect(key)
			if err != nil {
				return nil, fmt.Errorf("project %q: %w", p.ID, err)
			}
			effects[effect] = magnitude
		}
		projects = append(projects, &models.ProjectDefinition{
			ID:             p.ID,
			Name:           p.Name,
			CPCost:         p.CPCost,
			UpkeepCost:     p.UpkeepCost,
			RequiresTarget: p.RequiresTarget,
			Effects:        effects,
		})
	}
	return projects, nil
}

// readCatalog decodes <name>.json, falling back to <name>.yaml, and validates each entry
func readCatalog[T any](dataDir, name string, out *[]T) error {
	jsonPath := filepath.Join(dataDir, name+".json")
	data, err := os.ReadFile(jsonPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse %s.json: %w", name, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		yamlPath := filepath.Join(dataDir, name+".yaml")
		data, err = os.ReadFile(yamlPath)
		if err != nil {
			return fmt.Errorf("failed to read %s catalog: %w", name, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse %s.yaml: %w", name, err)
		}
	default:
		return fmt.Errorf("failed to read %s.json: %w", name, err)
	}

	for i := range *out {
		if err := validate.Struct((*out)[i]); err != nil {
			return fmt.Errorf("invalid %s entry %d: %w", name, i, err)
		}
	}
	return nil
}
