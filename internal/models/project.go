package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ProjectEffect names what a completed construction project does
type ProjectEffect string

const (
	// AddIC adds government-owned capacity to the project's target industry
	AddIC ProjectEffect = "add_ic"
	// AddInfrastructure raises the nation's infrastructure level
	AddInfrastructure ProjectEffect = "add_infrastructure"
)

// AllProjectEffects returns all project effects in deterministic order
func AllProjectEffects() []ProjectEffect {
	return []ProjectEffect{AddIC, AddInfrastructure}
}

// ParseProjectEffect converts a catalog key to a ProjectEffect
func ParseProjectEffect(s string) (ProjectEffect, error) {
	for _, e := range AllProjectEffects() {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown project effect %q", s)
}

// ProjectDefinition is a catalog entry for a construction project
type ProjectDefinition struct {
	ID             string
	Name           string
	CPCost         float64
	UpkeepCost     float64
	RequiresTarget bool
	Effects        map[ProjectEffect]float64
}

// ProjectInstance is one construction order, active or queued
type ProjectInstance struct {
	ID        uuid.UUID
	ProjectID string
	Target    string // empty when the project has no target
	CurrentCP float64
}

// NewProjectInstance creates a construction order with no progress
func NewProjectInstance(projectID, target string) *ProjectInstance {
	return &ProjectInstance{
		ID:        uuid.New(),
		ProjectID: projectID,
		Target:    target,
	}
}

// FindProject returns the definition with the given id, or nil
func FindProject(defs []*ProjectDefinition, id string) *ProjectDefinition {
	for _, def := range defs {
		if def.ID == id {
			return def
		}
	}
	return nil
}
