package models

// GameState is the root aggregate advanced one turn at a time
type GameState struct {
	Turn   int
	Player *Nation
	// AI nations are carried but never resolved.
	AINations []*Nation

	AllIndustries         []*Industry // archetype catalog
	AvailableTechnologies []*Technology
	AvailableEvents       []*Event // pending; removed once fired
	AvailableProjects     []*ProjectDefinition

	CrisisAwareness  float64
	SocialDissonance float64
}

// NewGameState creates an empty state around the player nation
func NewGameState(player *Nation) *GameState {
	return &GameState{
		Player:                player,
		AllIndustries:         make([]*Industry, 0),
		AvailableTechnologies: make([]*Technology, 0),
		AvailableEvents:       make([]*Event, 0),
		AvailableProjects:     make([]*ProjectDefinition, 0),
	}
}

// Nations returns the nations resolved each turn
func (s *GameState) Nations() []*Nation {
	if s.Player == nil {
		return nil
	}
	return []*Nation{s.Player}
}

// Technology returns the available technology with the given name, or nil
func (s *GameState) Technology(name string) *Technology {
	for _, t := range s.AvailableTechnologies {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Archetype returns the catalog industry with the given name, or nil
func (s *GameState) Archetype(name string) *Industry {
	for _, ind := range s.AllIndustries {
		if ind.Name == name {
			return ind
		}
	}
	return nil
}

// Project returns the project definition with the given id, or nil
func (s *GameState) Project(id string) *ProjectDefinition {
	return FindProject(s.AvailableProjects, id)
}
