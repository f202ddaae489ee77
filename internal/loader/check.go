package loader

import "fmt"

// Check verifies cross-catalog references: names are unique and every
// unlocked industry exists as an archetype
func (c *Catalogs) Check() error {
	industries := make(map[string]bool, len(c.Industries))
	for _, ind := range c.Industries {
		if industries[ind.Name] {
			return fmt.Errorf("duplicate industry %q", ind.Name)
		}
		industries[ind.Name] = true
	}

	techs := make(map[string]bool, len(c.Technologies))
	for _, t := range c.Technologies {
		if techs[t.Name] {
			return fmt.Errorf("duplicate technology %q", t.Name)
		}
		techs[t.Name] = true
		for _, name := range t.UnlocksIndustries {
			if !industries[name] {
				return fmt.Errorf("technology %q unlocks unknown industry %q", t.Name, name)
			}
		}
	}

	projects := make(map[string]bool, len(c.Projects))
	for _, p := range c.Projects {
		if projects[p.ID] {
			return fmt.Errorf("duplicate project %q", p.ID)
		}
		projects[p.ID] = true
	}
	return nil
}
