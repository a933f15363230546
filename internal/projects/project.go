package projects

import "github.com/mvarner/jetsearch/internal/matching"

// Project is one recent IDE project: a display name and the directory it
// lives in.
type Project struct {
	Name string
	Path string
}

// MatchScore scores the project against terms over its name and path.
func (p Project) MatchScore(terms []string) float64 {
	return matching.ScoreFields(terms, p.Name, p.Path)
}

// DisplayName returns the project name shown in the shell overview.
func (p Project) DisplayName() string { return p.Name }

// Locator returns the project directory. It is shown as the result
// description and handed to the IDE on activation.
func (p Project) Locator() string { return p.Path }
