// Package presence simulates which collaborators are currently active on the
// board. It is cosmetic: nothing here reads or writes board state.
package presence

import "github.com/google/uuid"

// Collaborator is a person shown in the presence bar
type Collaborator struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Color  string `yaml:"color" json:"color"` // Color token, see colors.Token
	Online bool   `yaml:"online" json:"online"`
}

// DefaultCollaborators returns the built-in collaborator list.
// The first entry is the local user.
func DefaultCollaborators() []Collaborator {
	return []Collaborator{
		{ID: "1", Name: "You", Color: "blue", Online: true},
		{ID: "2", Name: "Alice Chen", Color: "purple", Online: true},
		{ID: "3", Name: "Bob Kumar", Color: "pink", Online: false},
		{ID: "4", Name: "Carol Smith", Color: "indigo", Online: true},
	}
}

// Normalize returns a copy of cs with a generated id for every entry that has
// none. An empty list yields the defaults.
func Normalize(cs []Collaborator) []Collaborator {
	if len(cs) == 0 {
		return DefaultCollaborators()
	}
	out := make([]Collaborator, len(cs))
	copy(out, cs)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
		if out[i].Color == "" {
			out[i].Color = "gray"
		}
	}
	return out
}

// Initials returns up to two upper-case initials for an avatar
func (c Collaborator) Initials() string {
	var out []rune
	start := true
	for _, r := range c.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, toUpper(r))
			start = false
			if len(out) == 2 {
				break
			}
		}
	}
	return string(out)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
