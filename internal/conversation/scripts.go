// Package conversation drives the reflection prompt and the tiger's scripted
// replies, including the follow-up chat.
package conversation

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ameliastxne/druzhok/internal/emotion"
)

//go:embed scripts.yaml
var scriptsYAML []byte

// Scripts are the fixed texts the tiger answers with.
type Scripts struct {
	Replies   map[string]string `yaml:"replies"`
	FollowUps []string          `yaml:"followups"`
}

// LoadScripts parses scripts and checks that every emotion has a reply and
// there is at least one follow-up.
func LoadScripts(data []byte) (Scripts, error) {
	var s Scripts
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scripts{}, fmt.Errorf("parse scripts: %w", err)
	}
	for _, e := range emotion.All {
		if s.Replies[e.String()] == "" {
			return Scripts{}, fmt.Errorf("parse scripts: no reply for %s", e)
		}
	}
	if len(s.FollowUps) == 0 {
		return Scripts{}, fmt.Errorf("parse scripts: no follow-ups")
	}
	return s, nil
}

// DefaultScripts are the built-in texts.
var DefaultScripts = func() Scripts {
	s, err := LoadScripts(scriptsYAML)
	if err != nil {
		panic(err)
	}
	return s
}()

// Reply is the scripted answer to a reflection on e.
func (s Scripts) Reply(e emotion.Emotion) string {
	return s.Replies[e.String()]
}
