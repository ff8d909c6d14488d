// Package chat implements the storefront chat widget: a keyword matcher over
// canned responses and a session that replays them after a simulated typing
// delay. There is no chat backend; the matcher is the whole brain.
package chat

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed responses.yaml
var responsesYAML []byte

type rule struct {
	Keywords []string `yaml:"keywords"`
	Reply    string   `yaml:"reply"`
}

type responseFile struct {
	Welcome  string `yaml:"welcome"`
	Fallback string `yaml:"fallback"`
	Rules    []rule `yaml:"rules"`
}

// Matcher dispatches free-text input to a canned response via ordered
// substring rules, first match wins. It is total: input that matches no rule
// gets the fallback, so Reply cannot fail.
type Matcher struct {
	welcome  string
	fallback string
	rules    []rule
}

func NewMatcher() (*Matcher, error) {
	var file responseFile
	if err := yaml.Unmarshal(responsesYAML, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	if file.Fallback == "" {
		return nil, fmt.Errorf("fallback response is empty")
	}
	for i, r := range file.Rules {
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d has no keywords", i)
		}
		if r.Reply == "" {
			return nil, fmt.Errorf("rule %d has an empty reply", i)
		}
	}

	return &Matcher{
		welcome:  file.Welcome,
		fallback: file.Fallback,
		rules:    file.Rules,
	}, nil
}

func (m *Matcher) Welcome() string {
	return m.welcome
}

// Reply picks the response for the input. Rules are checked in file order
// against the lower-cased input.
func (m *Matcher) Reply(input string) string {
	lower := strings.ToLower(input)

	for _, r := range m.rules {
		for _, keyword := range r.Keywords {
			if strings.Contains(lower, keyword) {
				return r.Reply
			}
		}
	}

	return m.fallback
}
