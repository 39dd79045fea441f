package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FlowConfig represents the YAML definition of one wizard flow
type FlowConfig struct {
	Flow     Flow         `yaml:"flow"`
	Settings Settings     `yaml:"settings"`
	Steps    []StepConfig `yaml:"steps"`
}

// Flow holds flow identification
type Flow struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Resource string `yaml:"resource"` // target resource for the composed record
}

// Settings holds flow-level settings
type Settings struct {
	Intro          bool `yaml:"intro"` // start on an intro pseudo-step
	MaxListEntries int  `yaml:"max_list_entries"`
}

// StepConfig represents one step within a flow
type StepConfig struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Required      []string `yaml:"required,omitempty"`       // answer keys that must be filled
	AutoAdvance   bool     `yaml:"auto_advance,omitempty"`   // advance right after a valid single choice
	ListField     string   `yaml:"list_field,omitempty"`     // dynamic list answer key (e.g. guest list)
	EntryRequired []string `yaml:"entry_required,omitempty"` // fields every list entry must fill
}

// FindStep finds a step by ID, returns nil if not found
func (c *FlowConfig) FindStep(stepID string) *StepConfig {
	for i := range c.Steps {
		if c.Steps[i].ID == stepID {
			return &c.Steps[i]
		}
	}
	return nil
}

// BuildSteps converts the configured steps into wizard steps with their
// validation predicates. Required keys must be filled; a list field must
// hold at least one entry with every entry-required field filled.
func (c *FlowConfig) BuildSteps() []Step {
	steps := make([]Step, 0, len(c.Steps))
	for _, sc := range c.Steps {
		sc := sc
		steps = append(steps, Step{
			Key:         sc.ID,
			Name:        sc.Name,
			AutoAdvance: sc.AutoAdvance,
			Validate: func(a Answers) bool {
				for _, key := range sc.Required {
					if !a.Filled(key) {
						return false
					}
				}
				if sc.ListField != "" {
					entries := a.Entries(sc.ListField)
					if len(entries) == 0 {
						return false
					}
					for _, entry := range entries {
						for _, field := range sc.EntryRequired {
							s, _ := entry[field].(string)
							if strings.TrimSpace(s) == "" {
								return false
							}
						}
					}
				}
				return true
			},
		})
	}
	return steps
}

// NewWizard instantiates a fresh wizard for this flow
func (c *FlowConfig) NewWizard() *Wizard {
	return New(c.BuildSteps(), c.Settings.Intro)
}

// LoadFlow reads and validates a single flow definition
func LoadFlow(path string) (*FlowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flow config: %w", err)
	}

	var cfg FlowConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flow config %s: %w", path, err)
	}

	if err := ValidateFlowConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid flow config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadFlows reads every *.yaml flow definition in dir, keyed by flow id
func LoadFlows(dir string) (map[string]*FlowConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read flows directory: %w", err)
	}

	flows := make(map[string]*FlowConfig)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		cfg, err := LoadFlow(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := flows[cfg.Flow.ID]; dup {
			return nil, fmt.Errorf("duplicate flow id %q in %s", cfg.Flow.ID, entry.Name())
		}
		flows[cfg.Flow.ID] = cfg
	}

	if len(flows) == 0 {
		return nil, fmt.Errorf("no flow definitions found in %s", dir)
	}

	return flows, nil
}
