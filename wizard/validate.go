package wizard

import (
	"errors"
	"fmt"
)

// ValidateFlowConfig validates a flow configuration
func ValidateFlowConfig(cfg *FlowConfig) error {
	var errs []error

	if cfg.Flow.ID == "" {
		errs = append(errs, errors.New("flow.id is required"))
	}

	if cfg.Flow.Resource == "" {
		errs = append(errs, errors.New("flow.resource is required"))
	}

	if len(cfg.Steps) == 0 {
		errs = append(errs, errors.New("at least one step is required"))
	}

	if cfg.Settings.MaxListEntries < 0 {
		errs = append(errs, errors.New("settings.max_list_entries must not be negative"))
	}

	seen := make(map[string]bool)
	for i, step := range cfg.Steps {
		if step.ID == "" {
			errs = append(errs, fmt.Errorf("steps[%d].id is required", i))
			continue
		}
		if seen[step.ID] {
			errs = append(errs, fmt.Errorf("steps[%d].id %q is duplicated", i, step.ID))
		}
		seen[step.ID] = true

		if step.ListField == "" && len(step.EntryRequired) > 0 {
			errs = append(errs, fmt.Errorf("steps[%d].entry_required needs a list_field", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("flow validation failed: %w", errors.Join(errs...))
	}

	return nil
}
