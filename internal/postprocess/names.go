package postprocess

import (
	"fmt"
	"strings"
)

// Names accepted by FromNames, matching the configuration surface.
const (
	NameNoAction            = "noaction"
	NameInitialMakeSolution = "initial_makesolution"
	NameWait                = "wait"
	NameWaitDrop            = "wait_drop"
	NameSameTemperature     = "same_temperature"
	NameFilter              = "filter"
	NameDuplicates          = "duplicates"
	NameDrySolutionFollowUp = "drysolution_filter"
	NamePurifyRemoval       = "purify_removal"
)

// DefaultNames is the default chain order, as names.
func DefaultNames() []string {
	return []string{
		NameNoAction,
		NameInitialMakeSolution,
		NameWait,
		NameSameTemperature,
		NameFilter,
		NameDuplicates,
	}
}

// FromNames builds a combiner from configured postprocessor names, keeping
// the configured order.
func FromNames(names []string) (*Combiner, error) {
	processors := make([]Postprocessor, 0, len(names))
	for _, name := range names {
		p, err := byName(name)
		if err != nil {
			return nil, err
		}
		processors = append(processors, p)
	}
	return NewCombiner(processors...), nil
}

func byName(name string) (Postprocessor, error) {
	switch strings.TrimSpace(name) {
	case NameNoAction:
		return &NoActionPostprocessor{}, nil
	case NameInitialMakeSolution:
		return &InitialMakeSolutionPostprocessor{}, nil
	case NameWait:
		return &WaitPostprocessor{}, nil
	case NameWaitDrop:
		return &WaitPostprocessor{DropUnmerged: true}, nil
	case NameSameTemperature:
		return &SameTemperaturePostprocessor{}, nil
	case NameFilter:
		return &FilterPostprocessor{}, nil
	case NameDuplicates:
		return &DuplicatesPostprocessor{}, nil
	case NameDrySolutionFollowUp:
		return &DrySolutionPostprocessor{}, nil
	case NamePurifyRemoval:
		return &PurifyPostprocessor{}, nil
	default:
		return nil, fmt.Errorf("unknown postprocessor %q", name)
	}
}
