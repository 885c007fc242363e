package onboarding

import (
	"govconnect/internal/signal"
	"govconnect/pkg/domain"
	"slices"
)

// Step is a page of the wizard, starting at 1.
type Step int

const (
	StepDescription Step = iota + 1
	StepIndustry
	StepValue
	StepRegion
)

// FirstStep and LastStep bound the wizard.
const (
	FirstStep = StepDescription
	LastStep  = StepRegion
)

func (s Step) String() string {
	switch s {
	case StepDescription:
		return "description"
	case StepIndustry:
		return "industry"
	case StepValue:
		return "value"
	case StepRegion:
		return "region"
	default:
		return "unknown"
	}
}

// Route is the presentation route showing the step.
func (s Step) Route() signal.Route {
	switch s {
	case StepIndustry:
		return signal.RouteOnboardingIndustry
	case StepValue:
		return signal.RouteOnboardingValue
	case StepRegion:
		return signal.RouteOnboardingRegion
	default:
		return signal.RouteOnboardingStart
	}
}

// Draft is the profile being collected. Fields keep their values when the user
// moves back and forth between steps.
type Draft struct {
	Description   string            `json:"businessDescription"`
	IndustryCodes []string          `json:"industryCodes"`
	ValueRange    domain.ValueRange `json:"valueRange"`
	Region        domain.Region     `json:"region"`
}

// NewDraft returns the defaults a fresh flow starts from.
func NewDraft() Draft {
	return Draft{
		IndustryCodes: []string{
			domain.SuggestedIndustryCodes[0].Code,
			domain.SuggestedIndustryCodes[1].Code,
		},
		ValueRange: domain.DefaultValueRange,
		Region:     domain.RegionAllOfCanada,
	}
}

func (d Draft) clone() Draft {
	d.IndustryCodes = slices.Clone(d.IndustryCodes)

	return d
}

// Profile converts the draft into the profile of userID.
func (d Draft) Profile(userID domain.UserID) domain.BusinessProfile {
	return domain.BusinessProfile{
		UserID:        userID,
		Description:   d.Description,
		IndustryCodes: slices.Clone(d.IndustryCodes),
		ValueRange:    d.ValueRange,
		Region:        d.Region,
	}
}

// State is a consistent view of the flow. CanProceed reports whether the
// current step passes its gate, so Next (or Finish on the last step) may run.
type State struct {
	Step       Step         `json:"step"`
	Route      signal.Route `json:"route"`
	Draft      Draft        `json:"draft"`
	CanProceed bool         `json:"canProceed"`
	Submitting bool         `json:"submitting"`
}
