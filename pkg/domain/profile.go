package domain

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// MinContractValue is the lower bound of the contract value slider, in CAD.
	MinContractValue int64 = 5_000
	// MaxContractValue is the upper bound of the contract value slider, in CAD.
	MaxContractValue int64 = 1_000_000
	// ContractValueStep is the slider granularity, in CAD.
	ContractValueStep int64 = 5_000
)

// Errors returned by profile validation.
var (
	ErrEmptyDescription   = errors.New("business description is required")
	ErrNoIndustryCodes    = errors.New("at least one industry code is required")
	ErrInvalidIndustry    = errors.New("industry code must be 2 to 6 digits")
	ErrInvalidValueRange  = errors.New("invalid contract value range")
	ErrUnrecognizedRegion = errors.New("unrecognized region")
)

// ValueRange is the preferred contract value window, in whole CAD.
type ValueRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// DefaultValueRange is preselected in a fresh onboarding draft.
var DefaultValueRange = ValueRange{Min: 50_000, Max: 250_000} //nolint: gochecknoglobals

// Validate checks the slider bounds and ordering.
func (r ValueRange) Validate() error {
	if r.Min < MinContractValue || r.Max > MaxContractValue {
		return fmt.Errorf("%w: must be within %d and %d", ErrInvalidValueRange, MinContractValue, MaxContractValue)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidValueRange, r.Min, r.Max)
	}

	return nil
}

// Overlaps reports whether the two ranges share at least one value.
func (r ValueRange) Overlaps(other ValueRange) bool {
	return r.Min <= other.Max && other.Min <= r.Max
}

// String renders the range the way the dashboard shows it, e.g. "$50,000 - $250,000".
func (r ValueRange) String() string {
	return FormatCAD(r.Min) + " - " + FormatCAD(r.Max)
}

var canadianEnglish = language.MustParse("en-CA") //nolint: gochecknoglobals

// FormatCAD formats a whole dollar amount using Canadian English grouping.
func FormatCAD(v int64) string {
	p := message.NewPrinter(canadianEnglish)

	return p.Sprintf("$%v", number.Decimal(v))
}

// CurrencyCode is the ISO 4217 code all contract values are expressed in.
func CurrencyCode() string { return currency.CAD.String() }

// Region is a geographic preference for tenders.
type Region string

const (
	// RegionAllOfCanada means no regional restriction.
	RegionAllOfCanada Region = "All of Canada"
	// RegionRemoteOnly restricts to remote-deliverable work.
	RegionRemoteOnly Region = "Remote Only"
)

// Provinces lists the recognized provinces and territories.
var Provinces = []Region{ //nolint: gochecknoglobals
	"Alberta", "British Columbia", "Manitoba", "New Brunswick",
	"Newfoundland and Labrador", "Nova Scotia", "Ontario",
	"Prince Edward Island", "Quebec", "Saskatchewan",
	"Northwest Territories", "Nunavut", "Yukon",
}

// Regions returns every selectable region, special values first.
func Regions() []Region {
	return append([]Region{RegionAllOfCanada, RegionRemoteOnly}, Provinces...)
}

// ParseRegion validates a region name.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.TrimSpace(s))
	if slices.Contains(Regions(), r) {
		return r, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnrecognizedRegion, s)
}

// IndustryCode is a NAICS classification code with a human description.
type IndustryCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// SuggestedIndustryCodes are offered during onboarding.
var SuggestedIndustryCodes = []IndustryCode{ //nolint: gochecknoglobals
	{Code: "541512", Description: "Computer Systems Design Services"},
	{Code: "541519", Description: "Other Computer Related Services"},
	{Code: "541611", Description: "Administrative Management Consulting"},
	{Code: "541330", Description: "Engineering Services"},
	{Code: "541990", Description: "All Other Professional Services"},
}

var naicsPattern = regexp.MustCompile(`^[0-9]{2,6}$`)

// NormalizeIndustryCode trims the code and, when strict is set, checks it is a
// NAICS code of 2 (sector) to 6 (national industry) digits.
func NormalizeIndustryCode(code string, strict bool) (string, error) {
	code = strings.TrimSpace(code)
	if strict && !naicsPattern.MatchString(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIndustry, code)
	}

	return code, nil
}

// BusinessProfile holds the attributes collected during onboarding.
type BusinessProfile struct {
	UserID        UserID     `json:"-"`
	Description   string     `json:"businessDescription"`
	IndustryCodes []string   `json:"industryCodes"`
	ValueRange    ValueRange `json:"valueRange"`
	Region        Region     `json:"region"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Validate checks every invariant a completed profile must satisfy.
func (p BusinessProfile) Validate(strictCodes bool) error {
	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}
	if len(p.IndustryCodes) == 0 {
		return ErrNoIndustryCodes
	}
	for _, c := range p.IndustryCodes {
		if _, err := NormalizeIndustryCode(c, strictCodes); err != nil {
			return err
		}
	}
	if err := p.ValueRange.Validate(); err != nil {
		return err
	}
	if _, err := ParseRegion(string(p.Region)); err != nil {
		return err
	}

	return nil
}
