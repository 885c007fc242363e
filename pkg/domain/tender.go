package domain

import "time"

// TenderID identifies a published tender.
type TenderID string

// TenderMark is a per-user decision about a tender.
type TenderMark string

const (
	// TenderMarkNone means the user has not acted on the tender yet.
	TenderMarkNone TenderMark = ""
	// TenderMarkSaved keeps the tender in the user's saved list.
	TenderMarkSaved TenderMark = "SAVED"
	// TenderMarkIgnored hides the tender from new matches.
	TenderMarkIgnored TenderMark = "IGNORED"
)

// TenderCategory selects one of the dashboard lists.
type TenderCategory string

const (
	// TenderCategoryNew lists tenders the user has not saved nor ignored.
	TenderCategoryNew TenderCategory = "new"
	// TenderCategorySaved lists saved tenders.
	TenderCategorySaved TenderCategory = "saved"
	// TenderCategoryIgnored lists ignored tenders.
	TenderCategoryIgnored TenderCategory = "ignored"
)

// ParseTenderCategory maps a dashboard tab id to a category. Unknown values
// fall back to the new matches tab.
func ParseTenderCategory(s string) TenderCategory {
	switch TenderCategory(s) {
	case TenderCategorySaved, TenderCategoryIgnored:
		return TenderCategory(s)
	default:
		return TenderCategoryNew
	}
}

// Tender is a government procurement opportunity.
type Tender struct {
	ID          TenderID   `json:"id"`
	Title       string     `json:"title"`
	Department  string     `json:"department"`
	Buyer       string     `json:"buyer"`
	Description string     `json:"description"`
	Deadline    time.Time  `json:"deadline"`
	ClosingDate time.Time  `json:"closingDate"`
	NAICSCodes  []string   `json:"naicsCodes"`
	Tags        []string   `json:"tags"`
	Value       ValueRange `json:"value"`

	// MatchScore is the per-user relevance in [0, 1]; zero until the matching
	// job has run for the user.
	MatchScore float64 `json:"matchScore"`
	// Mark is the user's decision on the tender.
	Mark TenderMark `json:"mark,omitempty"`
}

// MatchScore weights.
const (
	codeMatchWeight  = 0.7
	valueMatchWeight = 0.3
)

// ScoreTender rates how well the tender fits the profile. The score is zero
// when none of the tender's NAICS codes are in the profile; otherwise it is
// the weighted share of matching codes plus a bonus when the contract value
// overlaps the preferred range.
func ScoreTender(profile BusinessProfile, tender Tender) float64 {
	if len(tender.NAICSCodes) == 0 {
		return 0
	}

	codes := make(map[string]struct{}, len(profile.IndustryCodes))
	for _, c := range profile.IndustryCodes {
		codes[c] = struct{}{}
	}

	matched := 0
	for _, c := range tender.NAICSCodes {
		if _, ok := codes[c]; ok {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}

	score := codeMatchWeight * float64(matched) / float64(len(tender.NAICSCodes))
	if profile.ValueRange.Overlaps(tender.Value) {
		score += valueMatchWeight
	}

	return score
}
