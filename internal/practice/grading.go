package practice

// Band is a self-assessment grade for essay answers, picked by the learner
// after comparing their answer with the canonical one.
type Band float64

const (
	BandNeedsWork    Band = 0.25
	BandGettingThere Band = 0.5
	BandSolid        Band = 0.75
	BandNailedIt     Band = 1.0
)

// AllBands returns the selectable bands in ascending order.
func AllBands() []Band {
	return []Band{BandNeedsWork, BandGettingThere, BandSolid, BandNailedIt}
}

// Label returns the display name for a band.
func (b Band) Label() string {
	switch b {
	case BandNeedsWork:
		return "Needs Work"
	case BandGettingThere:
		return "Getting There"
	case BandSolid:
		return "Solid"
	case BandNailedIt:
		return "Nailed It"
	default:
		return "Unknown"
	}
}

// Feedback returns the fixed feedback text for a band.
func (b Band) Feedback() string {
	switch b {
	case BandNeedsWork:
		return "Keep studying this one — review the model answer and try again soon."
	case BandGettingThere:
		return "You covered part of it. Re-read the model answer and fill the gaps."
	case BandSolid:
		return "Good answer — a few details short of the model answer."
	case BandNailedIt:
		return "Excellent. You covered everything the model answer does."
	default:
		return ""
	}
}

// Valid reports whether b is one of the four selectable bands.
func (b Band) Valid() bool {
	switch b {
	case BandNeedsWork, BandGettingThere, BandSolid, BandNailedIt:
		return true
	}
	return false
}

// Fixed feedback for auto-graded multiple-choice answers.
const (
	FeedbackChoiceCorrect   = "Correct!"
	FeedbackChoiceIncorrect = "Incorrect — compare your pick with the highlighted answer."
)
