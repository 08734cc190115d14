package models

// PathwayStage is one of the six ordered phases of the transplant
// process. The resolver derives exactly one active stage per patient; it
// is a pure function of current signals, not a ratchet.
type PathwayStage string

const (
	StageIdentification PathwayStage = "identification"
	StageReferral       PathwayStage = "referral"
	StageEvaluation     PathwayStage = "evaluation"
	StageSelection      PathwayStage = "selection"
	StageTransplant     PathwayStage = "transplantation"
	StagePostTransplant PathwayStage = "post-transplant"
)

// ParsePathwayStage validates a registry-provided stage against the
// six-value enum. Unknown values report ok=false so callers fall back to
// local derivation.
func ParsePathwayStage(value string) (PathwayStage, bool) {
	stage := PathwayStage(value)
	switch stage {
	case StageIdentification, StageReferral, StageEvaluation,
		StageSelection, StageTransplant, StagePostTransplant:
		return stage, true
	}
	return "", false
}
