package engine

// GamePhase is the top level of the turn state machine.
type GamePhase string

const (
	PhaseSetup    GamePhase = "setup"
	PhasePlaying  GamePhase = "playing"
	PhaseGameOver GamePhase = "gameOver"
)

// ActionKind identifies the action a player is performing.
type ActionKind string

const (
	ActionBuild   ActionKind = "build"
	ActionDevelop ActionKind = "develop"
	ActionSell    ActionKind = "sell"
	ActionScout   ActionKind = "scout"
	ActionLoan    ActionKind = "loan"
	ActionNetwork ActionKind = "network"
	ActionPass    ActionKind = "pass"
)

// ActionStep is the selection sub-phase within an active action.
type ActionStep string

const (
	StepChoosingAction      ActionStep = "choosingAction"
	StepSelectingCard       ActionStep = "selectingCard"
	StepSelectingLocation   ActionStep = "selectingLocation"
	StepSelectingIndustry   ActionStep = "selectingIndustryType"
	StepSelectingLink       ActionStep = "selectingLink"
	StepSelectingCards      ActionStep = "selectingCards"
	StepConfirming          ActionStep = "confirming"
	StepSelectingSecondLink ActionStep = "selectingSecondLink"
	StepConfirmingDouble    ActionStep = "confirmingDouble"
)

// TurnPhase is the flat representation of the nested phase hierarchy.
// Action and Step are empty outside PhasePlaying; Action is empty while the
// player is still choosing an action kind.
type TurnPhase struct {
	State  GamePhase  `json:"state"`
	Action ActionKind `json:"action,omitempty"`
	Step   ActionStep `json:"step,omitempty"`
}

// Path renders the phase as a dotted path, e.g. "playing.build.selectingLocation".
func (p TurnPhase) Path() string {
	out := string(p.State)
	if p.Action != "" {
		out += "." + string(p.Action)
	}
	if p.Step != "" && p.Step != StepChoosingAction {
		out += "." + string(p.Step)
	} else if p.State == PhasePlaying && p.Action == "" {
		out += ".choosingAction"
	}
	return out
}

func choosingActionPhase() TurnPhase {
	return TurnPhase{State: PhasePlaying, Step: StepChoosingAction}
}

func actionPhase(kind ActionKind, step ActionStep) TurnPhase {
	return TurnPhase{State: PhasePlaying, Action: kind, Step: step}
}

// previousStep returns the selection sub-state a CANCEL falls back to from
// the given step of the given action, or StepChoosingAction when cancelling
// out of the action entirely.
func previousStep(action ActionKind, step ActionStep) ActionStep {
	switch step {
	case StepSelectingCard:
		return StepChoosingAction
	case StepSelectingLocation, StepSelectingLink, StepSelectingCards:
		return StepSelectingCard
	case StepSelectingIndustry:
		return StepSelectingLocation
	case StepConfirming:
		switch action {
		case ActionBuild, ActionSell:
			return StepSelectingIndustry
		case ActionDevelop, ActionScout:
			return StepSelectingCards
		case ActionNetwork:
			return StepSelectingLink
		default: // loan
			return StepSelectingCard
		}
	case StepSelectingSecondLink:
		return StepConfirming
	case StepConfirmingDouble:
		return StepSelectingSecondLink
	}
	return StepChoosingAction
}
