package engine

// Intent is a typed request submitted to the controller. The set of intents
// is closed; transports map their wire formats onto these values.
type Intent interface {
	IntentName() string
}

// StartGame creates the players and deals the opening hands. Only legal in
// the setup phase with 2-4 player names.
type StartGame struct {
	Players []string `json:"players"`
}

// SelectAction activates one action kind for the current player. Pass skips
// selection and executes a forced discard immediately.
type SelectAction struct {
	Kind ActionKind `json:"kind"`
}

// SelectCard picks a card from the current player's hand. During a scout's
// selectingCards step it toggles the card in the discard set instead.
type SelectCard struct {
	CardID string `json:"card_id"`
}

// SelectLocation picks the target city for a build or sell action.
type SelectLocation struct {
	City string `json:"city"`
}

// SelectIndustry picks the industry type to build or sell at the selected city.
type SelectIndustry struct {
	Type IndustryType `json:"type"`
}

// SelectLink picks the city pair for a network action.
type SelectLink struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SelectSecondLink picks the second city pair of a rail-era double link build.
type SelectSecondLink struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SelectDevelopTiles picks one or two industry types whose lowest tiles a
// develop action removes from the player mat.
type SelectDevelopTiles struct {
	Types []IndustryType `json:"types"`
}

// Confirm runs the executor bound to the current confirming state.
type Confirm struct{}

// Cancel returns to the previous selection sub-state, discarding only the
// in-flight selection fields. It never touches committed state.
type Cancel struct{}

// ChooseDoubleLinkBuild opts into building a second rail link after the first
// has been confirmed. Guarded by a reachable, non-exhausted beer source.
type ChooseDoubleLinkBuild struct{}

// ExecuteDoubleNetworkAction commits the combined two-link rail build.
type ExecuteDoubleNetworkAction struct{}

func (StartGame) IntentName() string                  { return "StartGame" }
func (SelectAction) IntentName() string               { return "SelectActionKind" }
func (SelectCard) IntentName() string                 { return "SelectCard" }
func (SelectLocation) IntentName() string             { return "SelectLocation" }
func (SelectIndustry) IntentName() string             { return "SelectIndustryType" }
func (SelectLink) IntentName() string                 { return "SelectLink" }
func (SelectSecondLink) IntentName() string           { return "SelectSecondLink" }
func (SelectDevelopTiles) IntentName() string         { return "SelectTilesForDevelop" }
func (Confirm) IntentName() string                    { return "Confirm" }
func (Cancel) IntentName() string                     { return "Cancel" }
func (ChooseDoubleLinkBuild) IntentName() string      { return "ChooseDoubleLinkBuild" }
func (ExecuteDoubleNetworkAction) IntentName() string { return "ExecuteDoubleNetworkAction" }
