package engine

// The build validator is a sequence of composable checks, each independently
// testable. Violations are recoverable values, never panics: they surface as
// an error log entry and leave state untouched.

// checkBuildSelection verifies selection completeness: a card, a target city,
// and an industry type must all be selected.
func checkBuildSelection(sel Selection) *ActionError {
	if sel.CardID == "" || sel.City == "" || sel.Industry == "" {
		return &ActionError{Code: ErrCodeSelectionIncomplete, Message: "build needs a card, a location, and an industry type"}
	}
	return nil
}

// checkNetworkRequirement verifies where the card allows building. Location
// and wild-location cards build anywhere; industry cards require the target
// to be inside the player's network, unless the player has no presence on
// the board yet.
func checkNetworkRequirement(gs *GameState, card Card, playerID, city string) *ActionError {
	switch card.Kind {
	case CardLocation, CardWildLocation:
		return nil
	}
	if gs.HasNoPresence(playerID) {
		return nil
	}
	if !gs.Footprint(playerID)[city] {
		return &ActionError{Code: ErrCodeNotInNetwork, Message: city + " is not in your network"}
	}
	return nil
}

// checkSlotAvailability finds the lowest-index free slot in the city whose
// accepted-type set includes the industry. Multi-type slots are exclusive:
// any occupant blocks every type the slot accepts.
func checkSlotAvailability(cfg *GameConfig, gs *GameState, city string, t IndustryType) (int, *ActionError) {
	def, ok := cfg.City(city)
	if !ok {
		return 0, &ActionError{Code: ErrCodeSlotUnavailable, Message: "unknown city " + city}
	}
	for i, slot := range def.Slots {
		accepts := false
		for _, st := range slot.Types {
			if st == t {
				accepts = true
				break
			}
		}
		if !accepts {
			continue
		}
		if _, occupied := gs.IndustryAt(city, i); occupied {
			continue
		}
		return i, nil
	}
	return 0, &ActionError{Code: ErrCodeSlotUnavailable, Message: "no free slot in " + city + " accepts " + string(t)}
}

// checkEraCompatibility verifies the tile may be built in the current era.
func checkEraCompatibility(era Era, tile TileSpec) *ActionError {
	if era == EraCanal && !tile.CanalEra {
		return &ActionError{Code: ErrCodeEraMismatch, Message: "tile is not buildable in the canal era"}
	}
	if era == EraRail && !tile.RailEra {
		return &ActionError{Code: ErrCodeEraMismatch, Message: "tile is not buildable in the rail era"}
	}
	return nil
}

// validateBuild runs the composable checks in sequence and returns the slot
// index the tile will occupy.
func validateBuild(cfg *GameConfig, gs *GameState, card Card, playerID, city string, tile TileSpec) (int, *ActionError) {
	if err := checkNetworkRequirement(gs, card, playerID, city); err != nil {
		return 0, err
	}
	slot, err := checkSlotAvailability(cfg, gs, city, tile.Type)
	if err != nil {
		return 0, err
	}
	if err := checkEraCompatibility(gs.Era, tile); err != nil {
		return 0, err
	}
	return slot, nil
}
