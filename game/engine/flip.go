package engine

// runFlipPass flips every unflipped coal, iron, or brewery industry whose
// tracked cube count has reached zero and advances the owner's income by the
// tile's fixed advancement, clamped to the income cap. One pass covers all
// players: consumption can empty a connected opponent's tile.
func runFlipPass(gs *GameState) {
	for _, b := range gs.Industries {
		if b.Flipped {
			continue
		}
		if _, tracks := b.Tile.ProducesResource(); !tracks {
			continue
		}
		if b.Cubes() > 0 {
			continue
		}
		b.Flipped = true
		owner, ok := gs.PlayerByID(b.Owner)
		if !ok {
			panic("engine: flipped industry owned by unknown player " + b.Owner)
		}
		owner.AdvanceIncome(b.Tile.IncomeAdvance)
		gs.appendLog(LogFlip, owner.ID, "%s level %d in %s flipped, income advanced by %d to %d",
			b.Tile.Type, b.Tile.Level, b.City, b.Tile.IncomeAdvance, owner.Income)
	}
}
