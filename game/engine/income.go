package engine

// runIncomeResolver settles end-of-round income for every player
// independently. Positive income is collected in full. Negative income is
// paid from cash first; any shortfall liquidates the player's industries one
// at a time, in board order, at half cost rounded down, and whatever debt
// remains after the board is exhausted converts one-for-one into victory
// point loss, floored at zero.
func runIncomeResolver(gs *GameState) {
	for _, p := range gs.Players {
		if p.Income >= 0 {
			p.Money += p.Income
			gs.appendLog(LogIncome, p.ID, "collected £%d", p.Income)
			continue
		}

		owed := -p.Income
		paid := owed
		if paid > p.Money {
			paid = p.Money
		}
		p.Money -= paid
		owed -= paid
		gs.appendLog(LogIncome, p.ID, "owed £%d upkeep, paid £%d in cash", -p.Income, paid)

		if owed > 0 {
			owed = liquidateIndustries(gs, p, owed)
		}
		if owed > 0 {
			p.LoseVictoryPoints(owed)
			gs.appendLog(LogIncome, p.ID, "unpaid shortfall of £%d converted to victory point loss", owed)
		}
	}
}

// liquidateIndustries sells the player's industries in the order they sit in
// the board array at floor(cost/2) each until the shortfall is covered or
// the industries run out. Sale value beyond the remaining debt is kept as
// cash. Returns the remaining shortfall.
func liquidateIndustries(gs *GameState, p *Player, owed int) int {
	kept := gs.Industries[:0]
	for _, b := range gs.Industries {
		if owed == 0 || b.Owner != p.ID {
			kept = append(kept, b)
			continue
		}
		sale := b.Tile.Cost / 2
		if sale >= owed {
			p.Money += sale - owed
			owed = 0
		} else {
			owed -= sale
		}
		gs.appendLog(LogLiquidation, p.ID, "sold %s level %d in %s for £%d to cover upkeep",
			b.Tile.Type, b.Tile.Level, b.City, sale)
	}
	gs.Industries = kept
	return owed
}
