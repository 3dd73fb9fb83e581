package engine

// Executors run against a scratch clone of the next state. On an ActionError
// the controller discards the scratch, so partial mutation here never leaks;
// on success the scratch becomes the committed state. Missing selections the
// guards were responsible for are programming-invariant violations and panic.

// executeBuild places the lowest remaining tile of the selected industry
// type in the selected city, paying the tile cost plus coal and iron sourced
// per the market rules. Over-produced coal and iron is sold to the market
// most-expensive-tier-first; unsold cubes stay on the tile.
func executeBuild(cfg *GameConfig, gs *GameState) *ActionError {
	p := gs.CurrentPlayer()
	sel := gs.Selection
	if err := checkBuildSelection(sel); err != nil {
		return err
	}
	card, ok := p.HandCard(sel.CardID)
	if !ok {
		panic("engine: build executor with card not in hand")
	}
	tile, ok := p.NextTile(sel.Industry)
	if !ok {
		return &ActionError{Code: ErrCodeNoTile, Message: "no " + string(sel.Industry) + " tiles remain on your mat"}
	}
	slot, err := validateBuild(cfg, gs, card, p.ID, sel.City, tile)
	if err != nil {
		return err
	}

	cost := tile.Cost
	reachable := gs.reachableFrom(sel.City)
	cost += gs.consumeSupply(ResourceCoal, tile.CoalCost, reachable)
	cost += gs.consumeSupply(ResourceIron, tile.IronCost, reachable)
	if p.Money < cost {
		return &ActionError{Code: ErrCodeInsufficientFunds, Message: "building would cost more money than you have"}
	}
	p.Money -= cost
	p.Spent += cost
	p.Mat[sel.Industry] = p.Mat[sel.Industry][1:]

	built := &BuiltIndustry{City: sel.City, Slot: slot, Owner: p.ID, Tile: tile}
	if res, tracks := tile.ProducesResource(); tracks {
		onTile := tile.Produces
		if tile.Capacity > 0 && onTile > tile.Capacity {
			onTile = tile.Capacity
		}
		built.AddCubes(onTile)
		if excess := tile.Produces - onTile; excess > 0 {
			if res == ResourceBeer {
				built.AddCubes(excess)
			} else {
				proceeds, unsold := gs.marketFor(res).SellCubes(excess)
				p.Money += proceeds
				built.AddCubes(unsold)
				if proceeds > 0 {
					gs.appendLog(LogAction, p.ID, "sold %d %s to the market for £%d", excess-unsold, res, proceeds)
				}
			}
		}
	}
	gs.Industries = append(gs.Industries, built)
	discardFromHand(gs, p, card.ID)
	gs.appendLog(LogAction, p.ID, "built %s level %d in %s for £%d", tile.Type, tile.Level, sel.City, cost)
	return nil
}

// executeNetworkSingle builds one link on the selected route. Canal links
// cost money only; rail links additionally consume coal sourced relative to
// the link's endpoints.
func executeNetworkSingle(cfg *GameConfig, gs *GameState) *ActionError {
	p := gs.CurrentPlayer()
	sel := gs.Selection
	if sel.CardID == "" || sel.Link == nil {
		panic("engine: network executor without a selected card and link")
	}
	if err := linkLegal(cfg, gs, p.ID, sel.Link.From, sel.Link.To); err != nil {
		return err
	}

	cost := cfg.CanalLinkCost
	gs.placeLink(p.ID, sel.Link.From, sel.Link.To)
	if gs.Era == EraRail {
		cost = cfg.RailLinkCost
		ends := map[string]bool{sel.Link.From: true, sel.Link.To: true}
		cost += gs.consumeSupply(ResourceCoal, cfg.RailLinkCoal, gs.reachableFromAny(ends))
	}
	if p.Money < cost {
		return &ActionError{Code: ErrCodeInsufficientFunds, Message: "the link would cost more money than you have"}
	}
	p.Money -= cost
	p.Spent += cost
	discardFromHand(gs, p, sel.CardID)
	gs.appendLog(LogAction, p.ID, "built a %s link %s-%s for £%d", gs.Era, sel.Link.From, sel.Link.To, cost)
	return nil
}

// executeNetworkDouble commits the combined rail-era two-link build: both
// links, the coal for each, and one beer, validated together on the scratch
// clone so a late failure rolls the whole action back.
func executeNetworkDouble(cfg *GameConfig, gs *GameState) *ActionError {
	p := gs.CurrentPlayer()
	sel := gs.Selection
	if sel.CardID == "" || sel.Link == nil || sel.SecondLink == nil {
		panic("engine: double network executor without two selected links")
	}

	coalPerLink := cfg.RailDoubleCoal / 2
	cost := cfg.RailDoubleCost
	links := []*LinkChoice{sel.Link, sel.SecondLink}
	ends := make(map[string]bool)
	for _, l := range links {
		if err := linkLegal(cfg, gs, p.ID, l.From, l.To); err != nil {
			return err
		}
		gs.placeLink(p.ID, l.From, l.To)
		ends[l.From] = true
		ends[l.To] = true
		cost += gs.consumeSupply(ResourceCoal, coalPerLink, gs.reachableFromAny(ends))
	}
	if err := gs.consumeBeer(p, cfg.RailDoubleBeer, gs.reachableFromAny(ends), false); err != nil {
		return err
	}
	if p.Money < cost {
		return &ActionError{Code: ErrCodeInsufficientFunds, Message: "the double link would cost more money than you have"}
	}
	p.Money -= cost
	p.Spent += cost
	discardFromHand(gs, p, sel.CardID)
	gs.appendLog(LogAction, p.ID, "built rail links %s-%s and %s-%s for £%d",
		sel.Link.From, sel.Link.To, sel.SecondLink.From, sel.SecondLink.To, cost)
	return nil
}

// executeSell flips one of the player's unflipped industries at the selected
// city. It requires a connected merchant accepting the industry's icon and
// the tile's beer requirement; merchant beer is allowed here and grants the
// merchant's one-shot bonus.
func executeSell(cfg *GameConfig, gs *GameState) *ActionError {
	p := gs.CurrentPlayer()
	sel := gs.Selection
	if sel.CardID == "" || sel.City == "" || sel.Industry == "" {
		panic("engine: sell executor with incomplete selection")
	}

	var target *BuiltIndustry
	for _, b := range gs.Industries {
		if b.City == sel.City && b.Owner == p.ID && b.Tile.Type == sel.Industry && !b.Flipped {
			target = b
			break
		}
	}
	if target == nil {
		return &ActionError{Code: ErrCodeNoTile, Message: "you have no unflipped " + string(sel.Industry) + " in " + sel.City}
	}

	var merchant *Merchant
	for _, m := range gs.Merchants {
		if m.Accepts(sel.Industry) && gs.Connected(sel.City, m.City) {
			merchant = m
			break
		}
	}
	if merchant == nil {
		return &ActionError{Code: ErrCodeNoMerchant, Message: "no connected merchant buys " + string(sel.Industry)}
	}

	if target.Tile.BeerToSell > 0 {
		if err := gs.consumeBeer(p, target.Tile.BeerToSell, gs.reachableFrom(sel.City), true); err != nil {
			return err
		}
	}

	target.Flipped = true
	p.AdvanceIncome(target.Tile.IncomeAdvance)
	discardFromHand(gs, p, sel.CardID)
	gs.appendLog(LogAction, p.ID, "sold %s level %d in %s to %s, income advanced by %d",
		target.Tile.Type, target.Tile.Level, sel.City, merchant.City, target.Tile.IncomeAdvance)
	return nil
}

// executeDevelop removes the lowest tile of each selected industry type from
// the player mat, consuming iron per tile.
func executeDevelop(cfg *GameConfig, gs *GameState) *ActionError {
	p := gs.CurrentPlayer()
	sel := gs.Selection
	if sel.CardID == "" || len(sel.Develop) == 0 {
		panic("engine: develop executor with incomplete selection")
	}

	for _, t := range sel.Develop {
		if _, ok := p.NextTile(t); !ok {
			return &ActionError{Code: ErrCodeNoTile, Message: "no " + string(t) + " tiles remain to develop"}
		}
	}
	cost := gs.consumeSupply(ResourceIron, cfg.DevelopIron*len(sel.Develop), gs.reachableFromAny(gs.Footprint(p.ID)))
	if p.Money < cost {
		return &ActionError{Code: ErrCodeInsufficientFunds, Message: "developing would cost more money than you have"}
	}
	p.Money -= cost
	p.Spent += cost
	for _, t := range sel.Develop {
		removed := p.Mat[t][0]
		p.Mat[t] = p.Mat[t][1:]
		gs.appendLog(LogAction, p.ID, "developed past %s level %d", t, removed.Level)
	}
	discardFromHand(gs, p, sel.CardID)
	return nil
}

// executeScout discards three cards for one wild location and one wild
// industry card from the shared reserves.
func executeScout(gs *GameState) *ActionError {
	p := gs.CurrentPlayer()
	sel := gs.Selection
	if sel.CardID == "" || len(sel.ExtraCards) != 2 {
		panic("engine: scout executor without three selected cards")
	}
	if len(gs.WildLocations) == 0 || len(gs.WildIndustries) == 0 {
		return &ActionError{Code: ErrCodeWildExhausted, Message: "the wild card reserves are exhausted"}
	}

	discardFromHand(gs, p, sel.CardID)
	for _, id := range sel.ExtraCards {
		discardFromHand(gs, p, id)
	}
	p.Hand = append(p.Hand, gs.WildLocations[0], gs.WildIndustries[0])
	gs.WildLocations = gs.WildLocations[1:]
	gs.WildIndustries = gs.WildIndustries[1:]
	gs.appendLog(LogAction, p.ID, "scouted: discarded three cards for two wild cards")
	return nil
}

// executeLoan grants the loan amount and drops income by the loan penalty,
// clamped at the income floor.
func executeLoan(gs *GameState) *ActionError {
	p := gs.CurrentPlayer()
	if gs.Selection.CardID == "" {
		panic("engine: loan executor without a selected card")
	}
	p.Money += LoanAmount
	p.AdvanceIncome(-LoanIncomePenalty)
	discardFromHand(gs, p, gs.Selection.CardID)
	gs.appendLog(LogAction, p.ID, "took a £%d loan, income drops to %d", LoanAmount, p.Income)
	return nil
}

// executePass discards one card without effect. Pass bypasses selection, so
// the lowest-indexed hand card is the forced discard.
func executePass(gs *GameState) *ActionError {
	p := gs.CurrentPlayer()
	if len(p.Hand) > 0 {
		discardFromHand(gs, p, p.Hand[0].ID)
	}
	gs.appendLog(LogAction, p.ID, "passed")
	return nil
}
