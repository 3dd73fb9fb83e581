package engine

// Buy removes n cubes from the market, draining the cheapest non-empty
// bounded tier first and falling back to the unbounded tier, which always
// supplies at its fixed price. Returns the total purchase cost.
func (m *Market) Buy(n int) int {
	total := 0
	for i := range m.Levels {
		lvl := &m.Levels[i]
		if lvl.Unbounded {
			total += n * lvl.Price
			return total
		}
		for lvl.Cubes > 0 && n > 0 {
			lvl.Cubes--
			n--
			total += lvl.Price
		}
		if n == 0 {
			return total
		}
	}
	return total
}

// SellCubes places n cubes into the market, filling the most expensive
// non-full bounded tier first. The fallback tier is purchase-only and is
// skipped. Returns the sale proceeds and the count of cubes that found no
// room; unsold cubes stay on the producing tile.
func (m *Market) SellCubes(n int) (proceeds, unsold int) {
	for i := len(m.Levels) - 1; i >= 0 && n > 0; i-- {
		lvl := &m.Levels[i]
		if lvl.Unbounded {
			continue
		}
		for lvl.Cubes < lvl.Max && n > 0 {
			lvl.Cubes++
			n--
			proceeds += lvl.Price
		}
	}
	return proceeds, n
}

// CheapestAvailable returns the price the next cube would cost.
func (m *Market) CheapestAvailable() int {
	for _, lvl := range m.Levels {
		if lvl.Unbounded || lvl.Cubes > 0 {
			return lvl.Price
		}
	}
	panic("engine: market has no fallback tier")
}

// BoundedCubes returns the cube count across bounded tiers.
func (m *Market) BoundedCubes() int {
	total := 0
	for _, lvl := range m.Levels {
		if !lvl.Unbounded {
			total += lvl.Cubes
		}
	}
	return total
}

// marketFor returns the market trading the given resource.
func (gs *GameState) marketFor(r Resource) *Market {
	switch r {
	case ResourceCoal:
		return &gs.Coal
	case ResourceIron:
		return &gs.Iron
	}
	panic("engine: no market trades " + string(r))
}

// supplySources returns the ranked free-consumption candidates for coal or
// iron demanded at locations satisfying reachable: unflipped same-type
// industries with cubes remaining, any owner, in board order.
func (gs *GameState) supplySources(t IndustryType, reachable func(city string) bool) []*BuiltIndustry {
	var out []*BuiltIndustry
	for _, b := range gs.Industries {
		if b.Tile.Type == t && !b.Flipped && b.Cubes() > 0 && reachable(b.City) {
			out = append(out, b)
		}
	}
	return out
}

// consumeSupply takes n cubes of coal or iron for a demand whose
// connectivity is defined by reachable. Free connected production is drained
// first, then the market. Returns the money owed to the market.
func (gs *GameState) consumeSupply(r Resource, n int, reachable func(city string) bool) int {
	var t IndustryType
	if r == ResourceCoal {
		t = CoalMine
	} else {
		t = IronWorks
	}
	for _, src := range gs.supplySources(t, reachable) {
		for src.Cubes() > 0 && n > 0 {
			src.AddCubes(-1)
			n--
		}
		if n == 0 {
			return 0
		}
	}
	if n == 0 {
		return 0
	}
	return gs.marketFor(r).Buy(n)
}

// reachableFrom builds a connectivity predicate anchored at a single city.
func (gs *GameState) reachableFrom(city string) func(string) bool {
	return func(other string) bool { return gs.Connected(city, other) }
}

// reachableFromAny anchors connectivity at any of the given cities. Used for
// demands without a single board location (develop, double link builds).
func (gs *GameState) reachableFromAny(cities map[string]bool) func(string) bool {
	return func(other string) bool {
		for city := range cities {
			if gs.Connected(city, other) {
				return true
			}
		}
		return false
	}
}

// beerSource is one ranked candidate for a beer requirement.
type beerSource struct {
	Industry *BuiltIndustry // own or connected opponent brewery
	Merchant *Merchant      // one-shot merchant token; sell actions only
}

// beerSources lists beer candidates for the given player in priority order:
// own unflipped breweries with barrels (no connectivity requirement), then
// connected opponent breweries, then (only when allowMerchant) one-shot
// tokens at connected merchants.
func (gs *GameState) beerSources(playerID string, reachable func(city string) bool, allowMerchant bool) []beerSource {
	var out []beerSource
	for _, b := range gs.Industries {
		if b.Tile.Type == Brewery && !b.Flipped && b.Beer > 0 && b.Owner == playerID {
			out = append(out, beerSource{Industry: b})
		}
	}
	for _, b := range gs.Industries {
		if b.Tile.Type == Brewery && !b.Flipped && b.Beer > 0 && b.Owner != playerID && reachable(b.City) {
			out = append(out, beerSource{Industry: b})
		}
	}
	if allowMerchant {
		for _, m := range gs.Merchants {
			if m.HasBeerToken() && reachable(m.City) {
				out = append(out, beerSource{Merchant: m})
			}
		}
	}
	return out
}

// hasBeerSource reports whether any beer candidate exists without consuming.
func (gs *GameState) hasBeerSource(playerID string, reachable func(city string) bool, allowMerchant bool) bool {
	return len(gs.beerSources(playerID, reachable, allowMerchant)) > 0
}

// consumeBeer satisfies an n-barrel requirement following the priority
// order. Consuming a merchant token additionally grants the merchant's bonus
// to the player. Fails without mutation if the sources cannot cover n; the
// caller works on a scratch clone, so partial drains never leak.
func (gs *GameState) consumeBeer(p *Player, n int, reachable func(city string) bool, allowMerchant bool) *ActionError {
	for _, src := range gs.beerSources(p.ID, reachable, allowMerchant) {
		if n == 0 {
			break
		}
		if src.Industry != nil {
			for src.Industry.Beer > 0 && n > 0 {
				src.Industry.Beer--
				n--
			}
			continue
		}
		src.Merchant.BeerSpent = true
		n--
		gs.grantMerchantBonus(p, src.Merchant)
	}
	if n > 0 {
		return &ActionError{Code: ErrCodeInsufficientBeer, Message: "no beer source covers the requirement"}
	}
	return nil
}

// grantMerchantBonus applies a merchant's one-shot bonus to the player.
func (gs *GameState) grantMerchantBonus(p *Player, m *Merchant) {
	switch m.Bonus {
	case BonusMoney:
		p.Money += m.BonusValue
		gs.appendLog(LogAction, p.ID, "%s bonus: gained £%d", m.City, m.BonusValue)
	case BonusIncome:
		p.AdvanceIncome(m.BonusValue)
		gs.appendLog(LogAction, p.ID, "%s bonus: income advanced by %d", m.City, m.BonusValue)
	case BonusPoints:
		p.VictoryPoints += m.BonusValue
		gs.appendLog(LogAction, p.ID, "%s bonus: gained %d victory points", m.City, m.BonusValue)
	case BonusDevelop:
		if t, level, ok := removeLowestTile(p); ok {
			gs.appendLog(LogAction, p.ID, "%s bonus: removed a level-%d %s tile", m.City, level, t)
		}
	}
}

// removeLowestTile removes the lowest-level tile across the player's mat,
// scanning industry rows in a fixed order. Returns the removed type and level.
func removeLowestTile(p *Player) (IndustryType, int, bool) {
	order := []IndustryType{CottonMill, CoalMine, IronWorks, Brewery, Pottery}
	best := IndustryType("")
	bestLevel := 0
	for _, t := range order {
		row := p.Mat[t]
		if len(row) == 0 {
			continue
		}
		if best == "" || row[0].Level < bestLevel {
			best = t
			bestLevel = row[0].Level
		}
	}
	if best == "" {
		return "", 0, false
	}
	p.Mat[best] = p.Mat[best][1:]
	return best, bestLevel, true
}
