package engine

// Connectivity is computed over the union of all players' built links:
// ownership matters for what sits at the endpoints, never for traversal.

// Footprint returns the set of locations in a player's network: cities
// holding one of their industries, union the endpoints of their links.
func (gs *GameState) Footprint(playerID string) map[string]bool {
	out := make(map[string]bool)
	for _, b := range gs.Industries {
		if b.Owner == playerID {
			out[b.City] = true
		}
	}
	for _, l := range gs.Links {
		if l.Owner == playerID {
			out[l.A] = true
			out[l.B] = true
		}
	}
	return out
}

// HasNoPresence reports the first-build exception: zero industries and zero
// links on the board.
func (gs *GameState) HasNoPresence(playerID string) bool {
	for _, b := range gs.Industries {
		if b.Owner == playerID {
			return false
		}
	}
	for _, l := range gs.Links {
		if l.Owner == playerID {
			return false
		}
	}
	return true
}

// ConnectionDistance returns the number of links on the shortest path
// between two locations over all built links, or -1 when unreachable.
// A location is at distance 0 from itself.
func (gs *GameState) ConnectionDistance(from, to string) int {
	if from == to {
		return 0
	}
	adj := make(map[string][]string, len(gs.Links)*2)
	for _, l := range gs.Links {
		adj[l.A] = append(adj[l.A], l.B)
		adj[l.B] = append(adj[l.B], l.A)
	}
	dist := map[string]int{from: 0}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			if next == to {
				return dist[next]
			}
			queue = append(queue, next)
		}
	}
	return -1
}

// Connected reports whether two locations are reachable from each other via
// any built link path, regardless of link owner.
func (gs *GameState) Connected(from, to string) bool {
	return gs.ConnectionDistance(from, to) >= 0
}

// linkLegal checks a proposed link for the current player and era: the route
// must exist on the board and be open in the current era, the pair must be
// unoccupied, and one endpoint must touch the player's footprint unless the
// first-build exception applies.
func linkLegal(cfg *GameConfig, gs *GameState, playerID, from, to string) *ActionError {
	route, ok := cfg.RouteBetween(from, to)
	if !ok {
		return &ActionError{Code: ErrCodeIllegalLink, Message: "no route exists between " + from + " and " + to}
	}
	if gs.Era == EraCanal && !route.Canal {
		return &ActionError{Code: ErrCodeEraMismatch, Message: "route " + from + "-" + to + " has no canal"}
	}
	if gs.Era == EraRail && !route.Rail {
		return &ActionError{Code: ErrCodeEraMismatch, Message: "route " + from + "-" + to + " has no rail bed"}
	}
	if _, taken := gs.LinkBetween(from, to); taken {
		return &ActionError{Code: ErrCodeIllegalLink, Message: "a link already occupies " + from + "-" + to}
	}
	if gs.HasNoPresence(playerID) {
		return nil
	}
	fp := gs.Footprint(playerID)
	if !fp[from] && !fp[to] {
		return &ActionError{Code: ErrCodeNotInNetwork, Message: "neither endpoint touches your network"}
	}
	return nil
}

// placeLink appends a built link on the normalized pair.
func (gs *GameState) placeLink(playerID, from, to string) {
	a, b := NormalizedPair(from, to)
	gs.Links = append(gs.Links, Link{A: a, B: b, Kind: gs.Era, Owner: playerID})
}
