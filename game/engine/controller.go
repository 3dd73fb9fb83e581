package engine

import (
	"fmt"
	"math/rand"
)

// Transition is the total transition function over (GameState, Intent). It
// returns the successor state, or nil when the intent is guard-rejected:
// structurally impossible given the current phase, silently ignored with no
// log and no mutation. Rule violations detected inside an executor return a
// successor that differs only by an error log entry and ErrorContext; the
// action is not consumed.
func Transition(cfg *GameConfig, gs *GameState, rng *rand.Rand, in Intent) *GameState {
	switch gs.Phase.State {
	case PhaseSetup:
		start, ok := in.(StartGame)
		if !ok {
			return nil
		}
		if len(start.Players) < MinPlayers || len(start.Players) > MaxPlayers {
			return nil
		}
		return setupGame(cfg, rng, start)
	case PhasePlaying:
		return transitionPlaying(cfg, gs, rng, in)
	case PhaseGameOver:
		return nil
	}
	panic(fmt.Sprintf("engine: transition from unknown phase %q", gs.Phase.State))
}

// setupGame creates the players, mats, markets, and shuffled deck, deals the
// opening hands, and enters the canal era at round 1 with one action.
func setupGame(cfg *GameConfig, rng *rand.Rand, start StartGame) *GameState {
	gs := &GameState{
		Phase: choosingActionPhase(),
		Era:   EraCanal,
		Round: 1,
		Coal:  Market{Resource: ResourceCoal, Levels: append([]MarketLevel(nil), cfg.CoalMarket...)},
		Iron:  Market{Resource: ResourceIron, Levels: append([]MarketLevel(nil), cfg.IronMarket...)},
	}

	for i, name := range start.Players {
		p := &Player{
			ID:     fmt.Sprintf("player-%d", i+1),
			Name:   name,
			Money:  cfg.StartingMoney,
			Income: cfg.StartingIncome,
			Mat:    make(map[IndustryType][]TileSpec),
		}
		for t, row := range cfg.Tiles {
			for _, tc := range row {
				for n := 0; n < tc.Count; n++ {
					p.Mat[t] = append(p.Mat[t], tc.TileSpec)
				}
			}
		}
		gs.Players = append(gs.Players, p)
	}

	for _, m := range cfg.Merchants {
		cm := m
		cm.Icons = append([]IndustryType(nil), m.Icons...)
		gs.Merchants = append(gs.Merchants, &cm)
	}

	gs.Draw = buildDeck(cfg, len(gs.Players))
	shuffleCards(rng, gs.Draw)
	gs.WildLocations, gs.WildIndustries = buildWildPiles(cfg)
	for _, p := range gs.Players {
		refillHand(cfg, gs, p)
	}

	gs.ActionsRemaining = gs.actionsPerTurn()
	gs.appendLog(LogInfo, "", "game started on %s with %d players", cfg.Name, len(gs.Players))
	return gs
}

// transitionPlaying handles every intent inside the playing phase.
func transitionPlaying(cfg *GameConfig, gs *GameState, rng *rand.Rand, in Intent) *GameState {
	next := gs.Clone()
	next.ErrorContext = nil
	p := next.CurrentPlayer()
	action := next.Phase.Action
	step := next.Phase.Step

	if _, ok := in.(Cancel); ok {
		if step == StepChoosingAction {
			return nil
		}
		return cancelTransition(next, action, step)
	}

	switch step {
	case StepChoosingAction:
		pick, ok := in.(SelectAction)
		if !ok {
			return nil
		}
		switch pick.Kind {
		case ActionPass:
			next.Phase = actionPhase(ActionPass, StepConfirming)
			if err := executePass(next); err != nil {
				panic("engine: pass executor failed: " + err.Message)
			}
			finishAction(cfg, next, rng)
			return next
		case ActionBuild, ActionDevelop, ActionSell, ActionScout, ActionLoan, ActionNetwork:
			next.Selection = Selection{}
			next.Phase = actionPhase(pick.Kind, StepSelectingCard)
			return next
		}
		return nil

	case StepSelectingCard:
		pick, ok := in.(SelectCard)
		if !ok {
			return nil
		}
		if _, held := p.HandCard(pick.CardID); !held {
			return nil
		}
		next.Selection.CardID = pick.CardID
		switch action {
		case ActionBuild, ActionSell:
			next.Phase = actionPhase(action, StepSelectingLocation)
		case ActionDevelop, ActionScout:
			next.Phase = actionPhase(action, StepSelectingCards)
		case ActionLoan:
			next.Phase = actionPhase(action, StepConfirming)
		case ActionNetwork:
			next.Phase = actionPhase(action, StepSelectingLink)
		default:
			panic("engine: selecting a card with no active action")
		}
		return next

	case StepSelectingLocation:
		pick, ok := in.(SelectLocation)
		if !ok {
			return nil
		}
		if _, known := cfg.City(pick.City); !known {
			return nil
		}
		if action == ActionBuild {
			card, held := p.HandCard(next.Selection.CardID)
			if !held {
				panic("engine: selected card left the hand mid-action")
			}
			if !card.Matches(pick.City) {
				return nil
			}
		}
		next.Selection.City = pick.City
		next.Phase = actionPhase(action, StepSelectingIndustry)
		return next

	case StepSelectingIndustry:
		pick, ok := in.(SelectIndustry)
		if !ok {
			return nil
		}
		if !knownIndustries[pick.Type] {
			return nil
		}
		if action == ActionBuild {
			card, held := p.HandCard(next.Selection.CardID)
			if !held {
				panic("engine: selected card left the hand mid-action")
			}
			if card.Kind == CardIndustry && !cardReferences(card, pick.Type) {
				return nil
			}
		}
		next.Selection.Industry = pick.Type
		next.Phase = actionPhase(action, StepConfirming)
		return next

	case StepSelectingLink:
		pick, ok := in.(SelectLink)
		if !ok {
			return nil
		}
		if _, known := cfg.RouteBetween(pick.From, pick.To); !known {
			return nil
		}
		next.Selection.Link = &LinkChoice{From: pick.From, To: pick.To}
		next.Phase = actionPhase(action, StepConfirming)
		return next

	case StepSelectingCards:
		switch action {
		case ActionDevelop:
			pick, ok := in.(SelectDevelopTiles)
			if !ok {
				return nil
			}
			if len(pick.Types) == 0 || len(pick.Types) > 2 {
				return nil
			}
			for _, t := range pick.Types {
				if !knownIndustries[t] {
					return nil
				}
			}
			next.Selection.Develop = append([]IndustryType(nil), pick.Types...)
			next.Phase = actionPhase(action, StepConfirming)
			return next
		case ActionScout:
			pick, ok := in.(SelectCard)
			if !ok {
				return nil
			}
			if pick.CardID == next.Selection.CardID {
				return nil
			}
			if _, held := p.HandCard(pick.CardID); !held {
				return nil
			}
			for i, id := range next.Selection.ExtraCards {
				if id == pick.CardID {
					next.Selection.ExtraCards = append(next.Selection.ExtraCards[:i], next.Selection.ExtraCards[i+1:]...)
					return next
				}
			}
			next.Selection.ExtraCards = append(next.Selection.ExtraCards, pick.CardID)
			if len(next.Selection.ExtraCards) == 2 {
				next.Phase = actionPhase(action, StepConfirming)
			}
			return next
		}
		return nil

	case StepConfirming:
		if _, ok := in.(ChooseDoubleLinkBuild); ok {
			if action != ActionNetwork || next.Era != EraRail || next.Selection.Link == nil {
				return nil
			}
			ends := map[string]bool{next.Selection.Link.From: true, next.Selection.Link.To: true}
			if !next.hasBeerSource(p.ID, next.reachableFromAny(ends), false) {
				return nil
			}
			next.Phase = actionPhase(action, StepSelectingSecondLink)
			return next
		}
		if _, ok := in.(Confirm); !ok {
			return nil
		}
		if !selectionComplete(action, next.Selection) {
			return nil
		}
		return commitExecutor(cfg, next, rng, action)

	case StepSelectingSecondLink:
		pick, ok := in.(SelectSecondLink)
		if !ok {
			return nil
		}
		if _, known := cfg.RouteBetween(pick.From, pick.To); !known {
			return nil
		}
		next.Selection.SecondLink = &LinkChoice{From: pick.From, To: pick.To}
		next.Phase = actionPhase(action, StepConfirmingDouble)
		return next

	case StepConfirmingDouble:
		switch in.(type) {
		case ExecuteDoubleNetworkAction, Confirm:
			if next.Selection.Link == nil || next.Selection.SecondLink == nil {
				return nil
			}
			return commitExecutor(cfg, next, rng, action)
		}
		return nil
	}

	panic(fmt.Sprintf("engine: transition from unknown step %q", step))
}

// cardReferences reports whether an industry card lists the given type.
func cardReferences(card Card, t IndustryType) bool {
	for _, ref := range card.Industries {
		if ref == t {
			return true
		}
	}
	return false
}

// selectionComplete is the confirm guard: every field the bound executor
// needs must be selected. Anything missing means the confirm is structurally
// impossible and is silently ignored.
func selectionComplete(action ActionKind, sel Selection) bool {
	if sel.CardID == "" {
		return false
	}
	switch action {
	case ActionBuild, ActionSell:
		return sel.City != "" && sel.Industry != ""
	case ActionDevelop:
		return len(sel.Develop) > 0
	case ActionScout:
		return len(sel.ExtraCards) == 2
	case ActionLoan:
		return true
	case ActionNetwork:
		return sel.Link != nil
	}
	return false
}

// commitExecutor runs the action's executor against a scratch clone. On an
// ActionError the scratch is discarded and the returned state carries only
// the error log entry and ErrorContext; the phase, selections, and action
// count are untouched so the player may retry or cancel. On success the
// scratch becomes the next state and the action completes.
func commitExecutor(cfg *GameConfig, next *GameState, rng *rand.Rand, action ActionKind) *GameState {
	scratch := next.Clone()
	var err *ActionError
	switch {
	case action == ActionBuild:
		err = executeBuild(cfg, scratch)
	case action == ActionDevelop:
		err = executeDevelop(cfg, scratch)
	case action == ActionSell:
		err = executeSell(cfg, scratch)
	case action == ActionScout:
		err = executeScout(scratch)
	case action == ActionLoan:
		err = executeLoan(scratch)
	case action == ActionNetwork && next.Phase.Step == StepConfirmingDouble:
		err = executeNetworkDouble(cfg, scratch)
	case action == ActionNetwork:
		err = executeNetworkSingle(cfg, scratch)
	default:
		panic(fmt.Sprintf("engine: confirm with unknown action %q", action))
	}
	if err != nil {
		next.ErrorContext = err
		next.appendLog(LogError, next.CurrentPlayer().ID, "%s failed: %s", action, err.Message)
		return next
	}
	finishAction(cfg, scratch, rng)
	return scratch
}

// cancelTransition steps back to the previous selection sub-state,
// discarding only the in-flight selection fields of the abandoned step.
func cancelTransition(next *GameState, action ActionKind, step ActionStep) *GameState {
	prev := previousStep(action, step)
	switch prev {
	case StepChoosingAction:
		next.Selection = Selection{}
		next.Phase = choosingActionPhase()
		return next
	case StepSelectingCard:
		next.Selection = Selection{}
	case StepSelectingLocation:
		next.Selection.City = ""
		next.Selection.Industry = ""
	case StepSelectingIndustry:
		next.Selection.Industry = ""
	case StepSelectingLink:
		next.Selection.Link = nil
		next.Selection.SecondLink = nil
	case StepSelectingCards:
		next.Selection.Develop = nil
		next.Selection.ExtraCards = nil
	case StepConfirming, StepSelectingSecondLink:
		next.Selection.SecondLink = nil
	}
	next.Phase = actionPhase(action, prev)
	return next
}

// finishAction is the actionComplete housekeeping state: decrement the
// action count, clear selections, refill the hand from the draw pile, run
// the flip pass, and either return control to the action chooser or advance
// to the next player.
func finishAction(cfg *GameConfig, gs *GameState, rng *rand.Rand) {
	p := gs.CurrentPlayer()
	gs.ActionsRemaining--
	gs.Selection = Selection{}
	refillHand(cfg, gs, p)
	runFlipPass(gs)

	if gs.ActionsRemaining > 0 {
		gs.Phase = choosingActionPhase()
		return
	}
	advanceTurn(cfg, gs, rng)
}

// advanceTurn moves to the next seat; wrapping to seat 0 completes the
// round: reseat by spend, settle income, reset the ledger, bump the round,
// and handle the era boundary.
func advanceTurn(cfg *GameConfig, gs *GameState, rng *rand.Rand) {
	gs.Current = (gs.Current + 1) % len(gs.Players)
	if gs.Current == 0 {
		closeRound(cfg, gs, rng)
		if gs.Phase.State == PhaseGameOver {
			return
		}
	}
	gs.ActionsRemaining = gs.actionsPerTurn()
	gs.Phase = choosingActionPhase()
}

// closeRound runs the round-boundary sequence. The income resolver is
// skipped only on the final round of the game, i.e. the rail-era boundary.
func closeRound(cfg *GameConfig, gs *GameState, rng *rand.Rand) {
	boundary := gs.eraBoundaryReached()
	final := boundary && gs.Era == EraRail

	reseatPlayers(gs)
	if !final {
		runIncomeResolver(gs)
	}
	resetSpendLedger(gs)
	gs.Round++

	if boundary {
		if gs.Era == EraCanal {
			endCanalEra(cfg, gs, rng)
		} else {
			endRailEra(gs)
		}
	}
}
