package engine

import (
	"errors"
	"fmt"
)

// Slot is one build space in a city. A slot accepts one or more industry
// types; filling it with any one type blocks the rest.
type Slot struct {
	Types []IndustryType `json:"types"`
}

// City is a board location offering build slots.
type City struct {
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// Route is a candidate connection printed on the board. A link may be built
// on it only in eras for which the route is flagged.
type Route struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Canal bool   `json:"canal"`
	Rail  bool   `json:"rail"`
}

// TileCount is a tile spec together with how many copies each player's mat
// starts with.
type TileCount struct {
	TileSpec
	Count int `json:"count"`
}

// CardSpec describes one deck entry. Count copies enter the draw pile when
// the session has at least MinPlayers players.
type CardSpec struct {
	Kind       CardKind       `json:"kind"`
	City       string         `json:"city,omitempty"`
	Industries []IndustryType `json:"industries,omitempty"`
	Count      int            `json:"count"`
	MinPlayers int            `json:"min_players,omitempty"`
}

// GameConfig defines a complete board: cities, routes, merchants, markets,
// the per-player tile catalog, and the card deck. Configs are loaded from
// JSON files by game/config or built in code by DefaultGameConfig.
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	HandSize       int `json:"hand_size"`
	StartingMoney  int `json:"starting_money"`
	StartingIncome int `json:"starting_income"`

	CanalLinkCost  int `json:"canal_link_cost"`
	RailLinkCost   int `json:"rail_link_cost"`
	RailLinkCoal   int `json:"rail_link_coal"`
	RailDoubleCost int `json:"rail_double_cost"`
	RailDoubleCoal int `json:"rail_double_coal"`
	RailDoubleBeer int `json:"rail_double_beer"`
	DevelopIron    int `json:"develop_iron_per_tile"`

	Cities    []City     `json:"cities"`
	Routes    []Route    `json:"routes"`
	Merchants []Merchant `json:"merchants"`

	CoalMarket []MarketLevel `json:"coal_market"`
	IronMarket []MarketLevel `json:"iron_market"`

	Tiles map[IndustryType][]TileCount `json:"tiles"`
	Deck  []CardSpec                   `json:"deck"`

	WildLocationCards int `json:"wild_location_cards"`
	WildIndustryCards int `json:"wild_industry_cards"`
}

// City looks up a city definition by name.
func (c *GameConfig) City(name string) (City, bool) {
	for _, city := range c.Cities {
		if city.Name == name {
			return city, true
		}
	}
	return City{}, false
}

// IsMerchantCity reports whether the named location is an off-board merchant.
func (c *GameConfig) IsMerchantCity(name string) bool {
	for _, m := range c.Merchants {
		if m.City == name {
			return true
		}
	}
	return false
}

// RouteBetween finds the printed route on the unordered pair, if any.
func (c *GameConfig) RouteBetween(from, to string) (Route, bool) {
	a, b := NormalizedPair(from, to)
	for _, r := range c.Routes {
		ra, rb := NormalizedPair(r.A, r.B)
		if ra == a && rb == b {
			return r, true
		}
	}
	return Route{}, false
}

func (c *GameConfig) knownLocation(name string) bool {
	if _, ok := c.City(name); ok {
		return true
	}
	return c.IsMerchantCity(name)
}

var knownIndustries = map[IndustryType]bool{
	CottonMill: true,
	CoalMine:   true,
	IronWorks:  true,
	Brewery:    true,
	Pottery:    true,
}

// ValidateGameConfig checks a board definition for structural consistency.
func ValidateGameConfig(cfg *GameConfig) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if cfg.Name == "" {
		return errors.New("config name is required")
	}
	if cfg.HandSize <= 0 {
		return errors.New("hand_size must be positive")
	}
	if len(cfg.Cities) == 0 {
		return errors.New("at least one city is required")
	}
	for _, city := range cfg.Cities {
		if len(city.Slots) == 0 {
			return fmt.Errorf("city %s has no slots", city.Name)
		}
		for i, slot := range city.Slots {
			if len(slot.Types) == 0 {
				return fmt.Errorf("city %s slot %d accepts no industry types", city.Name, i)
			}
			for _, t := range slot.Types {
				if !knownIndustries[t] {
					return fmt.Errorf("city %s slot %d: unknown industry type %q", city.Name, i, t)
				}
			}
		}
	}
	for _, r := range cfg.Routes {
		if !cfg.knownLocation(r.A) || !cfg.knownLocation(r.B) {
			return fmt.Errorf("route %s-%s references an unknown location", r.A, r.B)
		}
		if r.A == r.B {
			return fmt.Errorf("route %s-%s connects a location to itself", r.A, r.B)
		}
		if !r.Canal && !r.Rail {
			return fmt.Errorf("route %s-%s is available in no era", r.A, r.B)
		}
	}
	for _, m := range cfg.Merchants {
		if len(m.Icons) == 0 {
			return fmt.Errorf("merchant %s accepts no industry icons", m.City)
		}
	}
	if err := validateMarket("coal", cfg.CoalMarket); err != nil {
		return err
	}
	if err := validateMarket("iron", cfg.IronMarket); err != nil {
		return err
	}
	if len(cfg.Tiles) == 0 {
		return errors.New("tile catalog is empty")
	}
	for t, row := range cfg.Tiles {
		if !knownIndustries[t] {
			return fmt.Errorf("tile catalog: unknown industry type %q", t)
		}
		prev := 0
		for _, tc := range row {
			if tc.Type != t {
				return fmt.Errorf("tile catalog: %s row contains a %s tile", t, tc.Type)
			}
			if tc.Level < prev {
				return fmt.Errorf("tile catalog: %s row is not ordered by level", t)
			}
			if !tc.CanalEra && !tc.RailEra {
				return fmt.Errorf("tile catalog: %s level %d is eligible in no era", t, tc.Level)
			}
			if tc.Count <= 0 {
				return fmt.Errorf("tile catalog: %s level %d has non-positive count", t, tc.Level)
			}
			prev = tc.Level
		}
	}
	if len(cfg.Deck) == 0 {
		return errors.New("deck is empty")
	}
	for _, spec := range cfg.Deck {
		switch spec.Kind {
		case CardLocation:
			if _, ok := cfg.City(spec.City); !ok {
				return fmt.Errorf("deck: location card references unknown city %q", spec.City)
			}
		case CardIndustry:
			if len(spec.Industries) == 0 || len(spec.Industries) > 2 {
				return fmt.Errorf("deck: industry card must reference 1-2 industry types, got %d", len(spec.Industries))
			}
			for _, t := range spec.Industries {
				if !knownIndustries[t] {
					return fmt.Errorf("deck: industry card references unknown type %q", t)
				}
			}
		default:
			return fmt.Errorf("deck: wild cards are not deck entries (kind %q)", spec.Kind)
		}
		if spec.Count <= 0 {
			return fmt.Errorf("deck: entry with non-positive count")
		}
	}
	return nil
}

// validateMarket checks that a market ladder is ascending in price and ends
// in exactly one unbounded fallback tier.
func validateMarket(name string, levels []MarketLevel) error {
	if len(levels) < 2 {
		return fmt.Errorf("%s market needs at least one bounded tier and a fallback tier", name)
	}
	unbounded := 0
	prevPrice := 0
	for i, lvl := range levels {
		if lvl.Price <= prevPrice {
			return fmt.Errorf("%s market prices must be strictly ascending", name)
		}
		prevPrice = lvl.Price
		if lvl.Unbounded {
			unbounded++
			if i != len(levels)-1 {
				return fmt.Errorf("%s market: the unbounded tier must be the most expensive", name)
			}
			continue
		}
		if lvl.Max <= 0 {
			return fmt.Errorf("%s market: bounded tier at £%d has non-positive capacity", name, lvl.Price)
		}
		if lvl.Cubes < 0 || lvl.Cubes > lvl.Max {
			return fmt.Errorf("%s market: tier at £%d holds %d cubes with capacity %d", name, lvl.Price, lvl.Cubes, lvl.Max)
		}
	}
	if unbounded != 1 {
		return fmt.Errorf("%s market must have exactly one unbounded fallback tier", name)
	}
	return nil
}
