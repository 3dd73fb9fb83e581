package engine

import (
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	if err := ValidateGameConfig(DefaultGameConfig()); err != nil {
		t.Fatalf("default board failed validation: %v", err)
	}
}

func TestValidateGameConfigRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GameConfig)
		want   string
	}{
		{"missing name", func(c *GameConfig) { c.Name = "" }, "name is required"},
		{"zero hand size", func(c *GameConfig) { c.HandSize = 0 }, "hand_size"},
		{"slotless city", func(c *GameConfig) { c.Cities[0].Slots = nil }, "has no slots"},
		{"unknown slot type", func(c *GameConfig) {
			c.Cities[0].Slots[0].Types = []IndustryType{"shipyard"}
		}, "unknown industry type"},
		{"dangling route", func(c *GameConfig) {
			c.Routes[0].A = "Atlantis"
		}, "unknown location"},
		{"eraless route", func(c *GameConfig) {
			c.Routes[0].Canal = false
			c.Routes[0].Rail = false
		}, "no era"},
		{"iconless merchant", func(c *GameConfig) { c.Merchants[0].Icons = nil }, "no industry icons"},
		{"descending market", func(c *GameConfig) {
			c.CoalMarket[1].Price = c.CoalMarket[0].Price
		}, "strictly ascending"},
		{"unbounded tier not last", func(c *GameConfig) {
			c.IronMarket[0].Unbounded = true
		}, "most expensive"},
		{"no fallback tier", func(c *GameConfig) {
			c.CoalMarket[len(c.CoalMarket)-1].Unbounded = false
			c.CoalMarket[len(c.CoalMarket)-1].Max = 2
		}, "exactly one unbounded"},
		{"empty deck", func(c *GameConfig) { c.Deck = nil }, "deck is empty"},
		{"location card to nowhere", func(c *GameConfig) {
			c.Deck[0] = CardSpec{Kind: CardLocation, City: "Atlantis", Count: 1}
		}, "unknown city"},
		{"overloaded industry card", func(c *GameConfig) {
			c.Deck[0] = CardSpec{Kind: CardIndustry, Industries: []IndustryType{CoalMine, IronWorks, Brewery}, Count: 1}
		}, "1-2 industry types"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(cfg)
			err := ValidateGameConfig(cfg)
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestRouteBetweenIsUnordered(t *testing.T) {
	cfg := DefaultGameConfig()
	if _, ok := cfg.RouteBetween("Ironford", "Coalbrook"); !ok {
		t.Error("expected the reversed pair to resolve")
	}
	if _, ok := cfg.RouteBetween("Coalbrook", "Coalbrook"); ok {
		t.Error("expected no self route")
	}
}
