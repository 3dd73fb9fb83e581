package engine

// DefaultGameConfig builds the built-in board in code so the engine and its
// tests never depend on config files. The JSON configs under configs/ mirror
// this layout.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:        "Ironshire",
		Description: "The built-in two-era board: eight towns, two ports, and a tangle of waterways.",

		HandSize:       8,
		StartingMoney:  17,
		StartingIncome: 0,

		CanalLinkCost:  3,
		RailLinkCost:   5,
		RailLinkCoal:   1,
		RailDoubleCost: 15,
		RailDoubleCoal: 2,
		RailDoubleBeer: 1,
		DevelopIron:    1,

		Cities: []City{
			{Name: "Coalbrook", Slots: []Slot{{Types: []IndustryType{CoalMine}}, {Types: []IndustryType{CoalMine, IronWorks}}}},
			{Name: "Ironford", Slots: []Slot{{Types: []IndustryType{IronWorks}}, {Types: []IndustryType{CottonMill, Brewery}}}},
			{Name: "Weaverham", Slots: []Slot{{Types: []IndustryType{CottonMill}}, {Types: []IndustryType{CottonMill, CoalMine}}}},
			{Name: "Kilnhurst", Slots: []Slot{{Types: []IndustryType{Pottery}}, {Types: []IndustryType{Brewery}}}},
			{Name: "Marlton", Slots: []Slot{{Types: []IndustryType{CottonMill, Pottery}}, {Types: []IndustryType{Brewery, CoalMine}}}},
			{Name: "Stanlow", Slots: []Slot{{Types: []IndustryType{IronWorks, Brewery}}, {Types: []IndustryType{CottonMill}}}},
			{Name: "Grimley", Slots: []Slot{{Types: []IndustryType{CoalMine}}, {Types: []IndustryType{CottonMill, Pottery}}}},
			{Name: "Tanford", Slots: []Slot{{Types: []IndustryType{Brewery}}, {Types: []IndustryType{IronWorks, CottonMill}}}},
		},

		Routes: []Route{
			{A: "Coalbrook", B: "Ironford", Canal: true, Rail: true},
			{A: "Ironford", B: "Weaverham", Canal: true, Rail: true},
			{A: "Weaverham", B: "Marlton", Canal: true, Rail: true},
			{A: "Marlton", B: "Kilnhurst", Canal: true},
			{A: "Kilnhurst", B: "Tanford", Rail: true},
			{A: "Tanford", B: "Stanlow", Canal: true, Rail: true},
			{A: "Stanlow", B: "Coalbrook", Canal: true, Rail: true},
			{A: "Grimley", B: "Marlton", Canal: true, Rail: true},
			{A: "Ironford", B: "Grimley", Canal: true},
			{A: "Weaverham", B: "Tanford", Rail: true},
			{A: "Grimley", B: "Northport", Canal: true, Rail: true},
			{A: "Coalbrook", B: "Northport", Rail: true},
			{A: "Stanlow", B: "Southquay", Canal: true, Rail: true},
			{A: "Kilnhurst", B: "Southquay", Canal: true, Rail: true},
		},

		Merchants: []Merchant{
			{City: "Northport", Icons: []IndustryType{CottonMill, Pottery}, Beer: true, Bonus: BonusIncome, BonusValue: 2},
			{City: "Southquay", Icons: []IndustryType{CottonMill}, Beer: true, Bonus: BonusMoney, BonusValue: 5},
		},

		CoalMarket: []MarketLevel{
			{Price: 1, Cubes: 1, Max: 2},
			{Price: 2, Cubes: 2, Max: 2},
			{Price: 3, Cubes: 2, Max: 2},
			{Price: 4, Cubes: 2, Max: 2},
			{Price: 5, Cubes: 2, Max: 2},
			{Price: 6, Cubes: 2, Max: 2},
			{Price: 7, Cubes: 2, Max: 2},
			{Price: 8, Unbounded: true},
		},
		IronMarket: []MarketLevel{
			{Price: 1, Cubes: 1, Max: 2},
			{Price: 2, Cubes: 2, Max: 2},
			{Price: 3, Cubes: 2, Max: 2},
			{Price: 4, Cubes: 2, Max: 2},
			{Price: 5, Cubes: 2, Max: 2},
			{Price: 6, Unbounded: true},
		},

		Tiles: map[IndustryType][]TileCount{
			CottonMill: {
				{TileSpec: TileSpec{Type: CottonMill, Level: 1, Cost: 8, VictoryPoints: 3, IncomeAdvance: 5, BeerToSell: 1, CanalEra: true}, Count: 2},
				{TileSpec: TileSpec{Type: CottonMill, Level: 2, Cost: 12, VictoryPoints: 5, IncomeAdvance: 4, CoalCost: 1, BeerToSell: 1, CanalEra: true, RailEra: true}, Count: 2},
				{TileSpec: TileSpec{Type: CottonMill, Level: 3, Cost: 16, VictoryPoints: 9, IncomeAdvance: 3, CoalCost: 1, IronCost: 1, BeerToSell: 1, CanalEra: true, RailEra: true}, Count: 2},
				{TileSpec: TileSpec{Type: CottonMill, Level: 4, Cost: 20, VictoryPoints: 12, IncomeAdvance: 2, CoalCost: 1, IronCost: 1, BeerToSell: 1, RailEra: true}, Count: 2},
			},
			CoalMine: {
				{TileSpec: TileSpec{Type: CoalMine, Level: 1, Cost: 5, VictoryPoints: 1, IncomeAdvance: 4, Produces: 2, Capacity: 2, CanalEra: true}, Count: 1},
				{TileSpec: TileSpec{Type: CoalMine, Level: 2, Cost: 7, VictoryPoints: 2, IncomeAdvance: 7, Produces: 3, Capacity: 3, CanalEra: true, RailEra: true}, Count: 2},
				{TileSpec: TileSpec{Type: CoalMine, Level: 3, Cost: 8, VictoryPoints: 3, IncomeAdvance: 6, IronCost: 1, Produces: 4, Capacity: 4, CanalEra: true, RailEra: true}, Count: 2},
				{TileSpec: TileSpec{Type: CoalMine, Level: 4, Cost: 10, VictoryPoints: 4, IncomeAdvance: 5, IronCost: 1, Produces: 5, Capacity: 5, RailEra: true}, Count: 2},
			},
			IronWorks: {
				{TileSpec: TileSpec{Type: IronWorks, Level: 1, Cost: 5, VictoryPoints: 3, IncomeAdvance: 3, CoalCost: 1, Produces: 4, Capacity: 4, CanalEra: true}, Count: 1},
				{TileSpec: TileSpec{Type: IronWorks, Level: 2, Cost: 7, VictoryPoints: 5, IncomeAdvance: 3, CoalCost: 1, Produces: 5, Capacity: 4, CanalEra: true, RailEra: true}, Count: 1},
				{TileSpec: TileSpec{Type: IronWorks, Level: 3, Cost: 9, VictoryPoints: 7, IncomeAdvance: 2, CoalCost: 1, Produces: 6, Capacity: 5, CanalEra: true, RailEra: true}, Count: 1},
				{TileSpec: TileSpec{Type: IronWorks, Level: 4, Cost: 12, VictoryPoints: 9, IncomeAdvance: 1, CoalCost: 1, Produces: 7, Capacity: 6, RailEra: true}, Count: 1},
			},
			Brewery: {
				{TileSpec: TileSpec{Type: Brewery, Level: 1, Cost: 5, VictoryPoints: 4, IncomeAdvance: 4, IronCost: 1, Produces: 1, Capacity: 1, CanalEra: true}, Count: 2},
				{TileSpec: TileSpec{Type: Brewery, Level: 2, Cost: 7, VictoryPoints: 5, IncomeAdvance: 5, IronCost: 1, Produces: 1, Capacity: 1, CanalEra: true, RailEra: true}, Count: 2},
				{TileSpec: TileSpec{Type: Brewery, Level: 3, Cost: 9, VictoryPoints: 7, IncomeAdvance: 5, IronCost: 1, Produces: 2, Capacity: 2, RailEra: true}, Count: 2},
				{TileSpec: TileSpec{Type: Brewery, Level: 4, Cost: 9, VictoryPoints: 10, IncomeAdvance: 5, IronCost: 1, Produces: 2, Capacity: 2, RailEra: true}, Count: 1},
			},
			Pottery: {
				{TileSpec: TileSpec{Type: Pottery, Level: 1, Cost: 17, VictoryPoints: 10, IncomeAdvance: 5, IronCost: 1, BeerToSell: 1, CanalEra: true, RailEra: true}, Count: 1},
				{TileSpec: TileSpec{Type: Pottery, Level: 2, Cost: 19, VictoryPoints: 11, IncomeAdvance: 5, CoalCost: 1, BeerToSell: 1, CanalEra: true, RailEra: true}, Count: 1},
				{TileSpec: TileSpec{Type: Pottery, Level: 3, Cost: 22, VictoryPoints: 14, IncomeAdvance: 5, CoalCost: 2, BeerToSell: 1, RailEra: true}, Count: 1},
			},
		},

		Deck: []CardSpec{
			{Kind: CardLocation, City: "Coalbrook", Count: 2},
			{Kind: CardLocation, City: "Ironford", Count: 2},
			{Kind: CardLocation, City: "Weaverham", Count: 2},
			{Kind: CardLocation, City: "Kilnhurst", Count: 2},
			{Kind: CardLocation, City: "Marlton", Count: 2},
			{Kind: CardLocation, City: "Stanlow", Count: 2},
			{Kind: CardLocation, City: "Grimley", Count: 2, MinPlayers: 3},
			{Kind: CardLocation, City: "Tanford", Count: 2, MinPlayers: 3},
			{Kind: CardIndustry, Industries: []IndustryType{CottonMill}, Count: 4},
			{Kind: CardIndustry, Industries: []IndustryType{CoalMine}, Count: 3},
			{Kind: CardIndustry, Industries: []IndustryType{IronWorks}, Count: 3},
			{Kind: CardIndustry, Industries: []IndustryType{Brewery}, Count: 3},
			{Kind: CardIndustry, Industries: []IndustryType{Pottery}, Count: 2},
			{Kind: CardIndustry, Industries: []IndustryType{CottonMill, Brewery}, Count: 2, MinPlayers: 3},
			{Kind: CardIndustry, Industries: []IndustryType{CoalMine, IronWorks}, Count: 2, MinPlayers: 4},
		},

		WildLocationCards: 2,
		WildIndustryCards: 2,
	}
}
