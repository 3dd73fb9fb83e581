package engine

// Era identifies one of the two game phases.
type Era string

const (
	EraCanal Era = "canal"
	EraRail  Era = "rail"
)

// IndustryType represents the kind of industry a tile or card refers to.
type IndustryType string

const (
	CottonMill IndustryType = "cotton"
	CoalMine   IndustryType = "coal"
	IronWorks  IndustryType = "iron"
	Brewery    IndustryType = "brewery"
	Pottery    IndustryType = "pottery"
)

// Resource is a consumable cube or barrel tracked on tiles and markets.
type Resource string

const (
	ResourceCoal Resource = "coal"
	ResourceIron Resource = "iron"
	ResourceBeer Resource = "beer"
)

const (
	// MaxIncome and MinIncome bound a player's income level on every mutation.
	MaxIncome = 30
	MinIncome = -10

	// LoanAmount and LoanIncomePenalty define the take-loan action.
	LoanAmount        = 30
	LoanIncomePenalty = 3

	// MinPlayers and MaxPlayers bound a session.
	MinPlayers = 2
	MaxPlayers = 4
)

// CardKind tags the card union.
type CardKind string

const (
	CardLocation     CardKind = "location"
	CardIndustry     CardKind = "industry"
	CardWildLocation CardKind = "wild_location"
	CardWildIndustry CardKind = "wild_industry"
)

// Card is one hand card. Location cards bind to exactly one city; industry
// cards reference one or two industry types; wild cards bind to nothing.
type Card struct {
	ID         string         `json:"id"`
	Kind       CardKind       `json:"kind"`
	City       string         `json:"city,omitempty"`
	Industries []IndustryType `json:"industries,omitempty"`
}

// Matches reports whether the card can target the given city when building.
func (c Card) Matches(city string) bool {
	switch c.Kind {
	case CardLocation:
		return c.City == city
	default:
		return true
	}
}

// TileSpec describes one industry tile as printed on a player mat.
type TileSpec struct {
	Type          IndustryType `json:"type"`
	Level         int          `json:"level"`
	Cost          int          `json:"cost"`
	VictoryPoints int          `json:"victory_points"`
	IncomeAdvance int          `json:"income_advance"`
	CoalCost      int          `json:"coal_cost,omitempty"`
	IronCost      int          `json:"iron_cost,omitempty"`
	BeerToSell    int          `json:"beer_to_sell,omitempty"`
	Produces      int          `json:"produces,omitempty"`
	Capacity      int          `json:"capacity,omitempty"`
	CanalEra      bool         `json:"canal_era"`
	RailEra       bool         `json:"rail_era"`
}

// ProducesResource reports which resource, if any, this tile tracks cubes of.
func (t TileSpec) ProducesResource() (Resource, bool) {
	switch t.Type {
	case CoalMine:
		return ResourceCoal, true
	case IronWorks:
		return ResourceIron, true
	case Brewery:
		return ResourceBeer, true
	}
	return "", false
}

// BuiltIndustry is a tile instance placed in a city slot.
type BuiltIndustry struct {
	City    string   `json:"city"`
	Slot    int      `json:"slot"`
	Owner   string   `json:"owner"` // player ID
	Tile    TileSpec `json:"tile"`
	Coal    int      `json:"coal,omitempty"`
	Iron    int      `json:"iron,omitempty"`
	Beer    int      `json:"beer,omitempty"`
	Flipped bool     `json:"flipped"`
}

// Cubes returns the count of the resource this industry produces and holds.
func (b *BuiltIndustry) Cubes() int {
	switch b.Tile.Type {
	case CoalMine:
		return b.Coal
	case IronWorks:
		return b.Iron
	case Brewery:
		return b.Beer
	}
	return 0
}

// AddCubes adjusts the tracked resource count by delta.
func (b *BuiltIndustry) AddCubes(delta int) {
	switch b.Tile.Type {
	case CoalMine:
		b.Coal += delta
	case IronWorks:
		b.Iron += delta
	case Brewery:
		b.Beer += delta
	}
}

// Link is a built transport connection between two cities. The pair is
// stored normalized (A < B); at most one link exists per unordered pair.
type Link struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Kind  Era    `json:"kind"`
	Owner string `json:"owner"` // player ID
}

// NormalizedPair returns the unordered city pair in canonical order.
func NormalizedPair(from, to string) (string, string) {
	if to < from {
		return to, from
	}
	return from, to
}

// MarketLevel is one price tier of a resource market. An unbounded level is
// the purchase-only fallback tier: it never depletes and never accepts sales.
type MarketLevel struct {
	Price     int  `json:"price"`
	Cubes     int  `json:"cubes"`
	Max       int  `json:"max"`
	Unbounded bool `json:"unbounded,omitempty"`
}

// Market is a priced supply ladder, levels ordered cheapest first.
type Market struct {
	Resource Resource      `json:"resource"`
	Levels   []MarketLevel `json:"levels"`
}

// MerchantBonusKind tags the one-shot bonus granted when a merchant's beer
// token is consumed.
type MerchantBonusKind string

const (
	BonusMoney   MerchantBonusKind = "money"
	BonusIncome  MerchantBonusKind = "income"
	BonusPoints  MerchantBonusKind = "points"
	BonusDevelop MerchantBonusKind = "develop"
)

// Merchant is a fixed off-board buyer reachable through the link network.
type Merchant struct {
	City       string            `json:"city"`
	Icons      []IndustryType    `json:"icons"`
	Beer       bool              `json:"beer"`
	BeerSpent  bool              `json:"beer_spent,omitempty"`
	Bonus      MerchantBonusKind `json:"bonus,omitempty"`
	BonusValue int               `json:"bonus_value,omitempty"`
}

// Accepts reports whether the merchant buys goods of the given industry type.
func (m *Merchant) Accepts(t IndustryType) bool {
	for _, icon := range m.Icons {
		if icon == t {
			return true
		}
	}
	return false
}

// HasBeerToken reports whether the merchant's one-shot beer is still available.
func (m *Merchant) HasBeerToken() bool {
	return m.Beer && !m.BeerSpent
}

// Player is one seat at the table. The slice index in GameState.Players is
// the turn slot.
type Player struct {
	ID            string                      `json:"id"`
	Name          string                      `json:"name"`
	Money         int                         `json:"money"`
	Income        int                         `json:"income"`
	VictoryPoints int                         `json:"victory_points"`
	Hand          []Card                      `json:"hand"`
	Mat           map[IndustryType][]TileSpec `json:"mat"`
	Spent         int                         `json:"spent"` // turn-order ledger, reset every round
}

// NextTile returns the lowest-level remaining tile of the given type.
func (p *Player) NextTile(t IndustryType) (TileSpec, bool) {
	row := p.Mat[t]
	if len(row) == 0 {
		return TileSpec{}, false
	}
	return row[0], true
}

// HandCard finds a card in the player's hand by ID.
func (p *Player) HandCard(id string) (Card, bool) {
	for _, c := range p.Hand {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// AdvanceIncome moves the player's income by delta, clamped to the legal range.
func (p *Player) AdvanceIncome(delta int) {
	p.Income += delta
	if p.Income > MaxIncome {
		p.Income = MaxIncome
	}
	if p.Income < MinIncome {
		p.Income = MinIncome
	}
}

// LoseVictoryPoints subtracts n victory points, floored at zero.
func (p *Player) LoseVictoryPoints(n int) {
	p.VictoryPoints -= n
	if p.VictoryPoints < 0 {
		p.VictoryPoints = 0
	}
}

// LogKind classifies append-only log entries.
type LogKind string

const (
	LogAction      LogKind = "action"
	LogIncome      LogKind = "income"
	LogLiquidation LogKind = "liquidation"
	LogFlip        LogKind = "flip"
	LogEra         LogKind = "era"
	LogError       LogKind = "error"
	LogInfo        LogKind = "info"
)

// LogEntry is one line of the game's append-only log.
type LogEntry struct {
	Seq     int     `json:"seq"`
	Kind    LogKind `json:"kind"`
	Player  string  `json:"player,omitempty"` // player ID, empty for system entries
	Message string  `json:"message"`
}

// ActionError is a recoverable rule violation detected inside an executor.
// The action is not consumed; the player keeps their turn.
type ActionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ActionError) Error() string {
	return e.Message
}

// Error codes for validator-rejected actions.
const (
	ErrCodeSelectionIncomplete = "selection_incomplete"
	ErrCodeNotInNetwork        = "not_in_network"
	ErrCodeSlotUnavailable     = "slot_unavailable"
	ErrCodeEraMismatch         = "era_mismatch"
	ErrCodeNoTile              = "no_tile"
	ErrCodeNoMerchant          = "no_merchant"
	ErrCodeInsufficientBeer    = "insufficient_beer"
	ErrCodeInsufficientFunds   = "insufficient_funds"
	ErrCodeIllegalLink         = "illegal_link"
	ErrCodeWildExhausted       = "wild_exhausted"
)
