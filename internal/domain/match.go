package domain

import "time"

// Match pairs a user with a catalog character. The character id should
// reference the catalog, but readers tolerate a missing lookup.
type Match struct {
	ID          string    `json:"id"`
	CharacterID string    `json:"characterId"`
	MatchedAt   time.Time `json:"matchedAt"`
	Location    string    `json:"location"`
}

// DefaultMatchLocation is used when a direct match creation carries no location.
const DefaultMatchLocation = "The Blockchain"

// CryptoLocations is the fixed pool a randomly matched pair "meets" at.
var CryptoLocations = []string{
	"The DEX",
	"Uniswap Pool Party",
	"ETH Denver",
	"The Blockchain",
	"Crypto Twitter",
	"The Moon Base 🌙",
	"Diamond Hand Island",
	"WAGMI Valley",
	"Pump Station",
	"The Liquidity Pool",
}
