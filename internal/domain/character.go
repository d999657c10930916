package domain

// Character is one meme coin card from the bundled catalog.
// Characters are loaded once at startup and never mutated.
type Character struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Bio            string   `json:"bio"`
	ImageURL       string   `json:"image_url"`
	Trait          string   `json:"trait"`
	DistanceBlocks int      `json:"distance_blocks"`
	Occupation     string   `json:"occupation"`
	PeakMcap       string   `json:"peak_mcap,omitempty"`
	ATHDate        string   `json:"ath_date,omitempty"`
	Volume24h      string   `json:"volume_24h,omitempty"`
	Holders        string   `json:"holders,omitempty"`
	Chain          string   `json:"chain,omitempty"`
	Vibe           string   `json:"vibe,omitempty"`
	LookingFor     string   `json:"looking_for,omitempty"`
	GreenFlags     []string `json:"green_flags,omitempty"`
	RedFlags       []string `json:"red_flags,omitempty"`
	FunFacts       []string `json:"fun_facts,omitempty"`
}

// Persona is the slice of a character the chat prompt needs.
type Persona struct {
	Name  string `json:"name"`
	Trait string `json:"trait"`
	Bio   string `json:"bio"`
}
