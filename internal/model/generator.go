package model

// OptionFlags carries the character class switches of a request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type OptionFlags struct {
	IncludeLetters   *bool `json:"include_letters"`
	IncludeNumbers   *bool `json:"include_numbers"`
	IncludeSymbols   *bool `json:"include_symbols"`
	ExcludeAmbiguous *bool `json:"exclude_ambiguous"`
}

// GenerateRequest represents a password generation request.
type GenerateRequest struct {
	Length int `json:"length"`
	OptionFlags
}

// Strength is the heuristic strength of a password.
type Strength struct {
	Score   float64 `json:"score"`
	Level   string  `json:"level"`
	Entropy float64 `json:"entropy"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string   `json:"password"`
	Length   int      `json:"length"`
	Strength Strength `json:"strength"`
}

// StrengthRequest asks for the strength of a password built with the given options.
type StrengthRequest struct {
	Password string      `json:"password"`
	Options  OptionFlags `json:"options"`
}

// Guessability is a pattern-aware estimate (0-4) that complements the entropy score.
type Guessability struct {
	Score     int    `json:"score"`
	CrackTime string `json:"crack_time"`
}

// StrengthResponse represents a strength check response.
type StrengthResponse struct {
	Strength
	Guessability Guessability `json:"guessability"`
}
