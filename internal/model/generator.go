package model

// Options is the parsed configuration handed to the core by the CLI or the
// HTTP layer. It is built once and never mutated afterwards.
type Options struct {
	Disabled []string // built-in group names to leave out
	Allow    []string // extra symbols, applied in order
	Deny     []string // symbols to remove, applied in order after Allow
	Length   int
	Copy     bool
	Verbose  bool
}

// GenerateRequest represents a password generation request.
type GenerateRequest struct {
	Length       int      `json:"length"`
	NoLatinUpper bool     `json:"no_latin_upper"`
	NoLatinLower bool     `json:"no_latin_lower"`
	NoDigits     bool     `json:"no_digits"`
	NoSpecial    bool     `json:"no_special"`
	Allow        []string `json:"allow"`
	Deny         []string `json:"deny"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password     string `json:"password"`
	Length       int    `json:"length"`
	AlphabetSize int    `json:"alphabet_size"`
}
