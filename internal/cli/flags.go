package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Articles   string // Article variant: definite, indefinite, all
	Translate  bool
	Provider   string // Translation provider: openai or gemini
	OutputFile string
	Format     string // Export format: csv or tsv
	Clipboard  bool
	WordList   string // Seed file of "noun = english" lines
	CachePath  string
	NoCache    bool
	ListModels bool

	// Provider model selection
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Articles:    "definite",
		Provider:    "openai",
		Format:      "csv",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.5-flash",
	}
}
