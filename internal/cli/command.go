package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/derdiedas/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "derdiedas [file...]",
		Short: "German Noun and Article Extractor",
		Long: `derdiedas extracts German nouns together with their preceding article
from free-form text, deduplicates them, and exports the vocabulary as
CSV, TSV, or clipboard text. With --translate it looks up English
translations via OpenAI or Gemini, caching every noun locally.

Examples:
  derdiedas text.txt                      # Extract nouns from a file
  cat text.txt | derdiedas                # Extract nouns from stdin
  derdiedas --translate -o words.csv a.txt  # Translate and write CSV
  derdiedas --clipboard a.txt             # Copy TSV to the clipboard`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.derdiedas.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Articles, "articles", "a", flags.Articles, "Article variant: definite, indefinite, all")
	cmd.Flags().BoolVarP(&flags.Translate, "translate", "t", false, "Fetch English translations")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: openai or gemini")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Export format (csv or tsv)")
	cmd.Flags().BoolVar(&flags.Clipboard, "clipboard", false, "Copy tab-separated output to the clipboard")
	cmd.Flags().StringVar(&flags.WordList, "wordlist", "", "Seed translations from file (noun = english per line)")
	cmd.Flags().StringVar(&flags.CachePath, "cache", "", "Translation cache database path")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Disable the persistent translation cache")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")

	// Provider model flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for translation")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for translation")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("extract.articles", cmd.Flags().Lookup("articles"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("translation.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("cache.path", cmd.Flags().Lookup("cache"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".derdiedas" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".derdiedas")
	}

	// Environment variables: DERDIEDAS_TRANSLATION_PROVIDER etc.
	viper.SetEnvPrefix("DERDIEDAS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig folds config file and environment values back into the
// flags the processor reads. The viper bindings resolve precedence: a
// flag set on the command line wins over the config file, which wins
// over the flag default.
func ApplyConfig(flags *Flags) {
	if v := viper.GetString("extract.articles"); v != "" {
		flags.Articles = v
	}
	if v := viper.GetString("translation.provider"); v != "" {
		flags.Provider = v
	}
	if v := viper.GetString("translation.openai_model"); v != "" {
		flags.OpenAIModel = v
	}
	if v := viper.GetString("translation.gemini_model"); v != "" {
		flags.GeminiModel = v
	}
	if v := viper.GetString("cache.path"); v != "" {
		flags.CachePath = v
	}
	if v := viper.GetString("output.format"); v != "" {
		flags.Format = v
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.gemini_key")
}
