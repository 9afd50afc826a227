package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"trending/config"
)

var (
	cfgFile     string
	cfg         *config.Config
	topK        int
	format      string
	batch       bool
	interactive bool
	dropEmpty   bool
	ignore      []string
	writeConfig string
)

var rootCmd = &cobra.Command{
	Use:   "trending",
	Short: "Trending hashtags - count hashtags in tweets and report the most frequent",
	Long: `Trending reads tweets one line at a time, counts how many tweets mention each
#hashtag, and prints the top K hashtags by frequency once input ends.

It prompts for each tweet and asks whether to continue; any answer other than
"y" or "yes" ends the session. With --batch it reads every line until end of
input without asking.

Example usage:
  trending                          # Interactive session, top 10
  trending -k 3 --format table      # Top 3 as a table
  trending --batch < tweets.txt     # Count a file of tweets
  trending --write-config trending.yaml  # Save the effective settings`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			var dir string
			dir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			cfg, err = config.LoadFromDir(dir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		applyFlags(cmd, cfg)

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return nil
	},
	RunE: runTrending,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./trending.yaml)")
	rootCmd.Flags().IntVarP(&topK, "top-k", "k", 0, "number of hashtags to report (default from config)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "output format: list, table or json (default from config)")
	rootCmd.Flags().BoolVar(&batch, "batch", false, "read every line until end of input without prompting")
	rootCmd.Flags().BoolVar(&interactive, "interactive", false, "always prompt, even when input is not a terminal")
	rootCmd.Flags().BoolVar(&dropEmpty, "drop-empty", false, "discard the empty hashtag produced by a bare '#'")
	rootCmd.Flags().StringSliceVar(&ignore, "ignore", nil, "glob patterns of hashtags to skip (adds to config)")
	rootCmd.Flags().StringVar(&writeConfig, "write-config", "", "write the effective configuration to this file and exit")
	rootCmd.MarkFlagsMutuallyExclusive("batch", "interactive")
}

// applyFlags overlays command-line flags on the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if topK != 0 || cmd.Flags().Changed("top-k") {
		cfg.TopK.K = topK
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if dropEmpty {
		cfg.Tokens.DropEmpty = true
	}
	if len(ignore) > 0 {
		cfg.Tokens.Ignore = append(cfg.Tokens.Ignore, ignore...)
	}
}

func GetConfig() *config.Config {
	return cfg
}
