// Command wordforge generates targeted password wordlists from personal
// facts and audits password strength against them.
//
// Usage:
//
//	wordforge --name "Lekhana" --pet "Bruno" --date 2001-06-15
//	wordforge --name "Lekhana" --password "Brun02001" --analyze-only
//	wordforge --name "Lekhana" --profile comprehensive -o targets.txt
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wordforge/wordforge/mutate"
	"github.com/wordforge/wordforge/seeds"
	"github.com/wordforge/wordforge/strength"
	"github.com/wordforge/wordforge/wordlist"
)

var (
	flagPassword    string
	flagName        string
	flagPet         string
	flagDate        string
	flagExtra       []string
	flagProfile     string
	flagMinLen      int
	flagMaxLen      int
	flagMax         int
	flagOutfile     string
	flagAnalyzeOnly bool
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "wordforge",
	Short: "Targeted wordlist generation and password strength auditing",
	Long: `wordforge derives candidate passwords from personal facts (names,
pets, memorable dates) the way an informed attacker would, and scores
passwords with the same facts in mind. Intended for auditing your own
accounts and for authorized security assessments.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagPassword, "password", "p", "", "password to score (omit to only generate)")
	f.StringVar(&flagName, "name", "", "target's name")
	f.StringVar(&flagPet, "pet", "", "pet or nickname")
	f.StringVar(&flagDate, "date", "", "memorable date, YYYY-MM-DD")
	f.StringArrayVar(&flagExtra, "extra", nil, "extra fact (repeatable)")
	f.StringVar(&flagProfile, "profile", "balanced", "generation profile: fast, balanced or comprehensive")
	f.IntVar(&flagMinLen, "min-len", 4, "minimum candidate length")
	f.IntVar(&flagMaxLen, "max-len", 24, "maximum candidate length")
	f.IntVar(&flagMax, "max", 0, "cap candidate count below the profile default (0 = profile default)")
	f.StringVarP(&flagOutfile, "outfile", "o", "wordlist.txt", "output path for the generated wordlist")
	f.BoolVar(&flagAnalyzeOnly, "analyze-only", false, "score the password without writing a wordlist")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "log progress to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	set, err := seeds.Extract(seeds.Facts{
		Name:  flagName,
		Pet:   flagPet,
		Date:  flagDate,
		Extra: flagExtra,
	})
	if err != nil {
		if !errors.Is(err, seeds.ErrInvalidInput) {
			return err
		}
		// Malformed fields are skipped, not fatal; Extract returns the
		// tokens it could derive.
		logger.Warn("skipping malformed fact", "err", err)
	}
	logger.Debug("seed tokens extracted", "count", len(set), "tokens", set.Texts())

	if flagPassword != "" {
		report := strength.Score(flagPassword, strength.WithSeedTokens(set))
		fmt.Fprint(cmd.OutOrStdout(), renderReport(report))
	}

	if flagAnalyzeOnly {
		if flagPassword == "" {
			return errors.New("--analyze-only requires --password")
		}
		return nil
	}

	if set.Empty() {
		return errors.New("no personal facts supplied; provide --name, --pet, --date or --extra")
	}

	profile, err := mutate.ParseProfile(flagProfile)
	if err != nil {
		return err
	}
	opts := []mutate.Option{mutate.WithLengthRange(flagMinLen, flagMaxLen)}
	if flagMax > 0 {
		opts = append(opts, mutate.WithMaxCandidates(flagMax))
	}

	candidates, err := mutate.Generate(set, profile, opts...)
	if err != nil {
		return err
	}

	out, err := os.Create(flagOutfile)
	if err != nil {
		return fmt.Errorf("create wordlist: %w", err)
	}
	defer out.Close()

	n, err := wordlist.Write(out, wordlist.Dedup(candidates, 0))
	if err != nil {
		return fmt.Errorf("write wordlist: %w", err)
	}
	logger.Info("wordlist written", "path", flagOutfile, "profile", profile.String(), "candidates", n)
	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(flagOutfile, profile, n))

	return nil
}
