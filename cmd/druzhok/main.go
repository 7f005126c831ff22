package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ameliastxne/druzhok/internal/app"
	"github.com/ameliastxne/druzhok/internal/config"
	"github.com/ameliastxne/druzhok/internal/db"
	"github.com/ameliastxne/druzhok/internal/emotion"
	"github.com/ameliastxne/druzhok/internal/logging"
	"github.com/ameliastxne/druzhok/internal/settings"
	"github.com/ameliastxne/druzhok/internal/speech"
	"github.com/ameliastxne/druzhok/internal/version"
)

var (
	cfgFile string

	journalEmotion string
	journalSort    string
	journalAsc     bool
)

var rootCmd = &cobra.Command{
	Use:   "druzhok",
	Short: "Druzhok - a tiger friend that helps children name their feelings",
	Long: `Druzhok is a terminal companion for children. The child picks how they
feel, tells the tiger why, gets a gentle reply and plays a short calming
activity. Caregivers can review preferences and the activity journal.

Configuration:
  1. --config flag (explicit path)
  2. ./config.yaml
  3. $HOME/.config/druzhok/config.yaml

Environment Variables:
  DRUZHOK_LOCALE          - speech locale (default uk-UA)
  DRUZHOK_SPEECH_ENABLED  - read texts aloud (default true)
  DRUZHOK_SPEECH_COMMAND  - speech binary (default: espeak-ng, espeak or say)
  DRUZHOK_SPEECH_RATE     - speech speed multiplier
  DRUZHOK_LOG_FILE        - log file, empty to disable
  DRUZHOK_LOG_LEVEL       - debug, info, warn, error
  DRUZHOK_SEED            - random seed, 0 for a fresh one`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE:         runTUI,
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Print the child's activity journal",
	RunE:  runJournal,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Druzhok\n")
		fmt.Printf("  Version:    %s\n", version.Version)
		fmt.Printf("  Build Time: %s\n", version.BuildTime)
		fmt.Printf("  Git Commit: %s\n", version.GitCommit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/druzhok/config.yaml)")

	journalCmd.Flags().StringVar(&journalEmotion, "emotion", "all", "only show one emotion: joy, sadness, anger, fear, disgust")
	journalCmd.Flags().StringVar(&journalSort, "sort", string(db.ColumnDate), "sort column: date, emotion, duration, activities")
	journalCmd.Flags().BoolVar(&journalAsc, "asc", false, "sort ascending instead of descending")

	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := db.OpenMemory()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	var speaker speech.Speaker = speech.Nop{}
	if cfg.Speech.Enabled {
		cs := speech.NewCommandSpeaker(logger, cfg.Speech.Command, cfg.Speech.Rate)
		if cs.IsAvailable() {
			speaker = cs
		} else {
			logger.Info().Msg("no speech synthesiser found, speaking disabled")
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info().Str("version", version.Version).Uint64("seed", seed).Msg("starting")

	m := app.New(app.Options{
		Logger:  logger,
		Speaker: speaker,
		Locale:  cfg.Locale,
		Rand:    rand.New(rand.NewPCG(seed, seed)),
		Store:   store,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info().Msg("bye")
	return nil
}

func runJournal(cmd *cobra.Command, args []string) error {
	q := db.Query{Desc: !journalAsc}

	if f := strings.ToLower(journalEmotion); f != "" && f != "all" {
		e, ok := emotion.Parse(f)
		if !ok {
			return fmt.Errorf("unknown emotion %q", journalEmotion)
		}
		q.Emotion = e
	}
	col, ok := db.ParseColumn(strings.ToLower(journalSort))
	if !ok {
		return fmt.Errorf("unknown sort column %q", journalSort)
	}
	q.OrderBy = col

	store, err := db.OpenMemory()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	entries, err := store.ActivityLog(q)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "Немає даних для відображення")
		return nil
	}
	fmt.Fprintln(out, settings.RenderTable(entries, q.OrderBy, q.Desc, -1))

	counts, err := store.EmotionCounts()
	if err != nil {
		return err
	}
	var parts []string
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%s: %d", c.Emotion.Label(), c.Count))
	}
	fmt.Fprintln(out, strings.Join(parts, ", "))
	return nil
}
