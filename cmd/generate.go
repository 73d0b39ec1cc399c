package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/verbly-app/verbly/internal/itemgen"
	"github.com/verbly-app/verbly/internal/llm"
	"github.com/verbly-app/verbly/internal/pipeline"
	"github.com/verbly-app/verbly/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Bulk-generate practice exercises for a topic",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "Topic key, e.g. present-tense (required)")
	generateCmd.Flags().String("name", "", "Topic display name (defaults to the topic key)")
	generateCmd.Flags().String("description", "", "Topic description included in the prompt")
	generateCmd.Flags().String("level", "A1", "CEFR level: A1, A2, B1, B2, C1, C2")
	generateCmd.Flags().Int("count", 50, "Total items to generate for the topic")
	generateCmd.Flags().String("split", "", "Difficulty split as easy:medium:hard percentages, e.g. 35:45:20")
	generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topicKey, _ := cmd.Flags().GetString("topic")
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	levelStr, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")
	splitStr, _ := cmd.Flags().GetString("split")

	if name == "" {
		name = topicKey
	}

	split, err := parseSplit(splitStr)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("configure provider: %w", err)
	}

	deliverables := st.DeliverableRepo()
	orch := itemgen.New(
		provider,
		itemgen.NewDedup(deliverables),
		itemgen.NewRateWindow(deliverables),
		itemgen.DefaultConfig(),
	)
	pipe := pipeline.New(orch, deliverables, pipeline.DefaultConfig())

	// First interrupt stops the session cleanly; a second one kills the
	// process the usual way.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "stopping after in-flight job...")
		pipe.Stop()
		signal.Stop(sigCh)
	}()

	summary, err := pipe.Run(ctx, pipeline.SessionRequest{
		Topics: []itemgen.Topic{{
			ID:          topicKey,
			Name:        name,
			Description: description,
		}},
		Level:         itemgen.Level(strings.ToUpper(levelStr)),
		ItemsPerTopic: count,
		Split:         split,
	})
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func printSummary(summary *pipeline.Summary) {
	fmt.Printf("%-20s  %-12s  %-5s  %-5s  %s\n", "Type", "Status", "Req", "Got", "Error")
	fmt.Println(strings.Repeat("-", 70))
	for _, job := range summary.Jobs {
		fmt.Printf("%-20s  %-12s  %-5d  %-5d  %s\n",
			job.ExerciseType, job.Status, job.RequestedCount, job.GeneratedCount, job.ErrMessage)
	}
	fmt.Println()
	fmt.Printf("%d items in %d deliverables (%s)\n",
		summary.ItemsGenerated, summary.DeliverablesCreated, summary.Duration.Round(time.Millisecond))
	if summary.Stopped {
		fmt.Println("session stopped before completion")
	}
}

// parseSplit parses "35:45:20" into a difficulty split.
func parseSplit(s string) (itemgen.Split, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("split must be easy:medium:hard, e.g. 35:45:20")
	}
	split := itemgen.Split{}
	for i, tier := range itemgen.Difficulties {
		pct, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, fmt.Errorf("bad split percentage %q: %w", parts[i], err)
		}
		split[tier] = pct
	}
	return split, nil
}
