package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verbly-app/verbly/internal/proficiency"
	"github.com/verbly-app/verbly/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a learner's proficiency from exercise history",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		analyzer := proficiency.NewAnalyzer(st.PerformanceRepo(), st.SnapshotRepo())
		analysis, err := analyzer.Analyze(cmd.Context(), learnerID)
		if err != nil {
			return err
		}

		fmt.Printf("Learner:      %s\n", analysis.LearnerID)
		fmt.Printf("Level:        %s (confidence %.0f)\n", analysis.CurrentLevel, analysis.ConfidenceScore)
		fmt.Printf("Recommended:  %s\n", analysis.RecommendedLevel)
		fmt.Printf("Progress:     %.0f%% to next level\n", analysis.ProgressToNextLevel)
		fmt.Printf("Consistency:  %.0f\n", analysis.Details.ConsistencyScore)
		fmt.Printf("Est. needed:  %d exercises\n", analysis.ExercisesNeeded)

		if len(analysis.Strengths) > 0 {
			fmt.Printf("Strengths:    %s\n", strings.Join(analysis.Strengths, ", "))
		}
		if len(analysis.Weaknesses) > 0 {
			fmt.Printf("Weaknesses:   %s\n", strings.Join(analysis.Weaknesses, ", "))
		}

		if len(analysis.Details.TopicScores) > 0 {
			fmt.Println("\nTopic scores:")
			for topic, score := range analysis.Details.TopicScores {
				fmt.Printf("  %-24s %6.1f\n", topic, score)
			}
		}
		if len(analysis.Details.SkillScores) > 0 {
			fmt.Println("\nSkill scores:")
			for _, skill := range proficiency.Skills {
				if score, ok := analysis.Details.SkillScores[skill]; ok {
					fmt.Printf("  %-24s %6.1f\n", skill, score)
				}
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("learner", "", "Learner ID (required)")
	analyzeCmd.MarkFlagRequired("learner")
}
