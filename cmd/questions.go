package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepai/internal/interviewprep"
	"github.com/abhisek/prepai/internal/ui/components"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions with answers",
	Example: `  prepai questions --role "Backend Engineer" --experience "3 years" \
    --topics "Go, concurrency, SQL" -n 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		in := interviewprep.QuestionsInput{}
		in.Role, _ = cmd.Flags().GetString("role")
		in.Experience, _ = cmd.Flags().GetString("experience")
		in.TopicsToFocus, _ = cmd.Flags().GetString("topics")
		in.NumberOfQuestions, _ = cmd.Flags().GetInt("count")
		if err := in.Validate(cfg.Generation.MaxQuestions); err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prep, err := newPrepService(cmd.Context(), st.EventRepo())
		if err != nil {
			return err
		}

		records, err := prep.GenerateQuestions(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("generate questions: %w", err)
		}

		return writeOutput(cmd.OutOrStdout(), format, records, func() string {
			header := fmt.Sprintf("%s · %s · %s", in.Role, in.Experience, strings.TrimSpace(in.TopicsToFocus))
			return components.Rule(components.DefaultWidth) + "\n" + header + "\n" +
				components.Rule(components.DefaultWidth) + "\n\n" +
				components.QuestionList(records, components.DefaultWidth)
		})
	},
}

func init() {
	questionsCmd.Flags().String("role", "", "Target role")
	questionsCmd.Flags().String("experience", "", "Candidate experience")
	questionsCmd.Flags().String("topics", "", "Topics to focus on")
	questionsCmd.Flags().IntP("count", "n", 10, "Number of questions")
	addOutputFlag(questionsCmd)
}
