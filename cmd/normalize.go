package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/prepai/internal/normalize"
	"github.com/abhisek/prepai/internal/ui/components"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file|-]",
	Short: "Normalize saved model output into records",
	Long: `Runs the normalization pipeline on model output read from a file or stdin.
No model is called. Batch mode prints question/answer records; single mode
prints one concept explanation, synthesized from --question when the text is
not a usable object.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		modeName, _ := cmd.Flags().GetString("mode")
		mode, err := normalize.ParseMode(modeName)
		if err != nil {
			return err
		}
		question, _ := cmd.Flags().GetString("question")

		raw, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		res, err := normalize.Normalize(mode, raw, question)
		if err != nil {
			logger.Debug("normalization failed",
				zap.String("kind", normalize.KindOf(err)),
				zap.Error(err))
			return fmt.Errorf("normalize: %w", err)
		}

		out := cmd.OutOrStdout()
		errOut := cmd.ErrOrStderr()

		if mode == normalize.ModeSingle {
			if res.Concept.Fallback {
				fmt.Fprintln(errOut, components.FallbackNotice(res.Concept.Reason))
			}
			return writeOutput(out, format, res.Concept.Record, func() string {
				return components.ConceptCard(res.Concept.Record, components.DefaultWidth)
			})
		}

		if n := res.Questions.Discarded; n > 0 {
			logger.Debug("discarded records", zap.Ints("indexes", res.Questions.Dropped))
			fmt.Fprintln(errOut, components.Discarded(n))
		}
		return writeOutput(out, format, res.Questions.Records, func() string {
			return components.QuestionList(res.Questions.Records, components.DefaultWidth)
		})
	},
}

// readInput returns the contents of the file named by args[0], or stdin when
// no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func init() {
	normalizeCmd.Flags().StringP("mode", "m", string(normalize.ModeBatch), "Pipeline mode: batch or single")
	normalizeCmd.Flags().StringP("question", "q", "", "Original question, used as the fallback title in single mode")
	addOutputFlag(normalizeCmd)
}
