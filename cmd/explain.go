package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepai/internal/ui/components"
)

var explainCmd = &cobra.Command{
	Use:   "explain <question>",
	Short: "Explain the concept behind an interview question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		question := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prep, err := newPrepService(cmd.Context(), st.EventRepo())
		if err != nil {
			return err
		}

		rec, err := prep.ExplainConcept(cmd.Context(), question)
		if err != nil {
			return fmt.Errorf("explain concept: %w", err)
		}

		return writeOutput(cmd.OutOrStdout(), format, rec, func() string {
			return components.ConceptCard(rec, components.DefaultWidth)
		})
	},
}

func init() {
	addOutputFlag(explainCmd)
}
