package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stephenmesser/mrna-prototype/config"
	"github.com/stephenmesser/mrna-prototype/internal/vector"
)

var (
	designName    string
	designProtein string
	designOrder   string
	designOutput  string
)

// designCmd represents the design command
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Assemble and validate an mRNA production vector",
	Long: `Assemble an mRNA production vector from stock library elements and a
codon-optimized payload protein, then validate its structure.

Elements are added in 5' to 3' order. The default order builds a
T7-driven transcript with FLAG and 6xHis tags around the payload and
an ampicillin marker for plasmid maintenance. Pass --order to choose
a different element list; use the reserved name "payload" to mark
where the optimized gene goes. "mrna elements" lists the choices.`,
	Run: runDesign,
}

func runDesign(cmd *cobra.Command, args []string) {
	conf := config.New()

	var order []string
	if designOrder != "" {
		for _, choice := range strings.Split(designOrder, ",") {
			order = append(order, strings.TrimSpace(choice))
		}
	}

	v, err := vector.AssembleTranscript(designName, designProtein, order)
	if err != nil {
		logger.Fatalw("assembly failed", "vector", designName, "error", err)
	}
	logger.Infow("vector assembled",
		"vector", v.Name, "elements", len(v.Elements), "length", v.TotalLength)

	design := vector.NewDesign(v, &conf.Design)

	for _, warning := range design.Validation.Warnings {
		logger.Warnw("validation warning", "vector", v.Name, "warning", warning)
	}

	if designOutput != "" {
		if _, err := design.WriteJSON(designOutput); err != nil {
			logger.Fatalw("failed to write design", "path", designOutput, "error", err)
		}
		logger.Infow("design written", "path", designOutput)
	}

	design.WriteMap(os.Stdout)

	if !design.Validation.Passed {
		for _, issue := range design.Validation.Issues {
			fmt.Fprintf(os.Stderr, "issue: %s\n", issue)
		}
		os.Exit(1)
	}
}

// elementsCmd represents the elements command
var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the stock library elements available to design",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range vector.LibraryNames() {
			e, _ := vector.Lookup(name)
			fmt.Printf("%s\t%s\t%d bp\t%s\n", name, e.Category, e.Length(), e.Description)
		}
	},
}

func init() {
	RootCmd.AddCommand(designCmd)
	RootCmd.AddCommand(elementsCmd)

	designCmd.Flags().StringVarP(&designName, "name", "n", "mrna-vector", "name of the assembled vector")
	designCmd.Flags().StringVarP(&designProtein, "protein", "p", "", "payload protein sequence (single-letter amino acids)")
	designCmd.Flags().StringVarP(&designOrder, "order", "e", "", "comma separated element order ('payload' marks the optimized gene)")
	designCmd.Flags().StringVarP(&designOutput, "out", "o", "", "path to write the design JSON to")

	designCmd.MarkFlagRequired("protein")
}
