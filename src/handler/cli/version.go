package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("a11ylint %s\n", h.cfg.Analyzer.Version)
		},
	}
}

func (h *Handler) checksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List available checks",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available checks:")
			fmt.Println("  - stylesheet : reducedMotion, focusStyles, fontSize")
			fmt.Println("  - template   : imgAlt, buttonLabel, positiveTabindex, autofocus, clickTarget")
		},
	}
}
