package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillon/companyscope/internal/backend"
	"github.com/quillon/companyscope/internal/config"
	"github.com/quillon/companyscope/internal/utils"
)

var researchPlain bool

var researchCmd = &cobra.Command{
	Use:   "research [company-name]",
	Short: "Research a company and print the report",
	Long:  `One-shot mode: send a single research request for the given company and print the rendered report to stdout.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		companyName := strings.TrimSpace(strings.Join(args, " "))
		if companyName == "" {
			log.Fatalf("Company name must not be blank")
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if !cfg.IsValid() {
			log.Fatalf("No backend endpoint configured; run: companyscope profile edit")
		}

		client := backend.NewClient(cfg.GetEndpoint(), cfg.GetAuthToken(), cfg.GetTimeout())

		report, err := client.Research(context.Background(), companyName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Research failed: %v\n", err)
			os.Exit(1)
		}

		if researchPlain {
			fmt.Println(report)
			return
		}
		fmt.Println(utils.RenderMarkdown(report))
	},
}

func init() {
	researchCmd.Flags().BoolVar(&researchPlain, "plain", false, "print the raw markdown instead of rendering it")
	rootCmd.AddCommand(researchCmd)
}
