package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillon/companyscope/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "companyscope",
	Short: "Terminal client for the Company Research API",
	Long:  `companyscope researches a company by name: it sends one request to the research backend and renders the returned markdown report in the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the interactive research form
		application, err := app.NewApplication()
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
