package main

import (
	"fmt"
	"os"

	"github.com/aspireai/aspire-site/internal/logging"
	"github.com/aspireai/aspire-site/internal/version"

	"github.com/spf13/cobra"
)

var logger *logging.Logger

func initLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}

	// Initialize the global logger
	if err := logging.InitLogger(&logging.Config{Level: level}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger = logging.GetLogger()
}

var rootCmd = &cobra.Command{
	Use:   "aspire",
	Short: "Aspire.AI site tooling",
	Long: `aspire talks to the Aspire.AI Contact API the same way the landing page does.
Use it to send a contact enquiry from the terminal or to smoke-test a backend.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aspire version: %s\n", version.Info())
	},
}

func init() {
	initLogger()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newContactCmd())
}

func main() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
