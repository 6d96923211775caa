package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stock-pulse",
	Short: "A CLI for managing the Stock Pulse services",
	Long:  `Stock Pulse ingests market candles and sentiment-labeled company news and serves them over a small read API.`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
