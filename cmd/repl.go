/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/suderio/tenpin/internal/session"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive scoring shell",
	Long: `Starts the read-eval-print loop for recording rolls and querying scores.
Usage:
	> roll 7
	> score
	> frames
	> new game`,
	Run: func(cmd *cobra.Command, args []string) {
		app := session.NewSession()

		fmt.Println("Scoring a new game. Type 'exit' or 'quit' to leave.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			evt, err := app.Execute(line)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if evt != nil {
				fmt.Println(evt.Message())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
