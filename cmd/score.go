package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/suderio/tenpin/internal/engine"
	"github.com/suderio/tenpin/internal/session"
	"github.com/suderio/tenpin/internal/sheet"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [pins...]",
	Short: "Compute the score of a finished or partial game",
	Long: `Replays a sequence of rolls and prints the frame breakdown and total.
Rolls are given as arguments or loaded from a YAML roll sheet:

	tenpin score 10 4 3 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
	tenpin score --file game.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")

		var rolls []int
		if file != "" {
			s, err := sheet.Load(file)
			if err != nil {
				fmt.Printf("Failed to load roll sheet: %v\n", err)
				os.Exit(1)
			}
			rolls = s.Rolls
		} else {
			for _, arg := range args {
				pins, err := strconv.Atoi(arg)
				if err != nil {
					fmt.Printf("Error: %q is not an integer pin count\n", arg)
					os.Exit(1)
				}
				rolls = append(rolls, pins)
			}
		}

		if len(rolls) == 0 {
			fmt.Println("Error: no rolls given; pass pin counts as arguments or use --file")
			os.Exit(1)
		}

		game := engine.NewGame()
		for i, pins := range rolls {
			if err := game.Roll(pins); err != nil {
				fmt.Printf("Roll %d rejected: %v\n", i+1, err)
				os.Exit(1)
			}
		}

		fmt.Println(session.FormatFrames(game))
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("file", "f", "", "YAML roll sheet to score instead of argument rolls")
}
