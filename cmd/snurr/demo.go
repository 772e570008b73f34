package main

import (
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/crazywolf132/fstr"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/crazywolf132/snurr"
	"github.com/crazywolf132/snurr/internal/ui"
)

var (
	demoWithOutput bool
	demoCustom     bool
)

// demoCmd represents "snurr demo"
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the spinner demo scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println(ui.Yellow("Warning: stdout is not a terminal, the animation will look odd"))
		}

		switch {
		case demoCustom:
			return demoCustomSpinner()
		case demoWithOutput:
			return demoInterleavedOutput()
		default:
			return demoBasic()
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoWithOutput, "with-output", false, "print lines while the spinner runs")
	demoCmd.Flags().BoolVar(&demoCustom, "custom", false, "prompt for a custom glyph sequence")
}

func demoBasic() error {
	fmt.Println(ui.Bold("=== Basic Usage ==="))
	s, err := newSpinner()
	if err != nil {
		return err
	}
	s.Start()
	time.Sleep(time.Second) // simulate work
	s.SetStatus("Processing...")
	time.Sleep(time.Second)
	s.Stop()
	fmt.Println(ui.Green("Done!"))
	return nil
}

func demoInterleavedOutput() error {
	fmt.Println(ui.Bold("=== Spinner with Output ==="))
	s, err := newSpinner(snurr.WithSymbols(snurr.Earth))
	if err != nil {
		return err
	}

	s.Start()
	s.Write("Starting a long process...")
	for i := 1; i <= 3; i++ {
		time.Sleep(time.Second)
		s.Write(fstr.F("Step {}: data processing", i))
	}
	s.Stop()

	fmt.Println()
	fmt.Println("Spinner at end of line:")
	fmt.Print("Working ")
	tail, err := newSpinner(snurr.WithAppend(true))
	if err != nil {
		return err
	}
	tail.Start()
	time.Sleep(3 * time.Second)
	tail.Stop()
	fmt.Println()
	fmt.Println(ui.Green("Done!"))
	return nil
}

func demoCustomSpinner() error {
	fmt.Println(ui.Bold("=== Custom Spinner ==="))

	var symbols string
	err := survey.AskOne(&survey.Input{
		Message: "Glyph sequence:",
		Default: "◉◎",
	}, &symbols, survey.WithValidator(survey.Required))
	if err != nil {
		return err
	}

	s, err := newSpinner(snurr.WithSymbols(symbols), snurr.WithDelay(500*time.Millisecond))
	if err != nil {
		return err
	}
	s.Start()
	time.Sleep(2 * time.Second)
	s.Stop()
	fmt.Println(ui.Green("Done!"))
	return nil
}
