package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/crazywolf132/fstr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crazywolf132/snurr"
	"github.com/crazywolf132/snurr/internal/ui"
)

var stylesPick bool

// stylesCmd represents "snurr styles"
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the built-in spinner styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if stylesPick {
			return pickStyle()
		}
		for _, name := range snurr.StyleNames() {
			fmt.Println(fstr.F("{}  {}", ui.Bold(name), ui.Gray(snurr.Styles[name])))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
	stylesCmd.Flags().BoolVar(&stylesPick, "pick", false, "pick a style interactively and preview it")
}

func pickStyle() error {
	var style string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Style").
				Options(huh.NewOptions(snurr.StyleNames()...)...).
				Value(&style),
		),
	).Run()
	if err != nil {
		return err
	}

	fmt.Println(fstr.F("Style: {}", ui.Bold(style)))
	s, err := snurr.New(
		snurr.WithSymbols(snurr.Styles[style]),
		snurr.WithDelay(viper.GetDuration("delay")),
	)
	if err != nil {
		return err
	}
	s.Start()
	time.Sleep(2 * time.Second)
	s.Stop()
	return nil
}
