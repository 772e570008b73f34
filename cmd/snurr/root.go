package main

import (
	"strings"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crazywolf132/snurr"
	"github.com/crazywolf132/snurr/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "snurr",
	Short: "A terminal spinner playground",
	Long: `Snurr animates a glyph sequence at the cursor position while your
program keeps working. Use subcommands like demo and styles to try it out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.SetUsageTemplate(ui.ColorHeadings(rootCmd.UsageTemplate()))

	flags := rootCmd.PersistentFlags()
	flags.Duration("delay", snurr.DefaultDelay, "time between animation frames")
	flags.String("style", "classic", "built-in symbol style (see `snurr styles`)")
	flags.Bool("append", false, "render the spinner after existing line content")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	for _, name := range []string{"delay", "style", "append", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("SNURR")
	viper.AutomaticEnv()
}

// Execute is the root entrypoint
func Execute() error {
	return rootCmd.Execute()
}

// newSpinner builds a spinner from the persistent flags; extra options
// override them.
func newSpinner(opts ...snurr.Option) (*snurr.Spinner, error) {
	style := strings.ToLower(viper.GetString("style"))
	symbols, ok := snurr.Styles[style]
	if !ok {
		return nil, errors.Errorf("unknown style %q, run `snurr styles` for the list", style)
	}

	base := []snurr.Option{
		snurr.WithSymbols(symbols),
		snurr.WithDelay(viper.GetDuration("delay")),
		snurr.WithAppend(viper.GetBool("append")),
	}
	s, err := snurr.New(append(base, opts...)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build spinner")
	}
	return s, nil
}
