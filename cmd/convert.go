package cmd

import (
	"fmt"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/pulse/timevalue"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [expression]",
	Short: "Converts a time expression into every representation",
	Long: `Converts a time expression into seconds, ticks, bars:beats:sixteenths and
the nearest rhythmic notation. Expressions take plain numbers ("1.5",
"500ms", "96i"), notation ("4n", "8t", "4n.", "1m"), positional time
("1:2:0.5"), now-relative offsets ("+4n") and grid snaps ("@8n").`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args[0])
	},
}

func convert(expr string) error {
	tr := newTransport()

	tv, err := timevalue.Parse(tr, expr)
	if err != nil {
		return errors.WithStackTrace(err)
	}

	fmt.Printf("seconds:  %v\n", tv.ToSeconds())
	fmt.Printf("ticks:    %v\n", tv.ToTicks())
	fmt.Printf("position: %v\n", tv.ToBarsBeatsSixteenths())
	fmt.Printf("notation: %v\n", tv.ToNotation())

	if midi, err := tv.ToMidi(); err == nil {
		fmt.Printf("midi:     %v\n", midi)
	}
	return nil
}
