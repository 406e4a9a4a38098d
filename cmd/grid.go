package cmd

import (
	"fmt"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/pulse/timevalue"
	"github.com/spf13/cobra"
)

var flagGridCount int

func init() {
	gridCmd.Flags().IntVar(&flagGridCount, "count", 8, "number of boundaries to print")
	rootCmd.AddCommand(gridCmd)
}

var gridCmd = &cobra.Command{
	Use:   "grid [subdivision]",
	Short: "Prints upcoming grid boundaries for a subdivision",
	Long: `Prints the next grid boundaries for a rhythmic subdivision such as "8n" or
"4t", starting from the transport playhead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return grid(args[0])
	},
}

func grid(subdivision string) error {
	tr := newTransport()

	tv, err := timevalue.Parse(tr, subdivision)
	if err != nil {
		return errors.WithStackTrace(err)
	}

	size := tv.ToSeconds()
	if size <= 0 {
		return errors.WithStackTrace(fmt.Errorf("subdivision %q has no positive grid size", subdivision))
	}

	fmt.Printf("grid size: %vs (%v ticks)\n", size, tv.ToTicks())

	boundary := tr.NextSubdivision(size)
	for i := 0; i < flagGridCount; i++ {
		b, err := timevalue.FromSeconds(tr, boundary)
		if err != nil {
			return errors.WithStackTrace(err)
		}
		fmt.Printf("%2d: %8.4fs  %s\n", i+1, b.ToSeconds(), b.ToBarsBeatsSixteenths())
		boundary += size
	}
	return nil
}
