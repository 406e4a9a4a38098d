package cmd

import (
	"github.com/robmorgan/pulse/transport"
	"github.com/spf13/cobra"
)

var (
	flagBPM         float64
	flagBeatsPerBar int
	flagPPQ         int
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Musical time conversion toolkit",
	Long: `pulse converts musical time between seconds, ticks, bars:beats:sixteenths
and rhythmic notation, relative to a configurable transport.`,
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&flagBPM, "bpm", transport.DefaultTempo, "transport tempo in BPM")
	rootCmd.PersistentFlags().IntVar(&flagBeatsPerBar, "time-signature", transport.DefaultBeatsPerBar, "time signature numerator in quarter-note beats")
	rootCmd.PersistentFlags().IntVar(&flagPPQ, "ppq", transport.DefaultPPQ, "tick resolution in pulses per quarter note")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// newTransport builds the transport the subcommands convert against.
func newTransport() *transport.Transport {
	return transport.New(
		transport.WithTempo(flagBPM),
		transport.WithTimeSignature(flagBeatsPerBar),
		transport.WithPPQ(flagPPQ),
	)
}
