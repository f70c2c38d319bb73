package cli

import (
	"github.com/admiralbulldogtv/splicer/src/configure"
	"github.com/admiralbulldogtv/splicer/src/voices"
	"github.com/spf13/cobra"
)

// Root builds the splicer command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "splicer",
		Short:         "Concatenative speech synthesis from annotated word recordings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "config.yaml", "config file")
	root.PersistentFlags().String("level", "info", "log level")
	root.PersistentFlags().String("data-dir", "voices", "directory holding one sub directory per voice")

	root.AddCommand(synthCmd(), voicesCmd(), serveCmd())

	return root
}

func Execute() error {
	return Root().Execute()
}

func registry(config *configure.Config) (*voices.Registry, error) {
	return voices.New(registryOptions(config), nil)
}

func registryOptions(config *configure.Config) voices.Options {
	return voices.Options{
		DataDir:        config.DataDir,
		PhoneTiers:     config.Dataset.PhoneTiers,
		FrameSize:      config.Dataset.FrameSize,
		SpectralWeight: config.Synth.SpectralWeight,
	}
}
