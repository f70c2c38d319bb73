package cli

import (
	"fmt"
	"strings"

	"github.com/admiralbulldogtv/splicer/src/configure"
	"github.com/spf13/cobra"
)

func voicesCmd() *cobra.Command {
	var load bool

	cmd := &cobra.Command{
		Use:   "voices",
		Short: "List the voices under the data dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := configure.Init(cmd.Flags())
			if err != nil {
				return err
			}

			reg, err := registry(config)
			if err != nil {
				return err
			}

			if load {
				for _, name := range reg.Names() {
					if _, err := reg.Get(name); err != nil {
						return err
					}
				}
			}

			out := cmd.OutOrStdout()
			for _, v := range reg.List() {
				if !v.Loaded {
					fmt.Fprintln(out, v.Name)
					continue
				}
				fmt.Fprintf(out, "%s\twords=%d phonemes=%d rate=%d\t%s\n",
					v.Name, v.Words, v.Instances, v.SampleRate, strings.Join(v.Symbols, " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&load, "load", false, "load every voice and print its inventory")

	return cmd
}
