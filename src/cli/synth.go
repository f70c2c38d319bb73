package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/admiralbulldogtv/splicer/src/configure"
	"github.com/admiralbulldogtv/splicer/src/synth"
	"github.com/admiralbulldogtv/splicer/src/textparser"
	"github.com/admiralbulldogtv/splicer/src/tts"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type synthFlags struct {
	voice            string
	sentence         string
	phonemes         string
	noCrossfade      bool
	crossfadeOverlap float64
	noDualSimilarity bool
	outfile          string
	verbose          bool
}

func synthCmd() *cobra.Command {
	f := &synthFlags{}

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize a sentence to a wav file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := configure.Init(cmd.Flags())
			if err != nil {
				return err
			}
			if f.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			opts := f.options(cmd, config)
			if err := opts.Validate(); err != nil {
				return err
			}
			if strings.TrimSpace(f.sentence) == "" && strings.TrimSpace(f.phonemes) == "" {
				return fmt.Errorf("one of --sentence or --phonemes is required")
			}

			reg, err := registry(config)
			if err != nil {
				return err
			}
			s, err := reg.Get(f.voice)
			if err != nil {
				return err
			}

			var symbols []string
			if strings.TrimSpace(f.phonemes) != "" {
				symbols, err = textparser.ParsePhonemes(f.phonemes)
			} else {
				symbols, err = textparser.Phonemize(f.sentence, s.Voice())
			}
			if err != nil {
				return err
			}

			res, err := s.Synthesize(synth.Targets(symbols), opts)
			if err != nil {
				return err
			}

			if f.verbose {
				spew.Fdump(os.Stderr, tts.Segments(res.Plan))
			}

			if err := res.WriteFile(f.outfile); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"voice":    res.Voice,
				"outfile":  f.outfile,
				"duration": res.Duration(),
			}).Info("synthesized")
			return nil
		},
	}

	cmd.Flags().StringVar(&f.voice, "voice", "", "voice to synthesize with")
	cmd.Flags().StringVar(&f.sentence, "sentence", "", "sentence to speak")
	cmd.Flags().StringVar(&f.phonemes, "phonemes", "", "space separated ARPAbet, used instead of --sentence")
	cmd.Flags().BoolVar(&f.noCrossfade, "no-crossfade", false, "join segments end to end")
	cmd.Flags().Float64VarP(&f.crossfadeOverlap, "crossfade-overlap", "w", 1, "crossfade overlap fraction, 0 to 1")
	cmd.Flags().BoolVar(&f.noDualSimilarity, "no-dual-similarity", false, "select on phonemic context only")
	cmd.Flags().StringVarP(&f.outfile, "outfile", "o", "output.wav", "output wav path")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug output and dump the selection plan")
	_ = cmd.MarkFlagRequired("voice")

	return cmd
}

// options starts from the configured synth defaults; flags only apply when set.
func (f *synthFlags) options(cmd *cobra.Command, config *configure.Config) synth.Options {
	opts := synth.Options{
		Crossfade:        config.Synth.Crossfade,
		CrossfadeOverlap: config.Synth.CrossfadeOverlap,
		DualSimilarity:   config.Synth.DualSimilarity,
	}
	if f.noCrossfade {
		opts.Crossfade = false
	}
	if cmd.Flags().Changed("crossfade-overlap") {
		opts.CrossfadeOverlap = f.crossfadeOverlap
	}
	if f.noDualSimilarity {
		opts.DualSimilarity = false
	}
	return opts
}
