package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/admiralbulldogtv/splicer/src/configure"
	"github.com/admiralbulldogtv/splicer/src/datastructures"
	"github.com/admiralbulldogtv/splicer/src/global"
	"github.com/admiralbulldogtv/splicer/src/manager"
	"github.com/admiralbulldogtv/splicer/src/mongo"
	"github.com/admiralbulldogtv/splicer/src/redis"
	"github.com/admiralbulldogtv/splicer/src/tts"
	"github.com/admiralbulldogtv/splicer/src/voices"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the http api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := configure.Init(cmd.Flags())
			if err != nil {
				return err
			}

			base, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx := global.NewCtx(base, config)

			var configs []datastructures.VoiceConfig
			if config.MongoURI != "" {
				mongoInst, err := mongo.NewInstance(ctx, config.MongoURI, config.MongoDB)
				if err != nil {
					logrus.WithError(err).Fatal("failed to start mongo")
				}
				ctx.Inst().Mongo = mongoInst

				if configs, err = mongoInst.FetchVoices(ctx); err != nil {
					logrus.WithError(err).Fatal("failed to fetch voices")
				}
			}

			if config.RedisURI != "" {
				redisInst, err := redis.NewInstance(ctx, config.RedisURI)
				if err != nil {
					logrus.WithError(err).Fatal("failed to start redis")
				}
				ctx.Inst().Redis = redisInst
			} else {
				logrus.Warn("no redis_uri, synthesis over http is disabled")
			}

			reg, err := voices.New(registryOptions(config), configs)
			if err != nil {
				return err
			}
			ctx.Inst().Voices = reg
			ctx.Inst().TTS = tts.NewInstance(ctx)

			<-manager.New(ctx)
			logrus.Info("shutdown")
			return nil
		},
	}

	cmd.Flags().String("bind", ":3000", "api listen address")

	return cmd
}
