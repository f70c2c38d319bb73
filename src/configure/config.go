package configure

import (
	"bytes"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	ConfigFile string `mapstructure:"config_file" json:"config_file"`
	Level      string `mapstructure:"level" json:"level"`

	DataDir string `mapstructure:"data_dir" json:"data_dir"`

	ApiBind string   `mapstructure:"api_bind" json:"api_bind"`
	Cors    []string `mapstructure:"cors" json:"cors"`

	RedisURI string        `mapstructure:"redis_uri" json:"redis_uri"`
	RedisTTL time.Duration `mapstructure:"redis_ttl" json:"redis_ttl"`

	MongoURI string `mapstructure:"mongo_uri" json:"mongo_uri"`
	MongoDB  string `mapstructure:"mongo_db" json:"mongo_db"`

	Dataset DatasetConfig `mapstructure:"dataset" json:"dataset"`
	Synth   SynthConfig   `mapstructure:"synth" json:"synth"`
}

type DatasetConfig struct {
	PhoneTiers []string `mapstructure:"phone_tiers" json:"phone_tiers"`
	FrameSize  int      `mapstructure:"frame_size" json:"frame_size"`
}

type SynthConfig struct {
	Crossfade        bool    `mapstructure:"crossfade" json:"crossfade"`
	CrossfadeOverlap float64 `mapstructure:"crossfade_overlap" json:"crossfade_overlap"`
	DualSimilarity   bool    `mapstructure:"dual_similarity" json:"dual_similarity"`
	SpectralWeight   float64 `mapstructure:"spectral_weight" json:"spectral_weight"`
}

// default config
var defaultConf = Config{
	ConfigFile: "config.yaml",
	Level:      "info",
	DataDir:    "voices",
	ApiBind:    ":3000",
	Cors:       []string{"*"},
	RedisTTL:   10 * time.Minute,
	MongoDB:    "splicer",
	Dataset: DatasetConfig{
		PhoneTiers: []string{"phonetic", "phones"},
		FrameSize:  512,
	},
	Synth: SynthConfig{
		Crossfade:        true,
		CrossfadeOverlap: 1,
		DualSimilarity:   true,
		SpectralWeight:   1,
	},
}

func initLog(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetReportCaller(true)
	if l, err := logrus.ParseLevel(level); err == nil {
		logrus.SetLevel(l)
	}
}

// flag name -> config key
var flagKeys = map[string]string{
	"config":   "config_file",
	"level":    "level",
	"data-dir": "data_dir",
	"bind":     "api_bind",
}

// Init layers the config: built in defaults, then the config file, then the
// environment, then any flags that were set. flags may be nil.
func Init(flags *pflag.FlagSet) (*Config, error) {
	config := viper.New()

	// Default config
	b, err := json.Marshal(defaultConf)
	if err != nil {
		return nil, err
	}
	defaults := viper.New()
	defaults.SetConfigType("json")
	if err := defaults.ReadConfig(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	if err := config.MergeConfigMap(defaults.AllSettings()); err != nil {
		return nil, err
	}

	// Environment
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AllowEmptyEnv(true)
	config.AutomaticEnv()

	// Flags
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := config.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	// File
	config.SetConfigFile(config.GetString("config_file"))
	if err := config.MergeInConfig(); err != nil {
		logrus.WithError(err).Debug("using default config")
	}

	// Log
	initLog(config.GetString("level"))

	c := &Config{}
	if err := config.Unmarshal(c); err != nil {
		return nil, err
	}

	return c, nil
}
