package config

import (
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Store kinds
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Configuration for ledger service
type Configuration struct {
	ListenPort      int                 `json:"listen_port" mapstructure:"listen_port"`
	ShutdownTimeout time.Duration       `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	ReadTimeout     time.Duration       `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration       `json:"write_timeout" mapstructure:"write_timeout"`
	LogLevel        string              `json:"log_level" mapstructure:"log_level"`
	LogFile         string              `json:"log_file" mapstructure:"log_file"`
	Pretty          bool                `json:"pretty" mapstructure:"pretty"`
	Store           string              `json:"store" mapstructure:"store"`
	Mongo           MongoConfiguration  `json:"mongo" mapstructure:"mongo"`
	Ledger          LedgerConfiguration `json:"ledger" mapstructure:"ledger"`
}

type MongoConfiguration struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Database string `json:"database" mapstructure:"database"`
}

type LedgerConfiguration struct {
	// MaxSupply caps the sum of all balances, decimal or 0x hex
	MaxSupply string `json:"max_supply" mapstructure:"max_supply"`
}

func applyDefaultConfig(v *viper.Viper) {
	v.SetDefault("read_timeout", "30s")
	v.SetDefault("write_timeout", "30s")
	v.SetDefault("shutdown_timeout", "30s")
	v.SetDefault("listen_port", "8082")
	v.SetDefault("log_level", "info") // debug
	v.SetDefault("log_file", "")
	v.SetDefault("pretty", "false")
	v.SetDefault("store", StoreMemory)
	v.SetDefault("mongo.host", "localhost")
	v.SetDefault("mongo.port", "27017")
	v.SetDefault("mongo.database", "uledger")
	v.SetDefault("ledger.max_supply", "0x"+strings.Repeat("f", 64))
}

// LoadConfiguration reads file (if not empty) on top of the defaults, env vars win
func LoadConfiguration(file string) (*Configuration, error) {
	v := viper.New()
	applyDefaultConfig(v)
	if file != "" {
		v.SetConfigName(strings.TrimSuffix(path.Base(file), filepath.Ext(file)))
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Dir(file))
		if err := v.ReadInConfig(); nil != err {
			return nil, errors.Wrap(err, "failed to read from config file")
		}
	}
	v.SetEnvPrefix("uledger")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	var cfg Configuration
	if err := v.Unmarshal(&cfg); nil != err {
		return nil, errors.Wrap(err, "failed to unmarshal")
	}
	if cfg.Store != StoreMemory && cfg.Store != StoreMongo {
		return nil, errors.Errorf("unknown store %q", cfg.Store)
	}
	return &cfg, nil
}
