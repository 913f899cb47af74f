package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the driver configuration, loaded from the environment.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	SolanaRPCEndpoint string `mapstructure:"solana_rpc_endpoint"`

	UserKeypairFile  string `mapstructure:"user_keypair_file"`
	AdminKeypairFile string `mapstructure:"admin_keypair_file"`

	IncStep uint32 `mapstructure:"inc_step"`
	DecStep uint32 `mapstructure:"dec_step"`
}

var defaultConfig = Config{
	LogLevel: "info",

	SolanaRPCEndpoint: "http://localhost:8899",

	UserKeypairFile:  "keypair/user.json",
	AdminKeypairFile: "keypair/admin.json",

	IncStep: 2,
	DecStep: 1,
}

func init() {
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	_ = viper.BindEnv("solana_rpc_endpoint", "SOLANA_RPC_ENDPOINT")

	_ = viper.BindEnv("user_keypair_file", "USER_KEYPAIR_FILE")
	_ = viper.BindEnv("admin_keypair_file", "ADMIN_KEYPAIR_FILE")

	_ = viper.BindEnv("inc_step", "INC_STEP")
	_ = viper.BindEnv("dec_step", "DEC_STEP")
}

func loadConfig() (*Config, error) {
	config := defaultConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	return &config, nil
}
