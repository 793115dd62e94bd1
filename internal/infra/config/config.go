package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the full process configuration.
type Config struct {
	Discord     DiscordConfig     `mapstructure:"discord"`
	Frankfurter FrankfurterConfig `mapstructure:"frankfurter"`
	Server      ServerConfig      `mapstructure:"server"`
}

// DiscordConfig configures the gateway session and command handling.
type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	SuperAdminID  string `mapstructure:"super_admin_id"`  // user ID allowed to bypass guild admin checks
	CommandPrefix string `mapstructure:"command_prefix"`  // single-character message command prefix
}

// FrankfurterConfig configures the exchange-rate provider client.
type FrankfurterConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds
}

// ServerConfig configures the liveness HTTP endpoint.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LoadConfig resolves configuration in order:
// 1. defaults
// 2. config.yaml (optional)
// 3. .env file / process environment
// 4. command-line flags
func LoadConfig() (*Config, error) {
	// .env is optional; ignore the error when it is absent.
	godotenv.Load(".env")

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.ReadInConfig() // no error if the file is missing

	v.AutomaticEnv()
	setupEnvAliases(v)
	setupFlags(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setupEnvAliases(v *viper.Viper) {
	// DISCORD_TOKEN, DEV_ID and PORT keep the names the hosting
	// environment already uses.
	v.BindEnv("discord.token", "DISCORD_TOKEN")
	v.BindEnv("discord.super_admin_id", "DEV_ID")
	v.BindEnv("discord.command_prefix", "COMMAND_PREFIX")

	v.BindEnv("frankfurter.base_url", "FRANKFURTER_BASE_URL")
	v.BindEnv("frankfurter.request_timeout", "FRANKFURTER_REQUEST_TIMEOUT")

	v.BindEnv("server.port", "PORT")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.super_admin_id", "")
	v.SetDefault("discord.command_prefix", ".")

	v.SetDefault("frankfurter.base_url", "https://api.frankfurter.app")
	v.SetDefault("frankfurter.request_timeout", 30)

	v.SetDefault("server.port", 3000)
}

func setupFlags(v *viper.Viper) {
	pflag.String("discord.token", "", "Discord bot token (env: DISCORD_TOKEN)")
	pflag.String("discord.super_admin_id", "", "Super-admin Discord user ID (env: DEV_ID)")
	pflag.String("discord.command_prefix", ".", "Message command prefix (env: COMMAND_PREFIX)")

	pflag.String("frankfurter.base_url", "https://api.frankfurter.app", "Frankfurter API base URL (env: FRANKFURTER_BASE_URL)")
	pflag.Int("frankfurter.request_timeout", 30, "Request timeout in seconds (env: FRANKFURTER_REQUEST_TIMEOUT)")

	pflag.Int("server.port", 3000, "Liveness HTTP server port (env: PORT)")

	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)
}

func validateConfig(cfg *Config) error {
	if cfg.Discord.Token == "" {
		return fmt.Errorf("discord.token is required (set DISCORD_TOKEN)")
	}
	if cfg.Discord.CommandPrefix == "" {
		return fmt.Errorf("discord.command_prefix must not be empty")
	}
	return nil
}
