package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/ty05/booking-remind-sms/pkg/mysql"
	"github.com/ty05/booking-remind-sms/pkg/twilio"
)

type Config struct {
	API      API           `mapstructure:"api"`
	Database mysql.Config  `mapstructure:"database"`
	Twilio   twilio.Config `mapstructure:"twilio"`
}

type API struct {
	Port string `mapstructure:"port"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	// Credentials come from the environment, never from the config file.
	viper.BindEnv("twilio.account_sid", "TWILIO_ACCOUNT_SID")
	viper.BindEnv("twilio.auth_token", "TWILIO_AUTH_TOKEN")
	viper.BindEnv("twilio.from_number", "TWILIO_FROM_NUMBER")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
