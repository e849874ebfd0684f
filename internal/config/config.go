package config

import "github.com/spf13/viper"

type Config struct {
	MongoURI        string `mapstructure:"MONGO_URI"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	Port            string `mapstructure:"API_PORT"`
}

var envs = []string{
	"MONGO_URI", "MONGO_DATABASE", "JWT_SECRET", "STRIPE_SECRET_KEY", "API_PORT",
}

// Load reads configuration from the process environment. The .env file, if
// any, is loaded into the environment by main before this runs.
func Load() (Config, error) {
	var config Config
	for _, env := range envs {
		if err := viper.BindEnv(env); err != nil {
			return config, err
		}
	}
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}
	if config.Port == "" {
		config.Port = "5000"
	}
	return config, nil
}
