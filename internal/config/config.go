package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App                  `mapstructure:",squash"`
	Server   Server               `mapstructure:",squash"`
	Meta     Meta                 `mapstructure:",squash"`
	Cafe24   Cafe24               `mapstructure:",squash"`
	Report   Report               `mapstructure:",squash"`
	Accounts map[string]AdAccount `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	Version string `mapstructure:"meta_version"`
	URL     string `mapstructure:"-"`
}

// Cafe24 holds the storefront analytics credentials. The refresh token is the
// long-lived grant; access tokens are always fetched and cached at runtime.
type Cafe24 struct {
	MallID       string `mapstructure:"cafe24_mall_id"`
	ClientID     string `mapstructure:"cafe24_client_id"`
	ClientSecret string `mapstructure:"cafe24_client_secret"`
	RefreshToken string `mapstructure:"cafe24_refresh_token"`
	AnalyticsURL string `mapstructure:"cafe24_analytics_url"`
	APIVersion   string `mapstructure:"cafe24_api_version"`
}

// Enabled reports whether every credential needed for the storefront
// analytics feature is present. A partial block disables the feature.
func (c Cafe24) Enabled() bool {
	return c.MallID != "" && c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

type Report struct {
	Password        string `mapstructure:"report_password"`
	CreativeWorkers int    `mapstructure:"creative_fetch_workers"`
}

// AdAccount is one configured Meta ad account with its own access token
type AdAccount struct {
	Name  string
	ID    string
	Token string
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")

	viper.SetDefault("CAFE24_ANALYTICS_URL", "https://ca-api.cafe24data.com")
	viper.SetDefault("CAFE24_API_VERSION", "2025-03-01")

	viper.SetDefault("CREATIVE_FETCH_WORKERS", 10)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Accounts = loadAccountConfigs()

	if config.Report.Password == "" {
		logrus.Warn("REPORT_PASSWORD is not set; report endpoints will reject every request")
	}

	if !config.Cafe24.Enabled() {
		logrus.Warn("incomplete Cafe24 configuration; storefront analytics disabled")
	}

	return config, nil
}

// loadAccountConfigs reads the indexed ACCOUNT_CONFIG_{i}_NAME/ID/TOKEN
// blocks until the first incomplete one.
func loadAccountConfigs() map[string]AdAccount {
	accounts := make(map[string]AdAccount)

	for i := 1; ; i++ {
		name := viper.GetString(fmt.Sprintf("ACCOUNT_CONFIG_%d_NAME", i))
		id := viper.GetString(fmt.Sprintf("ACCOUNT_CONFIG_%d_ID", i))
		token := viper.GetString(fmt.Sprintf("ACCOUNT_CONFIG_%d_TOKEN", i))

		if name == "" || id == "" || token == "" {
			break
		}

		accounts[name] = AdAccount{Name: name, ID: id, Token: token}
	}

	if len(accounts) == 0 {
		logrus.Warn("no ad account configurations found (ACCOUNT_CONFIG_1_NAME/ID/TOKEN)")
	}

	return accounts
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
