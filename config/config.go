package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
)

const (
	EnvTcpAddr         = "UNO_TCP_ADDR"
	EnvWsAddr          = "UNO_WS_ADDR"
	EnvHttpAddr        = "UNO_HTTP_ADDR"
	EnvStrategy        = "UNO_STRATEGY"
	EnvDecisionURL     = "UNO_DECISION_URL"
	EnvDecisionTimeout = "UNO_DECISION_TIMEOUT"
	EnvHandSize        = "UNO_HAND_SIZE"
)

type Config struct {
	TcpAddr         string
	WsAddr          string
	HttpAddr        string
	Strategy        string
	DecisionURL     string
	DecisionTimeout time.Duration
	HandSize        int
}

func Default() Config {
	return Config{
		TcpAddr:         ":9999",
		WsAddr:          ":9998",
		HttpAddr:        ":5000",
		Strategy:        consts.StrategyGood,
		DecisionTimeout: consts.DecisionTimeout,
		HandSize:        consts.HandSize,
	}
}

// Load reads the given dotenv files, .env by default, then the process
// environment. Variables already set in the environment win over the files
// and missing files are skipped. Empty variables keep their default.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	cfg := Default()
	setString(&cfg.TcpAddr, EnvTcpAddr)
	setString(&cfg.WsAddr, EnvWsAddr)
	setString(&cfg.HttpAddr, EnvHttpAddr)
	setString(&cfg.Strategy, EnvStrategy)
	setString(&cfg.DecisionURL, EnvDecisionURL)

	if v := os.Getenv(EnvDecisionTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil || timeout <= 0 {
			return Config{}, consts.ErrorsInputInvalid.Detail("%s=%q is not a positive duration", EnvDecisionTimeout, v)
		}
		cfg.DecisionTimeout = timeout
	}
	if v := os.Getenv(EnvHandSize); v != "" {
		handSize, err := strconv.Atoi(v)
		if err != nil || handSize <= 0 {
			return Config{}, consts.ErrorsInputInvalid.Detail("%s=%q is not a positive number", EnvHandSize, v)
		}
		cfg.HandSize = handSize
	}
	return cfg, nil
}

func setString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
