package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Auth      AuthConfig
	Metrics   MetricsConfig
	Analytics AnalyticsConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int // bytes
}

type CORSConfig struct {
	AllowOrigins []string
}

// AuthConfig enables bearer-token checks on statement routes when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string
}

type MetricsConfig struct {
	Enabled bool
}

type AnalyticsConfig struct {
	// CostKeywords overrides the default fee keywords when non-empty.
	CostKeywords []string
	RulesFile    string
}

// analyticsRules is the optional YAML file named by ANALYTICS_RULES_FILE.
type analyticsRules struct {
	CostKeywords []string `yaml:"cost_keywords"`
}

// fasthttp spools multipart files of 16MB and more to temp files; uploads must stay in memory.
const maxBodyLimitMB = 15

var defaultAllowOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"https://mpesa-wrap.vercel.app",
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too (Docker/K8s)
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	bodyLimitMB, _ := strconv.Atoi(getEnv("SERVER_BODY_LIMIT_MB", strconv.Itoa(maxBodyLimitMB)))
	if bodyLimitMB <= 0 || bodyLimitMB > maxBodyLimitMB {
		bodyLimitMB = maxBodyLimitMB
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			BodyLimit:    bodyLimitMB * 1024 * 1024,
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", strings.Join(defaultAllowOrigins, ","))),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
		},
		Metrics: MetricsConfig{
			Enabled: getEnv("METRICS_ENABLED", "true") == "true",
		},
		Analytics: AnalyticsConfig{
			CostKeywords: splitList(getEnv("COST_KEYWORDS", "")),
			RulesFile:    getEnv("ANALYTICS_RULES_FILE", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if cfg.Analytics.RulesFile != "" {
		if err := cfg.Analytics.loadRulesFile(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// loadRulesFile overlays keywords from the YAML rules file onto the env values.
func (a *AnalyticsConfig) loadRulesFile() error {
	data, err := os.ReadFile(a.RulesFile)
	if err != nil {
		return fmt.Errorf("reading analytics rules file: %w", err)
	}

	var rules analyticsRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("parsing analytics rules file %s: %w", a.RulesFile, err)
	}
	if len(rules.CostKeywords) > 0 {
		a.CostKeywords = rules.CostKeywords
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
