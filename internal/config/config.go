// Load envs from .env
// Load headline list from YAML
// Validate config
// Provide default values

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Credentials Credentials
	Search      Search
	Run         Run
	Paths       Paths
	Telegram    Telegram
	Headless    bool
	LogLevel    string
}

type Credentials struct {
	Email    string
	Password string
}

// Search criteria for the listing scanner.
type Search struct {
	Titles     []string
	Locations  []string
	Experience int
}

type Run struct {
	IntervalHours    int
	RotateProfile    bool
	ApplyJobs        bool
	EarlyAccess      bool
	MaxApplications  int
	EarlyAccessLimit int
}

type Paths struct {
	Resume    string // empty means discover a PDF in the working directory
	Headlines string
	DebugDir  string
}

type Telegram struct {
	Token  string
	ChatID int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Credentials: Credentials{
			Email:    os.Getenv("NAUKRI_EMAIL"),
			Password: os.Getenv("NAUKRI_PASSWORD"),
		},
		Search: Search{
			Titles:     splitList(env("JOB_TITLES", "DevOps Engineer, Site Reliability Engineer")),
			Locations:  splitList(env("JOB_LOCATIONS", "Remote")),
			Experience: envInt("JOB_EXPERIENCE", 2),
		},
		Run: Run{
			IntervalHours:    envInt("INTERVAL_HOURS", 1),
			RotateProfile:    envBool("RUN_SUMMARY_ROTATION", true),
			ApplyJobs:        envBool("RUN_JOB_APPLICATIONS", false),
			EarlyAccess:      envBool("EARLY_ACCESS_ROLES", false),
			MaxApplications:  envInt("MAX_APPLICATIONS", 3),
			EarlyAccessLimit: envInt("EARLY_ACCESS_ROLES_LIMIT", 2),
		},
		Paths: Paths{
			Resume:    os.Getenv("RESUME_PATH"),
			Headlines: env("HEADLINES_PATH", "configs/headlines.yaml"),
			DebugDir:  env("DEBUG_DIR", "debug"),
		},
		Telegram: Telegram{
			Token: os.Getenv("TELEGRAM_BOT_TOKEN"),
		},
		Headless: envBool("PW_HEADLESS", true),
		LogLevel: env("LOG_LEVEL", "info"),
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.Telegram.ChatID = id
	}

	if cfg.Credentials.Email == "" || cfg.Credentials.Password == "" {
		return nil, fmt.Errorf("NAUKRI_EMAIL and NAUKRI_PASSWORD are required")
	}

	if len(cfg.Search.Titles) == 0 || len(cfg.Search.Locations) == 0 {
		return nil, fmt.Errorf("JOB_TITLES and JOB_LOCATIONS must not be empty")
	}

	return cfg, nil
}

// ReporterEnabled reports whether both Telegram settings are present.
func (c *Config) ReporterEnabled() bool {
	return c.Telegram.Token != "" && c.Telegram.ChatID != 0
}

type headlineFile struct {
	Headlines []string `yaml:"headlines"`
}

// LoadHeadlines reads the ordered headline rotation list from the YAML file
// at Paths.Headlines.
func (c *Config) LoadHeadlines() ([]string, error) {
	data, err := os.ReadFile(c.Paths.Headlines)
	if err != nil {
		return nil, fmt.Errorf("read headline list: %w", err)
	}

	var f headlineFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse headline list: %w", err)
	}

	headlines := make([]string, 0, len(f.Headlines))
	for _, h := range f.Headlines {
		if h = strings.TrimSpace(h); h != "" {
			headlines = append(headlines, h)
		}
	}
	if len(headlines) == 0 {
		return nil, fmt.Errorf("headline list %s is empty", c.Paths.Headlines)
	}
	return headlines, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func envBool(key string, defaultValue bool) bool {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	return v == "true" || v == "1" || v == "yes"
}
