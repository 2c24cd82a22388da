package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	LLM       LLMConfig       `yaml:"llm"`
	Revision  RevisionConfig  `yaml:"revision"`
	Redis     RedisConfig     `yaml:"redis"`
	Mail      MailConfig      `yaml:"mail"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type DatabaseConfig struct {
	Type string `yaml:"type"` // sqlite, mysql
	DSN  string `yaml:"dsn"`
}

type LLMConfig struct {
	APIURL      string  `yaml:"api_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// RevisionConfig 导师对齐修订引擎配置
type RevisionConfig struct {
	EngineURL string        `yaml:"engine_url"`
	APIKey    string        `yaml:"api_key"`
	Timeout   time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	URL string `yaml:"url"` // 为空时限流器退化为内存实现
}

type MailConfig struct {
	APIURL string `yaml:"api_url"`
	APIKey string `yaml:"api_key"`
	From   string `yaml:"from"`
}

type RateLimitConfig struct {
	Enabled   bool          `yaml:"enabled"`
	PerMinute int           `yaml:"per_minute"`
	Window    time.Duration `yaml:"window"`
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

func loadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			DSN:  "./data/thesisai.db",
		},
		LLM: LLMConfig{
			APIURL:      "https://api.openai.com/v1",
			Model:       "gpt-4o",
			MaxTokens:   4096,
			Temperature: 0.3,
		},
		Revision: RevisionConfig{
			Timeout: 60 * time.Second,
		},
		Mail: MailConfig{
			APIURL: "https://api.resend.com",
			From:   "ThesisAI <notifications@thesisai.app>",
		},
		RateLimit: RateLimitConfig{
			Enabled:   true,
			PerMinute: 20,
			Window:    time.Minute,
		},
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	// 环境变量优先级高于配置文件
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		config.LLM.APIURL = baseURL
	}
	if model := os.Getenv("OPENAI_MODEL_NAME"); model != "" {
		config.LLM.Model = model
	}

	if engineURL := os.Getenv("REVISION_ENGINE_URL"); engineURL != "" {
		config.Revision.EngineURL = engineURL
	}
	if engineKey := os.Getenv("REVISION_ENGINE_KEY"); engineKey != "" {
		config.Revision.APIKey = engineKey
	}

	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		config.Database.Type = dbType
	}
	if dbDSN := os.Getenv("DB_DSN"); dbDSN != "" {
		config.Database.DSN = dbDSN
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		config.Redis.URL = redisURL
	}

	if mailKey := os.Getenv("MAIL_API_KEY"); mailKey != "" {
		config.Mail.APIKey = mailKey
	}
	if mailFrom := os.Getenv("MAIL_FROM"); mailFrom != "" {
		config.Mail.From = mailFrom
	}

	if perMinute := os.Getenv("RATE_LIMIT_PER_MINUTE"); perMinute != "" {
		if n, err := strconv.Atoi(perMinute); err == nil && n > 0 {
			config.RateLimit.PerMinute = n
		}
	}

	if config.Revision.Timeout <= 0 {
		config.Revision.Timeout = 60 * time.Second
	}
	if config.RateLimit.Window <= 0 {
		config.RateLimit.Window = time.Minute
	}

	return config
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func UpdateConfig(newCfg *Config) {
	cfg = newCfg
}
