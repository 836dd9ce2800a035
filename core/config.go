package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	SessionBackendFile   = "file"
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

type (
	APIConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	SessionConfig struct {
		Backend string // file | redis | memory
		Path    string // file backend only
	}

	Config struct {
		Env      string // DEV (local; default), TEST, QA, PROD
		Build    string
		Debug    bool
		TestMode bool
		AppName  string

		API     APIConfig
		Session SessionConfig

		RedisURL          string
		RollbarToken      string
		SubmitConcurrency int
	}
)

// NewConfig loads the configuration from defaults, an optional dotenv file at
// `<configDir>/.env.<env>` and the environment (prefixed with the env name, eg. DEV_API_BASEURL).
func NewConfig(configDir ...string) (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Kala Academy")
	v.SetDefault("build", "dev")
	v.SetDefault("api.baseURL", "https://kedarbhame.pythonanywhere.com")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("session.backend", SessionBackendFile)
	v.SetDefault("session.path", defaultSessionPath())
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("submitConcurrency", 4)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dir := "config"
	if len(configDir) > 0 && configDir[0] != "" {
		dir = configDir[0]
	}
	dotEnvPath := filepath.Join(dir, ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:      env,
		Build:    v.GetString("build"),
		Debug:    v.GetBool("debug"),
		TestMode: v.GetBool("testMode"),
		AppName:  v.GetString("appName"),
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("api.baseURL"), "/"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Session: SessionConfig{
			Backend: strings.ToLower(v.GetString("session.backend")),
			Path:    v.GetString("session.path"),
		},
		RedisURL:          v.GetString("redis.url"),
		RollbarToken:      v.GetString("rollbarToken"),
		SubmitConcurrency: v.GetInt("submitConcurrency"),
	}
	return conf, conf.check()
}

func (c *Config) check() error {
	switch c.Session.Backend {
	case SessionBackendFile, SessionBackendRedis, SessionBackendMemory:
	default:
		return errors.Errorf("unknown session backend %q", c.Session.Backend)
	}
	if c.API.BaseURL == "" {
		return errors.New("api base URL is required")
	}
	if c.SubmitConcurrency < 1 {
		c.SubmitConcurrency = 1
	}
	return nil
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "kala", "session.json")
}
