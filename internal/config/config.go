package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	BaseURL       string        `yaml:"base_url"`
	DatabasePath  string        `yaml:"database_path"`
	APITimeout    time.Duration `yaml:"timeout"`
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenDuration time.Duration `yaml:"token_duration"`
	// ContentTTL is how long fetched content is served before the next
	// request triggers a fresh read.
	ContentTTL time.Duration `yaml:"content_ttl"`
	Staff      StaffConfig   `yaml:"staff"`
}

// StaffConfig holds the single credential guarding the lead export API.
// The password is stored bcrypt-hashed; tokens are minted on signin.
type StaffConfig struct {
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"password_hash"`
}

// UnmarshalYAML accepts duration fields in time.ParseDuration form
// ("30m", "1h") rather than raw nanoseconds.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		Addr          string      `yaml:"addr"`
		BaseURL       string      `yaml:"base_url"`
		DatabasePath  string      `yaml:"database_path"`
		APITimeout    string      `yaml:"timeout"`
		JWTSecret     string      `yaml:"jwt_secret"`
		TokenDuration string      `yaml:"token_duration"`
		ContentTTL    string      `yaml:"content_ttl"`
		Staff         StaffConfig `yaml:"staff"`
	}

	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}

	if r.Addr != "" {
		c.Addr = r.Addr
	}
	if r.BaseURL != "" {
		c.BaseURL = r.BaseURL
	}
	if r.DatabasePath != "" {
		c.DatabasePath = r.DatabasePath
	}
	if r.JWTSecret != "" {
		c.JWTSecret = r.JWTSecret
	}
	if r.Staff.Email != "" {
		c.Staff.Email = r.Staff.Email
	}
	if r.Staff.PasswordHash != "" {
		c.Staff.PasswordHash = r.Staff.PasswordHash
	}

	for _, f := range []struct {
		raw string
		dst *time.Duration
	}{
		{r.APITimeout, &c.APITimeout},
		{r.TokenDuration, &c.TokenDuration},
		{r.ContentTTL, &c.ContentTTL},
	} {
		if f.raw == "" {
			continue
		}
		d, err := time.ParseDuration(f.raw)
		if err != nil {
			return err
		}
		*f.dst = d
	}

	return nil
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("AURORA_ADDR", ":8080"),
		BaseURL:       getEnv("AURORA_BASE_URL", "https://auroraengineering.com"),
		DatabasePath:  getEnv("AURORA_DATABASE_PATH", "aurora.db"),
		APITimeout:    15 * time.Second,
		JWTSecret:     getEnv("AURORA_JWT_SECRET", "supersecretkey"),
		TokenDuration: 1 * time.Hour,
		ContentTTL:    1 * time.Hour,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
