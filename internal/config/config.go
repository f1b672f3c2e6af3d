package config

import (
	"errors"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Server Server `toml:"server"`
	Cache  Cache  `toml:"cache"`
	Auth   Auth   `toml:"auth"`
	Audit  Audit  `toml:"audit"`
}

type Server struct {
	Port int `toml:"port"`
}

type Cache struct {
	Capacity int `toml:"capacity"`
}

type Auth struct {
	Username string `toml:"username"`
	Password string `toml:"password"`

	// PasswordHash is derived from Password at load time; the plaintext is
	// dropped so only the bcrypt hash stays in memory.
	PasswordHash []byte `toml:"-"`
}

type Audit struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Load reads a TOML config file. A missing file is not an error: the
// defaults apply, so the service runs with zero configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("config: %s not found, using defaults", path)
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}
	if err := cfg.seal(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the zero-configuration setup: a small cache, the audit
// trail next to the binary, and a development-only admin credential.
func Default() *Config {
	cfg := &Config{
		Server: Server{Port: 8008},
		Cache:  Cache{Capacity: 1024},
		Auth:   Auth{Username: "admin", Password: "development-insecure-password"},
		Audit:  Audit{Enabled: true, Path: "cache-events.db"},
	}
	if err := cfg.seal(); err != nil {
		// bcrypt on a short constant cannot fail at the default cost
		log.Fatal("config: failed to hash default credential: ", err)
	}
	return cfg
}

// seal hashes the configured password and drops the plaintext.
func (c *Config) seal() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Auth.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.Auth.PasswordHash = hash
	c.Auth.Password = ""
	return nil
}

// CheckCredentials reports whether the supplied login matches the
// configured admin credential.
func (c *Config) CheckCredentials(username, password string) bool {
	if username != c.Auth.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.Auth.PasswordHash, []byte(password)) == nil
}
