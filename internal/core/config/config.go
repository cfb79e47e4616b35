package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
}

type JWT struct {
	Secret             string
	Issuer             string
	AccessTokenTTLHour int // 默认 168（7 天）
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// Placement 业务侧参数：分页与收件箱上限
type Placement struct {
	PageSize    int `mapstructure:"pageSize"`    // 默认 20
	MaxPageSize int `mapstructure:"maxPageSize"` // 默认 100
	InboxCap    int `mapstructure:"inboxCap"`    // 每用户通知保留条数，默认 100
}

type Config struct {
	App       App
	Log       Log
	JWT       JWT
	DB        DB
	Redis     Redis     `mapstructure:"redis"`
	Placement Placement `mapstructure:"placement"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.JWT.AccessTokenTTLHour <= 0 {
		c.JWT.AccessTokenTTLHour = 24 * 7
	}
	if c.Placement.PageSize <= 0 {
		c.Placement.PageSize = 20
	}
	if c.Placement.MaxPageSize <= 0 {
		c.Placement.MaxPageSize = 100
	}
	if c.Placement.InboxCap <= 0 {
		c.Placement.InboxCap = 100
	}
}
