package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/kafka"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKGEN_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKGEN_HTTP_PORT" default:"4000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Generator struct {
	MaxPageSize int     `envconfig:"BOOKGEN_MAX_PAGE_SIZE" default:"1000"`
	MaxAverage  float64 `envconfig:"BOOKGEN_MAX_AVERAGE" default:"100"`
	// Workers <= 0 means GOMAXPROCS.
	Workers int     `envconfig:"BOOKGEN_WORKERS"`
	APIRPS  float64 `envconfig:"BOOKGEN_API_RPS" default:"100"`
}

type Cover struct {
	CacheSize int `envconfig:"COVER_CACHE_SIZE" default:"512"`
}

type Stats struct {
	Buffer int `envconfig:"STATS_BUFFER" default:"1024"`
}

type Config struct {
	Server    HTTPServer `yaml:"server"`
	Generator Generator
	Cover     Cover
	Stats     Stats
	Kafka     kafka.Config
	Log       logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config, err := load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func load(ops ...Option) (Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
