package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradhe/phone-number-parser/pkg/phone"
	"github.com/bradhe/phone-number-parser/pkg/render"
	"github.com/bradhe/phone-number-parser/pkg/ui"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const envPrefix = "PHONE_PARSER_"

type Config struct {
	Addr string

	// Region assumed for numbers typed without a country code.
	Region string

	LogLevel  string
	LogFormat string

	// Output format for numbers given on the command line.
	Format string

	// Serve UI assets off disk instead of the copy compiled in.
	Development  bool
	AssetBasedir string

	Serve       bool
	Interactive bool

	// Numbers given as arguments.
	Numbers []string
}

func getEnv(name, def string) string {
	if val, ok := os.LookupEnv(envPrefix + name); ok {
		return val
	}

	return def
}

func getEnvBool(name string, def bool) bool {
	if b, err := strconv.ParseBool(getEnv(name, "")); err == nil {
		return b
	}

	return def
}

// Load reads `.env` if there is one, then the environment, then args. Each
// step overrides the one before it.
func Load(args []string, output io.Writer) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("phone-number-parser", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Addr, "addr", getEnv("ADDR", "localhost:8081"), "Address to bind the server to.")
	fs.StringVar(&cfg.Region, "region", getEnv("REGION", phone.DefaultRegion), "Region to assume for numbers without a country code.")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnv("LOG_LEVEL", "info"), "One of debug, info, warn or error.")
	fs.StringVar(&cfg.LogFormat, "log-format", getEnv("LOG_FORMAT", "text"), "Either text or json.")
	fs.StringVar(&cfg.Format, "format", getEnv("FORMAT", string(render.FormatText)), "How to print parsed numbers: text, json or yaml.")
	fs.BoolVar(&cfg.Development, "development", getEnvBool("DEVELOPMENT", false), "Put the app in development mode. Basically load UI assets from disk instead of memory.")
	fs.StringVar(&cfg.AssetBasedir, "asset-basedir", getEnv("ASSET_BASEDIR", ui.DefaultBasedir), "Where UI assets live in development mode.")
	fs.BoolVar(&cfg.Serve, "serve", false, "Run the HTTP server even if numbers are given.")
	fs.BoolVar(&cfg.Interactive, "i", false, "Read numbers from stdin one per line.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Region = strings.ToUpper(cfg.Region)
	cfg.Numbers = fs.Args()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if !phone.SupportedRegion(c.Region) {
		return fmt.Errorf("unsupported region `%s`", c.Region)
	}

	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ShouldServe is true when there is nothing to parse from the command line.
func (c *Config) ShouldServe() bool {
	return c.Serve || (!c.Interactive && len(c.Numbers) == 0)
}
