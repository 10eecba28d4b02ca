package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/metrocontratos/prod/"

type Config struct {
	Env      string `env:"GO_ENV" envDefault:"development"`
	Addr     string `env:"HTTP_ADDR" envDefault:":7070"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// BodyLimit uses echo's size notation, e.g. "2M".
	BodyLimit string `env:"HTTP_BODY_LIMIT" envDefault:"2M"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"database.db"`
	NodeID       int64  `env:"SNOWFLAKE_NODE_ID" envDefault:"1"`

	S3Region  string `env:"AWS_S3_REGION" envDefault:"us-east-2"`
	S3Bucket  string `env:"S3_BUCKET_NAME"`
	S3BaseURL string `env:"S3_PUBLIC_BASE_URL"`

	// LogoPath is read from disk; LogoKey from the bucket. Path wins.
	LogoPath string `env:"LOGO_PATH"`
	LogoKey  string `env:"LOGO_S3_KEY"`

	JWKSURL string `env:"AUTH_JWKS_URL"`

	RegistryURL    string        `env:"MINHARECEITA_URL" envDefault:"https://minhareceita.org/"`
	CNPJCacheTTL   time.Duration `env:"CNPJ_CACHE_TTL" envDefault:"10h"`
	CNPJCacheSweep time.Duration `env:"CNPJ_CACHE_SWEEP_INTERVAL" envDefault:"1h"`
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load fills the process environment (SSM Parameter Store in production, .env
// otherwise) and parses it into a Config.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(ctx); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads a Config from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func loadProdEnv(ctx context.Context) error {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-2"
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	loaded := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		// Export vars
		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), envVarsPrefix)
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			loaded++
		}
	}
	log.Debugf("loaded %d prod environment variables", loaded)
	return nil
}

// Level maps LOG_LEVEL onto gommon's levels, defaulting to INFO.
func (c *Config) Level() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
