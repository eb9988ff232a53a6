package main

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"os"
	"rlk/cmd/internal/domain/database"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/infrastructure/aws/storage"
	"rlk/cmd/internal/routes"
	"rlk/cmd/internal/service"
	"rlk/cmd/internal/utils/validators"
	"strings"
	"time"
)

const (
	envVarsPrefix = "/rlk/prod/"
	defaultPort   = "7070"
	defaultJWTTTL = time.Hour
)

func main() {
	validate := validator.New()
	validators.Register(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, err := database.Init()
	if err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	s3Client, err := storage.NewStorageClient(context.Background())
	if err != nil {
		log.Fatalf("failed to init storage client: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	routes.Register(e, &routes.Config{
		Auth: service.AuthConfig{
			Secret: []byte(secret),
			TTL:    jwtTTL(),
		},
		CORSOrigins: corsOrigins(),
	}, &routes.Dependencies{
		DB:       db,
		S3:       s3Client,
		Audit:    audit.NewLogger(),
		Validate: validate,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	if err := e.Start(":" + port); err != nil {
		log.Fatal(err)
	}
}

func jwtTTL() time.Duration {
	raw := os.Getenv("JWT_EXPIRES_IN")
	if raw == "" {
		return defaultJWTTTL
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Warnf("ignoring invalid JWT_EXPIRES_IN=%q, using %s", raw, defaultJWTTTL)
		return defaultJWTTTL
	}
	return ttl
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
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
			log.Fatalf("unable to load prod environment, %v", err)
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), envVarsPrefix)
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				log.Fatalf("unable to set environment variable, %v", err)
			}
			loaded++
		}
	}
	log.Infof("loaded %d prod environment variables", loaded)
}
