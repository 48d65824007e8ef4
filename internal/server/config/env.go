package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/griotme/griot/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvGRPCAddr          = "GRIOT_GRPC_ADDR"
	EnvStorageDriver     = "GRIOT_STORAGE_DRIVER"
	EnvDatabaseDSN       = "GRIOT_DATABASE_DSN"
	EnvSecretKey         = "GRIOT_SECRET_KEY"
	EnvResetTokenTTL     = "GRIOT_RESET_TOKEN_VALIDITY"
	EnvBcryptCost        = "GRIOT_BCRYPT_COST"
	EnvPasswordMinLength = "GRIOT_PASSWORD_MIN_LENGTH"
	EnvLogLevel          = "GRIOT_LOG_LEVEL"
	EnvBlobDriver        = "GRIOT_BLOB_DRIVER"
	EnvS3RootUser        = "GRIOT_S3_ROOT_USER"
	EnvS3RootPassword    = "GRIOT_S3_ROOT_PASSWORD"
	EnvS3Bucket          = "GRIOT_S3_BUCKET"
	EnvS3Region          = "GRIOT_S3_REGION"
	EnvS3BaseEndpoint    = "GRIOT_S3_BASE_ENDPOINT"
	EnvPresignTTL        = "GRIOT_PRESIGN_VALIDITY"
)

// loadDotEnv is a seam for godotenv.Load.
var loadDotEnv = godotenv.Load

// parseEnv overlays config with GRIOT_* variables. A dotenv file is loaded
// first: the one given with -env-file, or ./.env when present. Variables
// already set in the process environment win over the file.
func parseEnv(config *Config) {
	if path := flagx.EnvFile(); path != "" {
		if err := loadDotEnv(path); err != nil {
			panic(err)
		}
	} else if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	envString(&config.EndpointAddrGRPC, EnvGRPCAddr)
	envString(&config.StorageDriver, EnvStorageDriver)
	envString(&config.DatabaseDSN, EnvDatabaseDSN)
	envString(&config.SecretKey, EnvSecretKey)
	envDuration(&config.ResetTokenValidityDuration, EnvResetTokenTTL)
	envInt(&config.BcryptCost, EnvBcryptCost)
	envInt(&config.PasswordMinLength, EnvPasswordMinLength)
	envString(&config.LogLevel, EnvLogLevel)
	envString(&config.BlobDriver, EnvBlobDriver)
	envString(&config.S3RootUser, EnvS3RootUser)
	envString(&config.S3RootPassword, EnvS3RootPassword)
	envString(&config.S3Bucket, EnvS3Bucket)
	envString(&config.S3Region, EnvS3Region)
	envString(&config.S3BaseEndpoint, EnvS3BaseEndpoint)
	envDuration(&config.PresignValidityDuration, EnvPresignTTL)
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func envDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
