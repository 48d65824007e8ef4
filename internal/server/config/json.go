package config

import (
	"encoding/json"
	"os"

	"github.com/griotme/griot/internal/flagx"
	"github.com/griotme/griot/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// "15m" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC           string         `json:"endpoint_addr_grpc"`
	StorageDriver              string         `json:"storage_driver"`
	DatabaseDSN                string         `json:"database_dsn"`
	SecretKey                  string         `json:"secret_key"`
	ResetTokenValidityDuration timex.Duration `json:"reset_token_validity_duration"`
	BcryptCost                 int            `json:"bcrypt_cost"`
	PasswordMinLength          int            `json:"password_min_length"`
	LogLevel                   string         `json:"log_level"`
	BlobDriver                 string         `json:"blob_driver"`
	S3RootUser                 string         `json:"s3_root_user"`
	S3RootPassword             string         `json:"s3_root_password"`
	S3Bucket                   string         `json:"s3_bucket"`
	S3Region                   string         `json:"s3_region"`
	S3BaseEndpoint             string         `json:"s3_base_endpoint"`
	PresignValidityDuration    timex.Duration `json:"presign_validity_duration"`
}

// parseJson overlays config with the file named by -c/-config. Keys missing
// from the file keep their current value. Unreadable or malformed files panic.
func parseJson(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.StorageDriver, c.StorageDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.ResetTokenValidityDuration.Duration > 0 {
		config.ResetTokenValidityDuration = c.ResetTokenValidityDuration.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.PasswordMinLength > 0 {
		config.PasswordMinLength = c.PasswordMinLength
	}
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.BlobDriver, c.BlobDriver)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.PresignValidityDuration.Duration > 0 {
		config.PresignValidityDuration = c.PresignValidityDuration.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
