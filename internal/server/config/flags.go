package config

import (
	"flag"
	"os"
	"time"

	"github.com/griotme/griot/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   storage driver: postgres or memory
//	-d string   PostgreSQL DSN
//	-s string   HMAC secret for password reset links
//	-t int      password reset link validity, minutes
//	-k int      bcrypt cost
//	-n int      minimum password length
//	-l string   log level
//	-o string   blob driver: s3 or memory
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-w int      presigned URL validity, minutes
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-m", "-d", "-s", "-t", "-k", "-n", "-l", "-o", "-u", "-p", "-b", "-g", "-e", "-w",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.StorageDriver, "m", config.StorageDriver, "storage driver (postgres|memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	resetValidity := fs.Int("t", int(config.ResetTokenValidityDuration.Minutes()), "password reset link validity (in minutes)")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.IntVar(&config.PasswordMinLength, "n", config.PasswordMinLength, "minimum password length")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&config.BlobDriver, "o", config.BlobDriver, "blob driver (s3|memory)")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	presignValidity := fs.Int("w", int(config.PresignValidityDuration.Minutes()), "presigned URL validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ResetTokenValidityDuration = time.Duration(*resetValidity) * time.Minute
	config.PresignValidityDuration = time.Duration(*presignValidity) * time.Minute
}
