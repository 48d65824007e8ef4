// Package config loads runtime configuration for the griot CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags -a, -i and -r.
//
// JSON example:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "5s",
//	  "request_timeout": "10s"
//	}
package config
