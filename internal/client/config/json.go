package config

import (
	"encoding/json"
	"os"

	"github.com/griotme/griot/internal/flagx"
	"github.com/griotme/griot/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept strings like "3s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with the JSON file named by -c or -config.
// Only fields present in the file are applied. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
