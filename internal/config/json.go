package config

import (
	"encoding/json"
	"os"

	"github.com/avolkovs/menuboard/internal/flagx"
	"github.com/avolkovs/menuboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the token lifetime can be given either as a string like
// "24h" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath          string         `json:"database_path"`
	EndpointAddr          string         `json:"endpoint_addr"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON is loaded. Fields left out of
// the file keep their current values. Read or unmarshal errors panic; the
// config stage has no sane fallback for a file the operator pointed at.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenValidityDuration.Duration != 0 {
		cfg.TokenValidityDuration = jc.TokenValidityDuration.Duration
	}
}
