package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/CarlosParra69/Citas-sub001/internal/flagx"
	"github.com/CarlosParra69/Citas-sub001/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be written either as strings like "15s"
// or as integer nanoseconds.
type JSONConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DataDir             string         `json:"data_dir"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flag. If no flag is given, nothing is loaded. Empty fields
// in the file leave the current value untouched.
//
// Intended usage is: defaults -> parseEnv -> parseJSON -> parseFlags, where
// later stages override earlier ones.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
}
