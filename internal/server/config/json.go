package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. Pointer fields
// distinguish "absent" from "set to zero value" so the overlay never
// clobbers earlier sources with blanks.
type JsonConfig struct {
	EndpointAddr          *string `json:"endpoint_addr"`
	DatabaseDSN           *string `json:"database_dsn"`
	DatabaseSkipTLSVerify *bool   `json:"database_skip_tls_verify"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c/-config flags; when
// neither is set, no JSON file is loaded. An unreadable or invalid file
// panics, as a misconfigured server should not start.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.DatabaseSkipTLSVerify != nil {
		config.DatabaseSkipTLSVerify = *c.DatabaseSkipTLSVerify
	}
}
