package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	History struct {
		DSN      string `json:"dsn"`
		Disabled bool   `json:"disabled"`
	} `json:"history,omitempty"`

	Run struct {
		Repeats  int  `json:"repeats"`
		LampsOff bool `json:"lamps_off"`
	} `json:"run,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		History: History{
			DSN:      jsonCfg.History.DSN,
			Disabled: jsonCfg.History.Disabled,
		},
		Run: Run{
			Repeats:  jsonCfg.Run.Repeats,
			LampsOff: jsonCfg.Run.LampsOff,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
