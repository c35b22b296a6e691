// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

type NodeConfig struct {
	OpenTelemetryCollectorURL string
	LogLevel                  zerolog.Level
	LogFile                   string
	Env                       string
	Id                        string
	HealthPort                uint16
	SlotDuration              time.Duration
	CustodyReportInterval     time.Duration
}

type RawNodeConfig struct {
	OpenTelemetryCollectorURL string `mapstructure:"OpenTelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	LogLevel                  string `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	Env                       string `mapstructure:"Env" json:"env"`
	Id                        string `mapstructure:"Id" json:"id"`
	HealthPort                string `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	SlotDuration              string `mapstructure:"SlotDuration" json:"slotDuration" default:"400ms"`
	CustodyReportInterval     string `mapstructure:"CustodyReportInterval" json:"custodyReportInterval" default:"5m"`
}

func (c *RawNodeConfig) Validate() error {
	return nil
}

// NewNodeConfig parses RawNodeConfig into NodeConfig
func NewNodeConfig(rawConfig RawNodeConfig) (NodeConfig, error) {
	config := NodeConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel

	config.LogFile = rawConfig.LogFile
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL
	config.Env = rawConfig.Env
	config.Id = rawConfig.Id

	healthPort, err := strconv.ParseUint(rawConfig.HealthPort, 10, 16)
	if err != nil {
		return config, fmt.Errorf("unable to parse health port: %w", err)
	}
	config.HealthPort = uint16(healthPort)

	slotDuration, err := time.ParseDuration(rawConfig.SlotDuration)
	if err != nil {
		return config, fmt.Errorf("unable to parse slot duration: %w", err)
	}
	if slotDuration <= 0 {
		return config, fmt.Errorf("slot duration has to be positive")
	}
	config.SlotDuration = slotDuration

	custodyReportInterval, err := time.ParseDuration(rawConfig.CustodyReportInterval)
	if err != nil {
		return config, fmt.Errorf("unable to parse custody report interval: %w", err)
	}
	config.CustodyReportInterval = custodyReportInterval

	return config, nil
}
