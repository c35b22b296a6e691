// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/gateway-custody/config"
	"github.com/ChainSafe/gateway-custody/config/node"
)

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) TearDownTest() {
	os.Clearenv()
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidPath() {
	_, err := config.GetConfigFromFile("invalid", &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV() {
	_ = os.Setenv("GTW_NODE_LOGLEVEL", "info")
	_ = os.Setenv("GTW_NODE_LOGFILE", "out.log")
	_ = os.Setenv("GTW_NODE_ENV", "TEST")
	_ = os.Setenv("GTW_NODE_ID", "123")
	_ = os.Setenv("GTW_LEDGER_1", `{
   "type":"wallet",
   "domain":5,
   "identity":"0x0101",
   "owner":"0x0202"
}`)
	_ = os.Setenv("GTW_LEDGER_2", `{
   "type":"minter",
   "domain":9,
   "identity":"0x0303",
   "owner":"0x0404"
}`)

	cnf, err := config.GetConfigFromENV(&config.Config{LedgerConfigs: []map[string]interface{}{{
		"withdrawalDelay": 100,
	}, {
		"pauser": "0x0505",
	}}})

	s.Nil(err)
	s.Equal(config.Config{
		NodeConfig: node.NodeConfig{
			LogLevel:              1,
			LogFile:               "out.log",
			Env:                   "TEST",
			Id:                    "123",
			HealthPort:            9001,
			SlotDuration:          400 * time.Millisecond,
			CustodyReportInterval: 5 * time.Minute,
		},
		LedgerConfigs: []map[string]interface{}{
			{
				"type":            "wallet",
				"domain":          float64(5),
				"identity":        "0x0101",
				"owner":           "0x0202",
				"withdrawalDelay": 100,
			},
			{
				"type":     "minter",
				"domain":   float64(9),
				"identity": "0x0303",
				"owner":    "0x0404",
				"pauser":   "0x0505",
			},
		},
	}, *cnf)
}

type ConfigTestCase struct {
	name       string
	inConfig   config.RawConfig
	shouldFail bool
	errorMsg   string
	outConfig  config.Config
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile() {
	testCases := []ConfigTestCase{
		{
			name: "missing ledger type",
			inConfig: config.RawConfig{
				LedgerConfigs: []map[string]interface{}{{
					"domain":   float64(1),
					"identity": "0x0101",
				}},
			},
			shouldFail: true,
			errorMsg:   "ledger 'type' must be provided for every configured ledger",
			outConfig:  config.Config{},
		},
		{
			name: "invalid log level",
			inConfig: config.RawConfig{
				NodeConfig: node.RawNodeConfig{
					LogLevel: "invalid",
				},
				LedgerConfigs: []map[string]interface{}{{
					"type":   "wallet",
					"domain": float64(1),
				}},
			},
			shouldFail: true,
			errorMsg:   "unknown log level: invalid",
			outConfig:  config.Config{},
		},
		{
			name: "invalid slot duration",
			inConfig: config.RawConfig{
				NodeConfig: node.RawNodeConfig{
					LogLevel:     "info",
					SlotDuration: "2z",
				},
				LedgerConfigs: []map[string]interface{}{{
					"type":   "wallet",
					"domain": float64(1),
				}},
			},
			shouldFail: true,
			errorMsg:   "unable to parse slot duration: time: unknown unit \"z\" in duration \"2z\"",
			outConfig:  config.Config{},
		},
		{
			name: "set default values in config",
			inConfig: config.RawConfig{
				NodeConfig: node.RawNodeConfig{
					// LogLevel: use default value,
					// LogFile: use default value
					// HealthPort: use default value
				},
				LedgerConfigs: []map[string]interface{}{{
					"type":   "wallet",
					"domain": float64(1),
				}},
			},
			shouldFail: false,
			outConfig: config.Config{
				NodeConfig: node.NodeConfig{
					LogLevel:              1,
					LogFile:               "out.log",
					HealthPort:            9001,
					SlotDuration:          400 * time.Millisecond,
					CustodyReportInterval: 5 * time.Minute,
				},
				LedgerConfigs: []map[string]interface{}{{
					"type":   "wallet",
					"domain": float64(1),
				}},
			},
		},
		{
			name: "valid config",
			inConfig: config.RawConfig{
				NodeConfig: node.RawNodeConfig{
					LogLevel:              "debug",
					LogFile:               "custom.log",
					HealthPort:            "9002",
					SlotDuration:          "1s",
					CustodyReportInterval: "1m",
				},
				LedgerConfigs: []map[string]interface{}{{
					"type":     "minter",
					"domain":   float64(9),
					"identity": "0x0303",
				}},
			},
			shouldFail: false,
			outConfig: config.Config{
				NodeConfig: node.NodeConfig{
					LogLevel:              0,
					LogFile:               "custom.log",
					HealthPort:            9002,
					SlotDuration:          time.Second,
					CustodyReportInterval: time.Minute,
				},
				LedgerConfigs: []map[string]interface{}{{
					"type":     "minter",
					"domain":   float64(9),
					"identity": "0x0303",
				}},
			},
		},
	}

	for _, t := range testCases {
		s.Run(t.name, func() {
			file, _ := json.Marshal(t.inConfig)
			_ = os.WriteFile("test.json", file, 0644)

			conf, err := config.GetConfigFromFile("test.json", &config.Config{})

			_ = os.Remove("test.json")

			if t.shouldFail {
				s.NotNil(err)
				s.Equal(t.errorMsg, err.Error())
			} else {
				s.Nil(err)
				s.Equal(t.outConfig, *conf)
			}
		})
	}
}
