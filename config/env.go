// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type wrapper struct {
	Config RawConfig `json:"gtw"`
}

const EnvPrefix = "GTW"

func loadFromEnv() (RawConfig, error) {
	// load node config
	jsonNodeConfig, err := loadENVToJsonStructure()
	if err != nil {
		return RawConfig{}, err
	}
	c := &wrapper{}
	err = json.Unmarshal(jsonNodeConfig, c)
	if err != nil {
		return RawConfig{}, err
	}
	rawConfig := c.Config

	// load ledger configs
	index := 1
	for {
		rawLedgerConfig := os.Getenv(fmt.Sprintf("%s_LEDGER_%d", EnvPrefix, index))
		if rawLedgerConfig == "" {
			break
		}
		var lc map[string]interface{}
		err = json.Unmarshal([]byte(rawLedgerConfig), &lc)
		if err != nil {
			return RawConfig{}, err
		}
		rawConfig.LedgerConfigs = append(rawConfig.LedgerConfigs, lc)
		index++
	}

	return rawConfig, nil
}

func loadENVToJsonStructure() ([]byte, error) {
	structure := map[string]interface{}{}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, EnvPrefix+"_") {
			pair := strings.SplitN(e, "=", 2)
			indexes := strings.Split(pair[0], "_")
			mountMap(structure, indexes, pair[1])
		}
	}
	return json.MarshalIndent(structure, "", "    ")
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}
