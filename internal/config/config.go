// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked for in the standard locations.
const FileName = "aocfetch.yaml"

type Type struct {
	Source string
	Data   map[string]interface{}
}

var Config Type

// Load reads the config file. An explicit path wins over AOC_CFG, which wins
// over the standard locations.
func Load(cfgFilePath ...string) (Type, error) {
	path, err := getConfigPath(cfgFilePath...)
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{
		Source: path,
		Data:   data}

	return Config, nil
}

// get traverses the map using a dotted key path
func (cfg *Type) get(key string) (any, error) {
	var current interface{} = cfg.Data

	for _, k := range strings.Split(key, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value found at %s", key)
		}
		current, ok = m[k]
		if !ok {
			return nil, fmt.Errorf("no value found at %s", key)
		}
	}

	return current, nil
}

func GetString(key string, defaultValue ...string) (string, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case int:
		// Years and days are often written unquoted.
		return fmt.Sprint(v), nil
	default:
		return "", errors.New("value is not a string")
	}
}

func getConfigPath(explicit ...string) (string, error) {
	if len(explicit) == 1 && explicit[0] != "" {
		return checkFile(explicit[0])
	}

	if p, ok := os.LookupEnv("AOC_CFG"); ok && p != "" {
		return checkFile(p)
	}

	var candidates []string = []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", file)
				return file, nil
			}
		}
	}
	return "", fmt.Errorf("no config file found in standard locations")
}

func checkFile(path string) (string, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("config file not found: %s", path)
	}
	if fileInfo.IsDir() {
		return "", fmt.Errorf("config path points to a directory: %s", path)
	}
	log.Debugf("using config file: %s", path)
	return path, nil
}
