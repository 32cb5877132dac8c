// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlkit.yaml"

type KeysConfig struct {
	Numeric bool `yaml:"numeric"`
}

type FilterConfig struct {
	BloomBits   uint `yaml:"bloom_bits"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type RenderConfig struct {
	Color    bool          `yaml:"color"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type LoaderConfig struct {
	// Files at least this many bytes long get a progress bar.
	ProgressThreshold int64 `yaml:"progress_threshold"`
}

type Config struct {
	Keys   KeysConfig   `yaml:"keys"`
	Filter FilterConfig `yaml:"filter"`
	Render RenderConfig `yaml:"render"`
	Loader LoaderConfig `yaml:"loader"`
}

var defaultConfig = Config{
	Keys: KeysConfig{
		Numeric: false,
	},
	Filter: FilterConfig{
		BloomBits:   1 << 16,
		BloomHashes: 5,
	},
	Render: RenderConfig{
		Color:    true,
		CacheTTL: 10 * time.Minute,
	},
	Loader: LoaderConfig{
		ProgressThreshold: 1 << 20,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avlkit.yaml. A missing file or home directory yields
// the defaults without an error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at path. Settings the file leaves out keep
// their default values. On a read or parse failure the defaults are returned
// alongside the error so callers can carry on.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config := defaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if config.Filter.BloomBits == 0 || config.Filter.BloomHashes == 0 {
		config.Filter = defaultConfig.Filter
	}

	return &config, nil
}

func writeDefaultConfig(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("%sFailed to get config path: %v%s\n", Error, err, Reset)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Printf("%sFailed to create default config file: %v%s\n", Error, err, Reset)
			return
		}
		fmt.Printf("Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("%sFailed to load configuration: %v%s\n", Error, err, Reset)
		return
	}

	fmt.Printf("avlkit Configuration Settings\n")
	fmt.Printf("═════════════════════════════\n\n")

	if configExists {
		fmt.Printf("Config file: %s\n\n", configPath)
	} else {
		fmt.Printf("Config file: %s (newly created)\n\n", configPath)
	}

	fmt.Printf("%sKeys:%s\n", Green, Reset)
	fmt.Printf("  • numeric: %t\n", config.Keys.Numeric)
	if config.Keys.Numeric {
		fmt.Printf("    Keys are parsed as 64-bit integers and ordered numerically\n\n")
	} else {
		fmt.Printf("    Keys are kept as strings and ordered lexically\n\n")
	}

	fmt.Printf("%sMembership filter:%s\n", Green, Reset)
	fmt.Printf("  • bloom_bits: %d\n", config.Filter.BloomBits)
	fmt.Printf("  • bloom_hashes: %d\n\n", config.Filter.BloomHashes)

	fmt.Printf("%sRendering:%s\n", Green, Reset)
	fmt.Printf("  • color: %t\n", config.Render.Color)
	fmt.Printf("  • cache_ttl: %s\n\n", config.Render.CacheTTL)

	fmt.Printf("%sLoader:%s\n", Green, Reset)
	fmt.Printf("  • progress_threshold: %d bytes\n", config.Loader.ProgressThreshold)
}
