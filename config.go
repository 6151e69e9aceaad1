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

const configFileName = ".ordset.yaml"

type InputConfig struct {
	TrimSpace         bool  `yaml:"trim_space"`
	SkipEmpty         bool  `yaml:"skip_empty"`
	Numeric           bool  `yaml:"numeric"`
	ProgressThreshold int64 `yaml:"progress_threshold"`
}

type DedupConfig struct {
	BloomSize   uint `yaml:"bloom_size"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type CacheConfig struct {
	ExpirationMinutes int `yaml:"expiration_minutes"`
	CleanupMinutes    int `yaml:"cleanup_minutes"`
}

func (c CacheConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationMinutes) * time.Minute
}

func (c CacheConfig) Cleanup() time.Duration {
	return time.Duration(c.CleanupMinutes) * time.Minute
}

type Config struct {
	Input InputConfig `yaml:"input"`
	Dedup DedupConfig `yaml:"dedup"`
	Cache CacheConfig `yaml:"cache"`
}

var defaultConfig = Config{
	Input: InputConfig{
		TrimSpace:         true,
		SkipEmpty:         true,
		Numeric:           false,
		ProgressThreshold: 1 << 20,
	},
	Dedup: DedupConfig{
		BloomSize:   1 << 20,
		BloomHashes: 5,
	},
	Cache: CacheConfig{
		ExpirationMinutes: 30,
		CleanupMinutes:    5,
	},
}

// LoadConfig reads ~/.ordset.yaml. Any problem with the file falls back to
// the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads a config file. Keys missing from the file keep
// their default values.
func LoadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return &cfg, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		def := defaultConfig
		return &def, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	return &cfg, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(configPath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	success, info, _, _, reset := GetANSIColors()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")
		cfg := defaultConfig
		if err := writeConfigFile(configPath, &cfg); err != nil {
			return err
		}
		fmt.Printf("%sCreated default configuration at: %s%s\n\n", success, configPath, reset)
	}

	cfg, err := LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("ordset configuration (%s)\n", configPath)
	fmt.Printf("═══════════════════════════════════\n\n")

	fmt.Printf("%sinput%s\n", info, reset)
	fmt.Printf("  • trim_space: %v\n", cfg.Input.TrimSpace)
	fmt.Printf("  • skip_empty: %v\n", cfg.Input.SkipEmpty)
	fmt.Printf("  • numeric: %v\n", cfg.Input.Numeric)
	fmt.Printf("  • progress_threshold: %d bytes\n\n", cfg.Input.ProgressThreshold)

	fmt.Printf("%sdedup%s\n", info, reset)
	fmt.Printf("  • bloom_size: %d bits\n", cfg.Dedup.BloomSize)
	fmt.Printf("  • bloom_hashes: %d\n\n", cfg.Dedup.BloomHashes)

	fmt.Printf("%scache%s\n", info, reset)
	fmt.Printf("  • expiration_minutes: %d\n", cfg.Cache.ExpirationMinutes)
	fmt.Printf("  • cleanup_minutes: %d\n", cfg.Cache.CleanupMinutes)

	return nil
}
