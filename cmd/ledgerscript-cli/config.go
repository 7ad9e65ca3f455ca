// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/ledgerscript/codec"
)

const (
	configDirName  = ".ledgerscript-cli"
	defaultOutput  = "text"
	outputJSON     = "json"
	outputYAML     = "yaml"
	outputText     = "text"
	outputKey      = "output"
	configFileName = "config"
)

var errUnknownOutput = errors.New("unknown output format")

// initConfig points viper at ~/.ledgerscript-cli/config.yaml, creating it on
// first use.
func initConfig() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, configDirName)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, configFileName+".yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		_ = f.Close()
	}

	viper.SetConfigName(configFileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func outputFormat(cmd *cobra.Command) (string, error) {
	output, err := getConfigValue(cmd, outputKey, false)
	if err != nil {
		return "", fmt.Errorf("failed to get output format: %w", err)
	}
	if output == "" {
		return defaultOutput, nil
	}
	output = strings.ToLower(output)
	switch output {
	case outputText, outputJSON, outputYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownOutput, output)
	}
}

func printValue(cmd *cobra.Command, v fmt.Stringer) error {
	output, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch output {
	case outputJSON:
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(jsonBytes))
	case outputYAML:
		yamlBytes, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Fprint(w, string(yamlBytes))
	default:
		fmt.Fprintln(w, v.String())
	}
	return nil
}

func getConfigValue(cmd *cobra.Command, key string, required bool) (string, error) {
	// Check flags first
	if value, err := cmd.Flags().GetString(key); err == nil && value != "" {
		return value, nil
	}

	// Then check viper
	if value := viper.GetString(key); value != "" {
		return value, nil
	}

	if required {
		return "", fmt.Errorf("required value for %s not found", key)
	}

	return "", nil
}

func setConfigValue(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// decodeFileOrHex accepts either hex on the command line or a path to a file
// holding hex or raw script bytes.
func decodeFileOrHex(fileNameOrHex string) ([]byte, error) {
	if decoded, err := codec.LoadHex(fileNameOrHex, -1); err == nil {
		return decoded, nil
	}

	fileContents, err := os.ReadFile(fileNameOrHex)
	if err != nil {
		return nil, errors.New("unable to decode input as hex, or read as file path")
	}
	if decoded, err := codec.LoadHex(strings.TrimSpace(string(fileContents)), -1); err == nil {
		return decoded, nil
	}
	return fileContents, nil
}
