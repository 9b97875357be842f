package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/krancour/dashboard/pkg/file"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const envconfigPrefix = "DASHBOARD"

const (
	cacheBackendMemory = "memory"
	cacheBackendRedis  = "redis"
	cacheBackendNone   = "none"
)

// envConfig is configuration read from the environment.
type envConfig struct {
	APIAddress   string `envconfig:"API_ADDRESS"`
	CacheBackend string `envconfig:"CACHE_BACKEND" default:"memory"`
}

func getEnvConfig() (envConfig, error) {
	c := envConfig{}
	err := envconfig.Process(envconfigPrefix, &c)
	if err != nil {
		return c, errors.Wrap(
			err,
			"error getting dashctl configuration from environment",
		)
	}
	switch c.CacheBackend {
	case cacheBackendMemory, cacheBackendRedis, cacheBackendNone:
	default:
		return c, errors.Errorf(
			"unknown cache backend %q; supported backends: %s, %s, %s",
			c.CacheBackend,
			cacheBackendMemory,
			cacheBackendRedis,
			cacheBackendNone,
		)
	}
	return c, nil
}

// config is configuration persisted between invocations.
type config struct {
	APIAddress string `json:"apiAddress"`
}

func getConfig() (*config, error) {
	dashctlHome, err := getDashctlHome()
	if err != nil {
		return nil, errors.Wrapf(err, "error finding dashctl home")
	}
	dashctlConfigFile := filepath.Join(dashctlHome, "config")
	if !file.Exists(dashctlConfigFile) {
		return nil, errors.Errorf(
			"no dashctl configuration was found at %s; please use "+
				"`dashctl login` to continue\n",
			dashctlConfigFile,
		)
	}

	configBytes, err := ioutil.ReadFile(dashctlConfigFile)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading dashctl config file at %s",
			dashctlConfigFile,
		)
	}

	config := &config{}
	if err := json.Unmarshal(configBytes, config); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing dashctl config file at %s",
			dashctlConfigFile,
		)
	}

	return config, nil
}

func saveConfig(config *config) error {
	dashctlHome, err := getDashctlHome()
	if err != nil {
		return errors.Wrapf(err, "error finding dashctl home")
	}
	if err := os.MkdirAll(dashctlHome, 0700); err != nil {
		return errors.Wrapf(
			err,
			"error creating dashctl home at %s",
			dashctlHome,
		)
	}
	dashctlConfigFile := filepath.Join(dashctlHome, "config")

	configBytes, err := json.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	if err :=
		ioutil.WriteFile(dashctlConfigFile, configBytes, 0644); err != nil {
		return errors.Wrapf(err, "error writing to %s", dashctlConfigFile)
	}
	return nil
}

func getDashctlHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}
	return filepath.Join(homeDir, ".dashctl"), nil
}
