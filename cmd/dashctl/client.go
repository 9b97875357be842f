package main

import (
	"github.com/golang/glog"
	"github.com/krancour/dashboard"
	"github.com/krancour/dashboard/pkg/auth"
	"github.com/krancour/dashboard/pkg/redis"
	"github.com/krancour/dashboard/pkg/sessioncache"
	"github.com/krancour/dashboard/pkg/tokens"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// getAPIAddress resolves the API server address from, in order, the --server
// flag, the environment and the configuration saved at the last login.
func getAPIAddress(c *cli.Context, env envConfig) (string, error) {
	if address := c.String(flagServer); address != "" {
		return address, nil
	}
	if env.APIAddress != "" {
		return env.APIAddress, nil
	}
	config, err := getConfig()
	if err != nil {
		return "", errors.Wrap(err, "error retrieving configuration")
	}
	if config.APIAddress == "" {
		return "", errors.New(
			"no API server address is configured; use --server to specify one",
		)
	}
	return config.APIAddress, nil
}

func getSessionCache(env envConfig) (sessioncache.Cache, error) {
	switch env.CacheBackend {
	case cacheBackendRedis:
		redisConfig, err := redis.GetConfigFromEnvironment()
		if err != nil {
			return nil, err
		}
		glog.V(2).Infof(
			"using redis session cache at %s:%d",
			redisConfig.Host,
			redisConfig.Port,
		)
		return sessioncache.NewRedisCache(
			redis.Client(redisConfig),
			redisConfig.Prefix,
		), nil
	case cacheBackendNone:
		return nil, nil
	default:
		return sessioncache.NewMemoryCache(), nil
	}
}

// getService assembles an auth.Service for the configured API server along
// with the auth state it publishes to.
func getService(c *cli.Context) (*auth.Service, *auth.State, string, error) {
	env, err := getEnvConfig()
	if err != nil {
		return nil, nil, "", err
	}
	address, err := getAPIAddress(c, env)
	if err != nil {
		return nil, nil, "", err
	}
	tokenPath, err := tokens.DefaultPath()
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "error finding token file")
	}
	tokenStore := tokens.NewFileStore(tokenPath)
	cache, err := getSessionCache(env)
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "error configuring session cache")
	}
	state := auth.NewState()
	client := dashboard.NewClient(
		address,
		auth.ClientOptions(tokenStore, c.Bool(flagInsecure)),
	)
	return auth.NewService(client, tokenStore, cache, state), state, address, nil
}
