package common

import (
	"github.com/gltf-insight/animctl/cli/service"
	"github.com/gltf-insight/animctl/client"
	"github.com/gltf-insight/animctl/client/rpc"
	"github.com/gltf-insight/animctl/common/check"
	"github.com/gltf-insight/animctl/common/version"
	"github.com/rs/zerolog"
)

var rpcClient client.Client

func InitRpcClient(cfg *Config, logger zerolog.Logger) error {
	headers := map[string]string{
		"User-Agent": version.UserAgent(),
	}
	for key, value := range cfg.Headers {
		headers[key] = value
	}

	c, err := rpc.NewClientWithConfig(rpc.Config{
		Endpoint: cfg.RPCEndpoint,
		Headers:  headers,
		Timeout:  cfg.Timeout,
		IdMode:   cfg.IdMode,
	}, logger)
	if err != nil {
		return err
	}
	rpcClient = c
	return nil
}

// SetRpcClient replaces the client, e.g. with a mock in tests.
func SetRpcClient(c client.Client) {
	rpcClient = c
}

func GetRpcClient() client.Client {
	check.PanicIfNot(rpcClient != nil)
	return rpcClient
}

func GetService() *service.Service {
	return service.NewService(GetRpcClient())
}
