package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/gltf-insight/animctl/client/rpc"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/common"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/output"
	"github.com/gltf-insight/animctl/common/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = logging.NewLogger("configCommand")

var supportedOptions = map[string]struct{}{
	common.RPCEndpointField: {},
	common.TimeoutField:     {},
	common.IdModeField:      {},
}

func GetCommand(v *viper.Viper, configPath *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:          "config",
		Short:        "Configuration management",
		SilenceUsage: true,
	}

	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Initialize config file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := common.InitDefaultConfig(*configPath)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to create config")
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.GreenStr("Config initialized successfully: %s", path))
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:          "show",
		Short:        "Show the effective configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := common.ReadConfigFile(v)
			if err != nil {
				return err
			}

			var b output.Builder
			if found {
				b.WriteLine("Config file: ", v.ConfigFileUsed())
			} else {
				b.WriteLine("Config file: ", output.YellowStr("%s (not found, using defaults)", v.ConfigFileUsed()))
			}

			section := v.GetStringMap(common.Section)
			keys := make([]string, 0, len(section))
			for key := range section {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				b.WriteField(key, section[key])
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	getCmd := &cobra.Command{
		Use:          "get [key]",
		Short:        "Get a config value",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := common.ReadConfigFile(v); err != nil {
				return err
			}

			key := args[0]
			value := v.Get(common.Key(key))
			if value == nil {
				logger.Warn().Msgf("Key %q is not found in config", key)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, value)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:          "set [key] [value]",
		Short:        "Set a config value",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, supported := supportedOptions[args[0]]; !supported {
				return fmt.Errorf("key %q is not known", args[0])
			}

			if err := validateOption(args[0], args[1]); err != nil {
				return err
			}

			if err := common.PatchConfig(v, map[string]any{
				args[0]: args[1],
			}, true); err != nil {
				logger.Error().Err(err).Msg("Failed to set config value")
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.GreenStr("Set %q to %q", args[0], args[1]))
			return nil
		},
	}

	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(getCmd)
	configCmd.AddCommand(setCmd)

	return configCmd
}

func validateOption(key, value string) error {
	switch key {
	case common.RPCEndpointField:
		_, err := rpc.NewClient(value, zerolog.Nop())
		return err
	case common.TimeoutField:
		_, err := time.ParseDuration(value)
		return err
	case common.IdModeField:
		return rpc.IdMode(value).Validate()
	}
	return nil
}
