package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gltf-insight/animctl/client/rpc"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/common"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/config"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/joints"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/morph"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/output"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/send"
	"github.com/gltf-insight/animctl/cmd/animctl/internal/version"
	"github.com/gltf-insight/animctl/common/check"
	"github.com/gltf-insight/animctl/common/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type RootCommand struct {
	baseCmd  *cobra.Command
	viper    *viper.Viper
	config   common.Config
	cfgFile  string
	logLevel string
	verbose  bool

	endpoint string
	timeout  time.Duration
	idMode   rpc.IdMode
}

var logger = logging.NewLogger("root")

const logLevelFlag = "log-level"

var noConfigCmd = map[string]struct{}{
	"help":             {},
	"completion":       {},
	"__complete":       {},
	"__completeNoDesc": {},
	"config":           {},
	"version":          {},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().baseCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, output.ErrorStr(err))
		os.Exit(1)
	}
}

func newRootCommand() *RootCommand {
	rootCmd := &RootCommand{
		viper:  viper.New(),
		idMode: rpc.IdModeNone,
	}

	rootCmd.baseCmd = &cobra.Command{
		Use:   "animctl",
		Short: "Send joint and morph target updates to a running glTF viewer over JSON-RPC",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.baseCmd.PersistentFlags()
	flags.StringVarP(&rootCmd.cfgFile, "config", "c", common.DefaultConfigPath, "Path to config file")
	flags.StringVarP(&rootCmd.logLevel, logLevelFlag, "l", "info", "Log level: trace|debug|info|warn|error|fatal|panic (default from LOG_LEVEL)")
	flags.BoolVarP(&common.Quiet, "quiet", "q", false, "Quiet mode (print only the reply)")
	flags.BoolVarP(&rootCmd.verbose, "verbose", "v", false, "Verbose mode (print logs)")
	flags.StringVarP(&rootCmd.endpoint, "endpoint", "e", "", "JSON-RPC endpoint (overrides "+common.RPCEndpointField+")")
	flags.DurationVar(&rootCmd.timeout, "timeout", 0, "Request timeout (overrides "+common.TimeoutField+")")
	flags.Var(&rootCmd.idMode, "id-mode", "Request id: none|seq|uuid (overrides "+common.IdModeField+")")

	common.SetDefaults(rootCmd.viper)
	check.PanicIfErr(rootCmd.viper.BindPFlag(common.Key(common.RPCEndpointField), flags.Lookup("endpoint")))
	check.PanicIfErr(rootCmd.viper.BindPFlag(common.Key(common.TimeoutField), flags.Lookup("timeout")))
	check.PanicIfErr(rootCmd.viper.BindPFlag(common.Key(common.IdModeField), flags.Lookup("id-mode")))

	rootCmd.registerSubCommands()
	return rootCmd
}

// registerSubCommands adds all subcommands to the root command
func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		config.GetCommand(rc.viper, &rc.cfgFile),
		joints.GetCommand(),
		morph.GetCommand(),
		send.GetCommand(),
		version.GetCommand(),
	)
}

func (rc *RootCommand) setup(cmd *cobra.Command) error {
	switch {
	case !rc.verbose:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case rc.baseCmd.PersistentFlags().Changed(logLevelFlag):
		if err := logging.TrySetupGlobalLevel(rc.logLevel); err != nil {
			return fmt.Errorf("invalid log level %q: %w", rc.logLevel, err)
		}
	default:
		logging.SetLogSeverityFromEnv()
	}

	common.SetConfigFile(rc.viper, rc.cfgFile)

	// Traverse up to find the top-level command
	for cmd.HasParent() && cmd.Parent() != rc.baseCmd {
		cmd = cmd.Parent()
	}
	if _, withoutConfig := noConfigCmd[cmd.Name()]; withoutConfig {
		return nil
	}

	if err := rc.loadConfig(); err != nil {
		return err
	}
	return common.InitRpcClient(&rc.config, logger)
}

// loadConfig loads the configuration from the config file
func (rc *RootCommand) loadConfig() error {
	found, err := common.ReadConfigFile(rc.viper)
	if err != nil {
		return err
	}
	if !found {
		logger.Debug().Str(logging.FieldConfigFile, rc.cfgFile).Msg("Config file not found, using defaults")
	}

	rc.config, err = common.LoadConfig(rc.viper)
	if err != nil {
		return err
	}

	logger.Debug().
		Str(logging.FieldUrl, rc.config.RPCEndpoint).
		Dur(logging.FieldDuration, rc.config.Timeout).
		Msg("Configuration loaded successfully")
	return nil
}
