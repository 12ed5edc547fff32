package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/gltf-insight/animctl/client/rpc"
	"github.com/gltf-insight/animctl/common/check"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	RPCEndpoint string            `mapstructure:"rpc_endpoint"`
	Timeout     time.Duration     `mapstructure:"timeout"`
	IdMode      rpc.IdMode        `mapstructure:"id_mode"`
	Headers     map[string]string `mapstructure:"headers"`
}

// Section is the top-level key all options live under.
const Section = "animctl"

const (
	RPCEndpointField = "rpc_endpoint"
	TimeoutField     = "timeout"
	IdModeField      = "id_mode"
)

// EnvPrefix prefixes the environment overrides, e.g. ANIMCTL_RPC_ENDPOINT.
const EnvPrefix = "ANIMCTL"

const InitConfigTemplate = `---
# Configuration for sending animation updates to a running viewer
animctl:
  # JSON-RPC endpoint of the viewer. http(s)://, tcp:// and unix:// are supported.
  rpc_endpoint: "http://localhost:21264/v1"

  # Upper bound for one request/response exchange, e.g. "5s". 0 disables it.
  # timeout: "5s"

  # Request id: "none" sends notifications, "seq" numbers requests, "uuid" sends random ids.
  # id_mode: "none"

  # Extra HTTP headers sent with every request.
  # headers:
  #   X-Session: "demo"
`

var DefaultConfigPath string

func init() {
	homeDir, err := os.UserHomeDir()
	check.PanicIfErr(err)

	DefaultConfigPath = filepath.Join(homeDir, ".config/animctl/config.yaml")
}

func Key(field string) string {
	return Section + "." + field
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(Key(RPCEndpointField), rpc.DefaultEndpoint)
	v.SetDefault(Key(TimeoutField), time.Duration(0))
	v.SetDefault(Key(IdModeField), string(rpc.IdModeNone))

	for _, field := range []string{RPCEndpointField, TimeoutField, IdModeField} {
		check.PanicIfErr(v.BindEnv(Key(field), EnvPrefix+"_"+strings.ToUpper(field)))
	}
}

func decodeIdMode(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() == reflect.String && t == reflect.TypeOf(rpc.IdMode("")) {
		mode := rpc.IdMode(reflect.ValueOf(data).String())
		if mode == "" {
			return rpc.IdModeNone, nil
		}
		if err := mode.Validate(); err != nil {
			return nil, err
		}
		return mode, nil
	}
	return data, nil
}

func UpdateDecoderConfig(config *mapstructure.DecoderConfig) {
	config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		config.DecodeHook,
		mapstructure.StringToTimeDurationHookFunc(),
		decodeIdMode,
	)
}

// ReadConfigFile reads the config file set on v. A missing file is not an
// error: every option has a default.
func ReadConfigFile(v *viper.Viper) (bool, error) {
	err := v.ReadInConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) || errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// LoadConfig decodes the merged defaults, file, environment and flags.
func LoadConfig(v *viper.Viper) (Config, error) {
	var root struct {
		Config Config `mapstructure:"animctl"`
	}
	if err := v.Unmarshal(&root, UpdateDecoderConfig); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return root.Config, nil
}

func InitDefaultConfig(configPath string) (string, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	dirPath := filepath.Dir(configPath)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.WriteString(InitConfigTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to write template to config file: %w", err)
	}
	return configPath, nil
}

// PatchConfig sets keys of the animctl section and writes the file back,
// creating it from the template first when needed. Only the file contents
// are written: defaults, environment and flags bound to v stay out of it.
func PatchConfig(v *viper.Viper, delta map[string]any, force bool) error {
	configPath := v.ConfigFileUsed()
	check.PanicIfNotf(configPath != "", "config file is not set")

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if _, err := InitDefaultConfig(configPath); err != nil {
			return err
		}
	}

	file := viper.New()
	SetConfigFile(file, configPath)
	if _, err := ReadConfigFile(file); err != nil {
		return err
	}

	for key, value := range delta {
		if !force && file.InConfig(Key(key)) && file.GetString(Key(key)) != fmt.Sprint(value) {
			return fmt.Errorf("key %q already exists in the config file", key)
		}
	}

	if err := file.MergeConfigMap(map[string]any{Section: delta}); err != nil {
		return err
	}
	if err := file.WriteConfig(); err != nil {
		return err
	}

	_, err := ReadConfigFile(v)
	return err
}

// SetConfigFile sets the config file for the viper
func SetConfigFile(v *viper.Viper, cfgFile string) {
	if cfgFile == "" {
		cfgFile = DefaultConfigPath
	}
	v.SetConfigType("yaml")
	v.SetConfigFile(cfgFile)
}
