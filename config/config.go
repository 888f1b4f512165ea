package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/swaplayer/bridge"
	"github.com/0xPolygon/swaplayer/common"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/registry"
	"github.com/0xPolygon/swaplayer/relayer"
	"github.com/0xPolygon/swaplayer/staging"
	"github.com/0xPolygon/swaplayer/swap/remote"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagComponents is the flag for components.
	FlagComponents = "components"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"

	EnvVarPrefix       = "SWAPLAYER"
	ConfigType         = "toml"
	SaveConfigFileName = "swaplayer_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

// StorageConfig is the configuration of the sqlite database holding the settlement state
type StorageConfig struct {
	// DBPath is the path of the sqlite file
	DBPath string `mapstructure:"DBPath"`
}

/*
Config represents the configuration of the swap layer settlement node
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config
	// Common Config that affects all the services
	Common common.Config
	// Storage is the config of the settlement database
	Storage StorageConfig
	// RPC is the config for the RPC server
	RPC jRPC.Config
	// Registry holds the custodian roles set on the first run
	Registry registry.Config
	// Relayer is the config of the relayer worker
	Relayer relayer.Config
	// SwapExecutor is the config of the client of the remote swap executor
	SwapExecutor remote.Config
	// Bridge holds the keys trusted to authenticate inbound fills
	Bridge bridge.Config
	// Staging is the config of the outbound handoffs
	Staging staging.Config
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	return LoadFile(filesData, saveConfigPath)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileContent := string(content)
		if fileExtension := getFileExtension(file); fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFile merges the defaults with files, renders the vars and decodes the result
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0, len(files)+3) //nolint:mnd
	fileData = append(fileData,
		FileData{Name: "default_mandatory_vars", Content: DefaultMandatoryVars},
		FileData{Name: "default_vars", Content: DefaultVars},
		FileData{Name: "default_values", Content: DefaultValues},
	)
	fileData = append(fileData, files...)

	renderedCfg, err := NewConfigRender(fileData, EnvVarPrefix).Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := saveConfigPath + "/" + SaveConfigFileName
		err = os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions)
		if err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}

	return LoadFileFromString(renderedCfg, ConfigType)
}

// LoadFileFromString decodes an already rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	if err := loadString(cfg, configFileData, configType, EnvVarPrefix); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfigToString renders cfg as TOML
func SaveConfigToString(cfg Config) (string, error) {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func loadString(cfg *Config, configData string, configType string, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	replacer := strings.NewReplacer(".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadConfig(bytes.NewBufferString(configData)); err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}

	return v.Unmarshal(cfg, decodeHooks...)
}
