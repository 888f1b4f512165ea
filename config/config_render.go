package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/0xPolygon/swaplayer/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

var (
	ErrCycleVars                 = errors.New("cycle vars")
	ErrMissingVars               = errors.New("missing vars")
	ErrUnsupportedConfigFileType = errors.New("unsupported config file type")

	// A = {{B}} is not valid TOML, it's quoted and marked before parsing and unquoted afterwards
	unquotedVarRe = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	quotedVarRe   = regexp.MustCompile(`=\s*\"\{\{([^}:]+):int\}\}\"`)
	markedVarRe   = regexp.MustCompile(`\{\{([^}:]+):int\}\}`)
)

type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges a list of TOML documents, later ones overriding earlier ones, and
// resolves the {{VAR}} references with the merged values or with environment variables
// named <prefix>_<VAR>
type ConfigRender struct {
	FilesData []FileData
	// LookupEnvFunc resolves environment variables, os.LookupEnv by default
	LookupEnvFunc func(key string) (string, bool)
	EnvPrefix     string
}

func NewConfigRender(filesData []FileData, envPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:     filesData,
		LookupEnvFunc: os.LookupEnv,
		EnvPrefix:     envPrefix,
	}
}

// Render merges all the files and resolves the vars. On error the partially rendered
// configuration is returned along with it.
func (c *ConfigRender) Render() (string, error) {
	merged, err := c.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return c.ResolveVars(merged)
}

func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, data := range c.FilesData {
		content := markVars(data.Content)
		if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
			log.Errorf("error loading file %s. Err:%v. FileData: %v", data.Name, err, content)
			return "", fmt.Errorf("fail to load converted template %s to toml. Err: %w", data.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return unquoteVars(string(marshaled)), nil
}

// ResolveVars replaces every var with its value. A var that can't be found anywhere returns
// ErrMissingVars, vars that only reference each other return ErrCycleVars.
func (c *ConfigRender) ResolveVars(data string) (string, error) {
	tpl, values, err := c.parse(data)
	if err != nil {
		return "", err
	}
	if missing := c.missingVars(tpl, values); len(missing) > 0 {
		rendered := unmarkVars(c.execute(tpl, values))
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", missing, ErrMissingVars)
	}

	// every round must resolve at least one var, otherwise the remaining ones form a cycle
	current := data
	pending := c.GetVars(current)
	for len(pending) > 0 {
		tpl, values, err = c.parse(current)
		if err != nil {
			return "", fmt.Errorf("fails to read template. Err: %w", err)
		}
		current = unquoteVars(unmarkVars(c.execute(tpl, values)))
		next := c.GetVars(current)
		if len(next) == len(pending) {
			return data, fmt.Errorf("not resolved cycle vars: %v. Err: %w", next, ErrCycleVars)
		}
		pending = next
	}
	return current, nil
}

// GetVars returns the vars referenced in data
func (c *ConfigRender) GetVars(data string) []string {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return 0, nil
	})
	return vars
}

func (c *ConfigRender) parse(data string) (*fasttemplate.Template, map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template. Err:%w", err)
	}
	k := koanf.New(".")
	content := markVars(data)
	if err = k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error parsing data. Content: %s. Err: %w", content, err)
	}
	return tpl, k.All(), nil
}

func (c *ConfigRender) execute(tpl *fasttemplate.Template, values map[string]interface{}) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := c.lookup(tag, values); ok {
			return w.Write([]byte(v))
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}

func (c *ConfigRender) missingVars(tpl *fasttemplate.Template, values map[string]interface{}) []string {
	var missing []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if _, ok := c.lookup(tag, values); !ok && !contains(missing, tag) {
			missing = append(missing, tag)
		}
		return 0, nil
	})
	return missing
}

// lookup gives priority to the environment over the values of the files
func (c *ConfigRender) lookup(tag string, values map[string]interface{}) (string, bool) {
	envKey := c.EnvPrefix + "_" + strings.ReplaceAll(tag, ".", "_")
	if v, ok := c.LookupEnvFunc(envKey); ok {
		return v, true
	}
	if v, ok := values[tag]; ok {
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}

func contains(vars []string, search string) bool {
	for _, v := range vars {
		if v == search {
			return true
		}
	}
	return false
}

func markVars(data string) string {
	return unquotedVarRe.ReplaceAllString(data, `= "{{${1}:int}}"`)
}

func unquoteVars(data string) string {
	return quotedVarRe.ReplaceAllString(data, `= {{${1}}}`)
}

func unmarkVars(data string) string {
	return markedVarRe.ReplaceAllString(data, `{{${1}}}`)
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser()); err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		tomlData, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}
