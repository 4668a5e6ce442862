package chrome

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Classes lists the CSS classes applied to each chrome element.
type Classes struct {
	Wrapper string `yaml:"wrapper"`
	Label   string `yaml:"label"`
	Help    string `yaml:"help"`
	Error   string `yaml:"error"`
	Tools   string `yaml:"tools"`
}

// Actions holds the visible text of the relation toolbar entries.
type Actions struct {
	Add  string `yaml:"add"`
	Edit string `yaml:"edit"`
}

// Template engines New can build over the template bundle.
const (
	EnginePongo2     = "pongo2"
	EngineGoTemplate = "go-template"
)

// Config drives chrome rendering. The zero value of any field means "keep the
// default" when configs are merged.
type Config struct {
	Classes Classes `yaml:"classes"`
	Actions Actions `yaml:"actions"`
	// HelpMarkup lets help text carry a small allow-listed set of inline
	// HTML elements. When false help text is always escaped.
	HelpMarkup bool `yaml:"help_markup"`
	// Partials maps partial keys (PartialLabel, ...) to template paths.
	Partials map[string]string `yaml:"partials"`
	// Engine selects the template engine: EnginePongo2 or EngineGoTemplate.
	Engine string `yaml:"engine"`
}

// DefaultConfig returns the built-in classes and action labels.
func DefaultConfig() Config {
	return Config{
		Classes: Classes{
			Wrapper: string(ClassWrapper),
			Help:    string(ClassHelp),
			Error:   string(ClassError),
			Tools:   string(ClassTools),
		},
		Actions: Actions{
			Add:  "Add",
			Edit: "Edit",
		},
		Engine: EnginePongo2,
	}
}

// ParseConfig decodes a YAML document and layers it over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("chrome: parse config: %w", err)
	}
	return DefaultConfig().Merge(overlay), nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("chrome: read config %q: %w", path, err)
	}
	return ParseConfig(data)
}

// Merge returns a copy of c with every non-empty value of other applied.
func (c Config) Merge(other Config) Config {
	out := c
	out.Classes.Wrapper = pick(c.Classes.Wrapper, other.Classes.Wrapper)
	out.Classes.Label = pick(c.Classes.Label, other.Classes.Label)
	out.Classes.Help = pick(c.Classes.Help, other.Classes.Help)
	out.Classes.Error = pick(c.Classes.Error, other.Classes.Error)
	out.Classes.Tools = pick(c.Classes.Tools, other.Classes.Tools)
	out.Actions.Add = pick(c.Actions.Add, other.Actions.Add)
	out.Actions.Edit = pick(c.Actions.Edit, other.Actions.Edit)
	out.HelpMarkup = c.HelpMarkup || other.HelpMarkup
	out.Engine = strings.ToLower(pick(c.Engine, other.Engine))

	if len(c.Partials) > 0 || len(other.Partials) > 0 {
		out.Partials = make(map[string]string, len(c.Partials)+len(other.Partials))
		for key, value := range c.Partials {
			out.Partials[key] = value
		}
		for key, value := range other.Partials {
			if key = strings.TrimSpace(key); key != "" && strings.TrimSpace(value) != "" {
				out.Partials[key] = strings.TrimSpace(value)
			}
		}
	}
	return out
}

// globals is the template global context seeded by New.
func (c Config) globals() map[string]any {
	return map[string]any{
		"classes": map[string]any{
			"wrapper": c.Classes.Wrapper,
			"label":   c.Classes.Label,
			"help":    c.Classes.Help,
			"error":   c.Classes.Error,
			"tools":   c.Classes.Tools,
		},
	}
}

func (c Config) template(partial string) string {
	if name := strings.TrimSpace(c.Partials[partial]); name != "" {
		return name
	}
	return defaultTemplates[partial]
}

func pick(current, override string) string {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return trimmed
	}
	return current
}
