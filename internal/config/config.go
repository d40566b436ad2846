package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultFile is picked up from the working directory when present.
const DefaultFile = "sdkref.yaml"

type Config struct {
	Spec      string          `koanf:"spec"`
	Readme    string          `koanf:"readme"`
	Templates TemplateConfig  `koanf:"templates"`
	Reference ReferenceConfig `koanf:"reference"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

// ReferenceConfig holds the static tables that drive extraction and
// ordering. Values are fixed for the whole run and passed into the
// reference builder rather than read as globals.
type ReferenceConfig struct {
	// MergeTags redirects a tag's methods into another resource's
	// section. Merged tags never contribute a display name.
	MergeTags map[string]string `koanf:"merge-tags"`

	// SkipTags are excluded entirely (no SDK methods).
	SkipTags []string `koanf:"skip-tags"`

	// DisplayNames overrides section headings per raw tag. Unmatched
	// tags use the tag name as-is.
	DisplayNames map[string]string `koanf:"display-names"`

	// PreferredOrder lists known resources first; auto-discovered
	// resources follow alphabetically.
	PreferredOrder []string `koanf:"preferred-order"`

	// LastResources always appear last, in this order.
	LastResources []string `koanf:"last-resources"`
}

// SkipSet returns SkipTags as a lookup set.
func (r ReferenceConfig) SkipSet() map[string]bool {
	set := make(map[string]bool, len(r.SkipTags))
	for _, tag := range r.SkipTags {
		set[tag] = true
	}
	return set
}

func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if _, err := os.Stat(DefaultFile); err == nil {
		if err := k.Load(file.Provider(DefaultFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.Readme == "" {
		return fmt.Errorf("readme file is required")
	}
	return nil
}

func defaults() map[string]any {
	return map[string]any{
		"spec":   "openapi.yaml",
		"readme": "README.md",
		"reference.merge-tags": map[string]any{
			"GMB Reviews":       "Accounts",
			"LinkedIn Mentions": "Accounts",
		},
		"reference.skip-tags": []string{
			"Inbox Access",
		},
		"reference.display-names": map[string]any{
			"Connect":       "Connect (OAuth)",
			"Reddit Search": "Reddit",
			"Messages":      "Messages (Inbox)",
			"Comments":      "Comments (Inbox)",
			"Reviews":       "Reviews (Inbox)",
		},
		"reference.preferred-order": []string{
			"Posts",
			"Accounts",
			"Profiles",
			"Analytics",
			"Account Groups",
			"Queue",
			"Webhooks",
			"API Keys",
			"Media",
			"Tools",
			"Users",
			"Usage",
			"Logs",
			"Connect",
			"Reddit Search",
		},
		"reference.last-resources": []string{
			"Invites",
		},
	}
}
