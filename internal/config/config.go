// Package config loads wizard definitions and runtime settings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/interpretive-systems/pagewizard/internal/wizard"
	"github.com/spf13/viper"
)

// Page kinds understood by the shell.
const (
	KindInput  = "input"
	KindChoice = "choice"
	KindReview = "review"
)

// ErrInvalid wraps every definition validation failure.
var ErrInvalid = errors.New("invalid wizard definition")

// Config holds one wizard definition plus presentation settings.
type Config struct {
	Heading string       `mapstructure:"heading"`
	Scroll  ScrollConfig `mapstructure:"scroll"`
	Theme   string       `mapstructure:"theme"`
	Pages   []PageDef    `mapstructure:"pages"`
}

// ScrollConfig controls how the current page is brought into view.
type ScrollConfig struct {
	Offset    int    `mapstructure:"offset"`
	Container string `mapstructure:"container"`
}

// PageDef declares one page of the wizard.
type PageDef struct {
	Key                string              `mapstructure:"key"`
	Label              string              `mapstructure:"label"`
	Kind               string              `mapstructure:"kind"`
	Prompt             string              `mapstructure:"prompt"`
	Placeholder        string              `mapstructure:"placeholder"`
	Options            []string            `mapstructure:"options"`
	Includes           map[string][]string `mapstructure:"includes"` // option -> pages shown when picked; keys are lower-cased by viper
	Required           bool                `mapstructure:"required"`
	Hidden             bool                `mapstructure:"hidden"`
	MarkCompleteOnView bool                `mapstructure:"mark_complete_on_view"`
}

// State returns the initial coordinator state for the page.
func (p PageDef) State() wizard.PageState {
	st := wizard.DefaultPageState()
	st.Rendered = !p.Hidden
	st.Required = p.Required
	st.MarkCompleteOnView = p.MarkCompleteOnView || p.Kind == KindReview
	return st
}

// Load reads a wizard definition from path. Env var overrides use prefix PAGEWIZARD_.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("heading", "")
	v.SetDefault("theme", "dark")
	// Lines of heading kept above the current page in the body viewport.
	v.SetDefault("scroll.offset", 1)
	v.SetDefault("scroll.container", wizard.DefaultContainer)

	v.SetConfigFile(path)
	v.SetEnvPrefix("PAGEWIZARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks keys, kinds and cross-page references.
func (c Config) Validate() error {
	if len(c.Pages) == 0 {
		return fmt.Errorf("%w: no pages", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Pages))
	for i, p := range c.Pages {
		if p.Key == "" {
			return fmt.Errorf("%w: page %d has no key", ErrInvalid, i)
		}
		if seen[p.Key] {
			return fmt.Errorf("%w: duplicate page key %q", ErrInvalid, p.Key)
		}
		seen[p.Key] = true
		switch p.Kind {
		case KindInput, KindReview:
		case KindChoice:
			if len(p.Options) == 0 {
				return fmt.Errorf("%w: choice page %q has no options", ErrInvalid, p.Key)
			}
		default:
			return fmt.Errorf("%w: page %q has unknown kind %q", ErrInvalid, p.Key, p.Kind)
		}
	}
	for _, p := range c.Pages {
		for opt, targets := range p.Includes {
			if !contains(p.Options, opt) {
				return fmt.Errorf("%w: page %q includes pages for unknown option %q", ErrInvalid, p.Key, opt)
			}
			for _, t := range targets {
				if !seen[t] {
					return fmt.Errorf("%w: page %q option %q includes unknown page %q", ErrInvalid, p.Key, opt, t)
				}
				if t == p.Key {
					return fmt.Errorf("%w: page %q cannot include itself", ErrInvalid, p.Key)
				}
			}
		}
	}
	return nil
}

// DisplayLabel returns the page label, falling back to its key.
func (p PageDef) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Key
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
