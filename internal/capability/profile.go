// Package capability describes which declarations the rules recognize and
// binds them to the declarations of one compilation.
package capability

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mpyw/placeholderlint/internal/qualname"
)

// ErrConfig is returned for unreadable or invalid profiles.
var ErrConfig = errors.New("invalid placeholderlint profile")

// Profile names the declarations both rules work with.
// All names use the "pkg/path.Member" or "pkg/path.Type.Member" format.
type Profile struct {
	// Sentinels are the placeholder values that stand in for a missing token.
	Sentinels []string `toml:"sentinels"`
	// Token is the cooperation-token capability.
	Token string `toml:"token"`
	// Values are token value types accepted as proof by identity only.
	Values []string `toml:"values"`
	// MethodContexts are types that carry a token for the method they are passed to.
	MethodContexts []string `toml:"method_contexts"`
	// Sequences are generic single-parameter sequence types, besides slices
	// and arrays, whose element may be a cooperation action.
	Sequences []string `toml:"sequences"`

	// TemplateFuncs parse their first argument as template text.
	TemplateFuncs []string `toml:"template_funcs"`
	// TemplateDelims are the action delimiters of template text.
	TemplateDelims [2]string `toml:"template_delims"`
}

// Default returns the profile for the standard library's context package.
func Default() Profile {
	return Profile{
		Sentinels:      []string{"context.Background", "context.TODO"},
		Token:          "context.Context",
		MethodContexts: []string{"net/http.Request", "testing.T", "testing.B", "testing.F"},
		Sequences:      []string{"iter.Seq"},
		TemplateFuncs:  []string{"text/template.Template.Parse", "html/template.Template.Parse"},
		TemplateDelims: [2]string{"{{", "}}"},
	}
}

// Load reads a TOML profile. Keys absent from the file keep their defaults.
func Load(path string) (Profile, error) {
	p := Default()

	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Profile{}, fmt.Errorf("%w: %s: unknown keys: %s", ErrConfig, path, strings.Join(keys, ", "))
	}

	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks that every name is qualified and the mandatory parts
// are present.
func (p Profile) Validate() error {
	if len(p.Sentinels) == 0 {
		return fmt.Errorf("%w: no sentinels", ErrConfig)
	}
	if p.Token == "" {
		return fmt.Errorf("%w: no token", ErrConfig)
	}
	if (p.TemplateDelims[0] == "") != (p.TemplateDelims[1] == "") {
		return fmt.Errorf("%w: template_delims needs both delimiters", ErrConfig)
	}

	lists := [][]string{p.Sentinels, {p.Token}, p.Values, p.MethodContexts, p.Sequences, p.TemplateFuncs}
	for _, list := range lists {
		for _, s := range list {
			if _, err := qualname.ParseStrict(s); err != nil {
				return fmt.Errorf("%w: %w", ErrConfig, err)
			}
		}
	}

	return nil
}

// AvailabilityMessage is the fixed message of the availability rule.
// Example: "context.Background and context.TODO must not be used when a
// context.Context is available".
func (p Profile) AvailabilityMessage() string {
	names := make([]string, len(p.Sentinels))
	for i, s := range p.Sentinels {
		names[i] = qualname.Parse(s).Short()
	}

	var list string
	switch len(names) {
	case 0:
		list = "placeholder tokens"
	case 1:
		list = names[0]
	default:
		list = strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}

	return fmt.Sprintf("%s must not be used when a %s is available", list, qualname.Parse(p.Token).Short())
}
