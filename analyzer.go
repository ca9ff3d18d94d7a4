// Package placeholderlint provides a go/analysis based analyzer for detecting
// placeholder values and placeholder syntax left in places where the real
// thing is at hand.
package placeholderlint

import (
	"errors"
	"fmt"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/placeholderlint/internal/availability"
	"github.com/mpyw/placeholderlint/internal/capability"
	"github.com/mpyw/placeholderlint/internal/diag"
	"github.com/mpyw/placeholderlint/internal/directive/ignore"
	"github.com/mpyw/placeholderlint/internal/interpolation"
	"github.com/mpyw/placeholderlint/internal/qualname"
	"github.com/mpyw/placeholderlint/internal/resolve"
	"github.com/mpyw/placeholderlint/internal/syntax"
)

const doc = `report placeholders used where the real thing is available

FL0008 (availability): context.Background and context.TODO referenced in a
function that already receives a context.Context, or a type that carries
one such as *http.Request or *testing.T.

FL0014 (interpolation): "${name}" placeholders left in printf format
strings and template text, which Go never expands.`

// Analyzer is the main analyzer for placeholderlint.
var Analyzer = New()

var (
	ErrNoInspector = errors.New("inspector analyzer result not found")
	ErrNoPrintf    = errors.New("printf analyzer result not found")
)

// options holds the flag values of one analyzer instance.
type options struct {
	availability  bool
	interpolation bool

	config         string
	sentinels      string
	token          string
	tokenValues    string
	methodContexts string
	sequences      string
	templateFuncs  string
}

// New returns an independent analyzer instance with its own flags.
func New() *analysis.Analyzer {
	opts := &options{}

	a := &analysis.Analyzer{
		Name:     "placeholderlint",
		Doc:      doc,
		URL:      "https://github.com/mpyw/placeholderlint",
		Requires: []*analysis.Analyzer{inspect.Analyzer, printf.Analyzer},
		Run:      opts.run,
	}

	a.Flags.BoolVar(&opts.availability, availability.Rule, true, "enable availability rule ("+availability.ID+")")
	a.Flags.BoolVar(&opts.interpolation, interpolation.Rule, true, "enable interpolation rule ("+interpolation.ID+")")
	a.Flags.StringVar(&opts.config, "config", "", "path to a TOML profile")
	a.Flags.StringVar(&opts.sentinels, "sentinels", "",
		"comma-separated list of placeholder token values (e.g., pkg.Func or pkg.Type.Member)")
	a.Flags.StringVar(&opts.token, "token", "", "the token type (e.g., context.Context)")
	a.Flags.StringVar(&opts.tokenValues, "token-values", "",
		"comma-separated list of token value types that prove a token by identity")
	a.Flags.StringVar(&opts.methodContexts, "method-contexts", "",
		"comma-separated list of types that carry a token (e.g., net/http.Request)")
	a.Flags.StringVar(&opts.sequences, "sequences", "",
		"comma-separated list of generic sequence types (e.g., iter.Seq)")
	a.Flags.StringVar(&opts.templateFuncs, "template-funcs", "",
		"comma-separated list of functions whose first argument is template text")

	return a
}

// profile loads the configured profile and applies flag overrides.
func (o *options) profile() (capability.Profile, error) {
	p := capability.Default()
	if o.config != "" {
		var err error
		if p, err = capability.Load(o.config); err != nil {
			return capability.Profile{}, err
		}
	}

	if s := qualname.Split(o.sentinels); len(s) > 0 {
		p.Sentinels = s
	}
	if o.token != "" {
		p.Token = strings.TrimSpace(o.token)
	}
	if s := qualname.Split(o.tokenValues); len(s) > 0 {
		p.Values = s
	}
	if s := qualname.Split(o.methodContexts); len(s) > 0 {
		p.MethodContexts = s
	}
	if s := qualname.Split(o.sequences); len(s) > 0 {
		p.Sequences = s
	}
	if s := qualname.Split(o.templateFuncs); len(s) > 0 {
		p.TemplateFuncs = s
	}

	if err := p.Validate(); err != nil {
		return capability.Profile{}, err
	}
	return p, nil
}

func (o *options) run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	formatters, ok := pass.ResultOf[printf.Analyzer].(*printf.Result)
	if !ok {
		return nil, ErrNoPrintf
	}

	profile, err := o.profile()
	if err != nil {
		return nil, fmt.Errorf("placeholderlint: %w", err)
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	resolver := resolve.New(pass.Pkg, pass.TypesInfo)
	set := profile.Bind(resolver)
	emitter := diag.NewEmitter(pass.Fset, diag.PassSink{Pass: pass}, ignoreMaps)

	enabled := make(ignore.EnabledRules)
	var checkers []interface {
		Check(node syntax.Cursor, em *diag.Emitter)
	}

	if o.availability && set.Active() {
		enabled[ignore.Availability] = true
		desc := availability.NewDescriptor(profile.AvailabilityMessage())
		checkers = append(checkers, availability.NewChecker(resolver, set, desc))
	}
	if o.interpolation {
		enabled[ignore.Interpolation] = true
		checkers = append(checkers, interpolation.NewChecker(resolver, formatters, set))
	}

	for file := range syntax.Root(insp).Children() {
		filename := pass.Fset.Position(file.Node().Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		for _, c := range checkers {
			c.Check(file, emitter)
		}
	}

	// Report unused ignore directives
	reportUnusedIgnores(pass, ignoreMaps, enabled)

	return nil, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
// Test files can be skipped via the driver's built-in -test flag.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) ignore.Maps {
	ignoreMaps := make(ignore.Maps)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps ignore.Maps, enabled ignore.EnabledRules) {
	for _, ignoreMap := range ignoreMaps {
		for _, unused := range ignoreMap.GetUnusedIgnores(enabled) {
			if len(unused.Rules) == 0 {
				pass.Reportf(unused.Pos, "unused placeholderlint:ignore directive")
				continue
			}

			names := make([]string, len(unused.Rules))
			for i, r := range unused.Rules {
				names[i] = string(r)
			}
			pass.Reportf(unused.Pos, "unused placeholderlint:ignore directive for rule(s): %s", strings.Join(names, ", "))
		}
	}
}
