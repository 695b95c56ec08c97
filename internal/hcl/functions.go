package hcl

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/mkvimball/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// evalContext builds the variables and functions visible to manifest
// expressions.
func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envValue(l.environ),
		},
		Functions: map[string]function.Function{
			"concat":   stdlib.ConcatFunc,
			"distinct": stdlib.DistinctFunc,
			"format":   stdlib.FormatFunc,
			"join":     stdlib.JoinFunc,
			"lower":    stdlib.LowerFunc,
			"upper":    stdlib.UpperFunc,
			"sort":     stdlib.SortFunc,
			"glob":     globFunc,
		},
	}
}

// envValue converts KEY=VALUE pairs into a map(string). Later duplicates win,
// matching os.Getenv.
func envValue(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}

// globFunc expands a file pattern into the sorted list of matching files.
var globFunc = function.New(&function.Spec{
	Description: "Returns the files matching a pattern, sorted. `**` matches any number of directories.",
	Params: []function.Parameter{
		{Name: "pattern", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.List(cty.String)),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		pattern := args[0].AsString()
		if pattern == "" {
			return cty.ListValEmpty(cty.String), function.NewArgErrorf(0, "pattern must not be empty")
		}

		matches, err := fsutil.Glob(pattern)
		if err != nil {
			return cty.ListValEmpty(cty.String), function.NewArgError(0, err)
		}
		if len(matches) == 0 {
			return cty.ListValEmpty(cty.String), nil
		}

		vals := make([]cty.Value, len(matches))
		for i, m := range matches {
			vals[i] = cty.StringVal(m)
		}
		return cty.ListVal(vals), nil
	},
})
