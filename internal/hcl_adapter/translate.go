package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/jobseq/internal/config"
	"github.com/specialistvlad/jobseq/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// jobRefRoot is the root name of a `job.<name>` reference.
const jobRefRoot = "job"

// translateJob converts the HCL-specific job schema into the agnostic model.
func (l *Loader) translateJob(ctx context.Context, file string, b *jobBlock) (*config.Job, error) {
	dep, err := l.resolveDependsOn(ctx, b.DependsOn)
	if err != nil {
		return nil, fmt.Errorf("%s: job %q: %w", file, b.Name, err)
	}
	if b.Description != "" {
		ctxlog.FromContext(ctx).Debug("Job description.", "job", b.Name, "description", b.Description)
	}
	return &config.Job{
		Name:        b.Name,
		DependsOn:   dep,
		Description: b.Description,
		Source:      file,
	}, nil
}

// resolveDependsOn turns a depends_on expression into a job name. An omitted
// attribute or a null value yields an empty name.
func (l *Loader) resolveDependsOn(ctx context.Context, expr hcl.Expression) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if !isExprDefined(expr) {
		return "", nil
	}

	// A `job.<name>` reference names the dependency directly; it is never
	// evaluated because there is no `job` variable in scope. Keywords such
	// as null also convert to single-step traversals, so only multi-step
	// references are treated as job references here.
	if traversal, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() && len(traversal) > 1 {
		if name, ok := jobReference(traversal); ok {
			logger.Debug("Resolved depends_on reference.", "dependency", name)
			return name, nil
		}
		return "", fmt.Errorf("depends_on must reference a job as job.<name>, got %q at %s", traversal.RootName(), expr.Range())
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("invalid depends_on: %w", diags)
	}
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("depends_on must be known statically at %s", expr.Range())
	}
	if val.Type() == cty.Bool {
		return "", fmt.Errorf("depends_on must be a string, got bool at %s", expr.Range())
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("depends_on must be a string, got %s at %s", val.Type().FriendlyName(), expr.Range())
	}
	logger.Debug("Resolved depends_on value.", "dependency", str.AsString())
	return str.AsString(), nil
}

// jobReference extracts the name from a `job.<name>` traversal.
func jobReference(t hcl.Traversal) (string, bool) {
	if len(t) != 2 || t.RootName() != jobRefRoot {
		return "", false
	}
	attr, ok := t[1].(hcl.TraverseAttr)
	if !ok {
		return "", false
	}
	return attr.Name, true
}

// isExprDefined checks if an HCL expression was actually present in the source
// code. The decoder populates omitted optional attributes with zero-width
// placeholder expressions, so a nil check alone is not enough.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}
