package paramset

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/provide-io/oarrow/go/oarrow/pkg/logging"
	"github.com/provide-io/oarrow/go/oarrow/pkg/oarrow"
	oerrors "github.com/provide-io/oarrow/go/oarrow/pkg/oarrow/errors"
)

const rootBlock = "arrow"

// blockParams returns the value-holding parameters stored as attributes of
// block, in declaration order.
func blockParams(block string) []oarrow.Descriptor {
	var out []oarrow.Descriptor
	for _, d := range oarrow.Descriptors() {
		if d.Block == block && d.Attr != "" {
			out = append(out, d)
		}
	}
	return out
}

// blockSchema derives the HCL schema of block from the registry.
func blockSchema(block string) *hcl.BodySchema {
	schema := &hcl.BodySchema{}
	for _, d := range blockParams(block) {
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{Name: d.Attr})
	}
	if block == rootBlock {
		for _, d := range oarrow.Descriptors() {
			if d.Kind == oarrow.KindGroup {
				schema.Blocks = append(schema.Blocks, hcl.BlockHeaderSchema{Type: d.Block})
			}
		}
	}
	return schema
}

// LoadFile parses the HCL parameter document at path.
func LoadFile(path string, logger hclog.Logger) (*Set, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decodeBody(file.Body, path, logger)
}

// Decode parses an HCL parameter document held in memory. filename is used
// in diagnostics only.
func Decode(src []byte, filename string, logger hclog.Logger) (*Set, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decodeBody(file.Body, filename, logger)
}

type decoder struct {
	set    *Set
	logger hclog.Logger
	diags  hcl.Diagnostics
	errs   []error
}

func decodeBody(body hcl.Body, filename string, logger hclog.Logger) (*Set, error) {
	dec := &decoder{
		set:    New(),
		logger: logging.OrNull(logger).Named("paramset"),
	}
	dec.logger.Debug("Decoding parameter document", "file", filename)

	content, diags := body.Content(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: rootBlock}},
	})
	dec.diags = append(dec.diags, diags...)

	var arrows hcl.Blocks
	if content != nil {
		arrows = content.Blocks.OfType(rootBlock)
	}
	switch len(arrows) {
	case 0:
		rng := body.MissingItemRange()
		dec.diags = append(dec.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing arrow block",
			Detail:   "A parameter document must contain exactly one arrow block.",
			Subject:  &rng,
		})
	case 1:
	default:
		dec.diags = append(dec.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate arrow block",
			Detail:   fmt.Sprintf("An arrow block was already defined at %s.", arrows[0].DefRange),
			Subject:  &arrows[1].DefRange,
		})
	}
	if len(arrows) > 0 {
		dec.decodeBlock(arrows[0].Body, rootBlock)
	}

	var errs []error
	if dec.diags.HasErrors() {
		errs = append(errs, fmt.Errorf("failed to decode HCL file %s: %w", filename, dec.diags))
	}
	errs = append(errs, dec.errs...)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	dec.logger.Debug("Parameter document decoded", "file", filename, "count", dec.set.Len())
	return dec.set, nil
}

func (dec *decoder) decodeBlock(body hcl.Body, block string) {
	content, diags := body.Content(blockSchema(block))
	dec.diags = append(dec.diags, diags...)
	if content == nil {
		return
	}

	for _, p := range blockParams(block) {
		if attr, ok := content.Attributes[p.Attr]; ok {
			dec.assign(p, attr)
		}
	}

	seen := make(map[string]*hcl.Block)
	for _, b := range content.Blocks {
		if prev, dup := seen[b.Type]; dup {
			dec.diags = append(dec.diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Duplicate %s block", b.Type),
				Detail:   fmt.Sprintf("A %s block was already defined at %s.", b.Type, prev.DefRange),
				Subject:  &b.DefRange,
			})
			continue
		}
		seen[b.Type] = b
		dec.decodeBlock(b.Body, b.Type)
	}
}

func (dec *decoder) assign(p oarrow.Descriptor, attr *hcl.Attribute) {
	val, diags := attr.Expr.Value(nil)
	dec.diags = append(dec.diags, diags...)
	if diags.HasErrors() {
		return
	}

	rng := attr.Expr.Range()
	if val.IsNull() {
		dec.errs = append(dec.errs, fmt.Errorf("%s: %w: %s must not be null", rng, oerrors.ErrInvalidValue, p.Name))
		return
	}

	var err error
	switch p.Kind {
	case oarrow.KindReal:
		var f float64
		if err = fromCty(val, cty.Number, &f); err == nil {
			err = dec.set.SetReal(p.ID, f)
		}
	case oarrow.KindLong:
		var n int64
		if err = fromCty(val, cty.Number, &n); err == nil {
			err = dec.set.SetLong(p.ID, n)
		}
	case oarrow.KindBool:
		var b bool
		if err = fromCty(val, cty.Bool, &b); err == nil {
			err = dec.set.SetBool(p.ID, b)
		}
	default:
		err = fmt.Errorf("%w: %s is a %s", oerrors.ErrNotAssignable, p.Name, p.Kind)
	}
	if err != nil {
		dec.errs = append(dec.errs, fmt.Errorf("%s: %w", rng, err))
		return
	}

	dec.logger.Trace("Decoded parameter", "name", p.Name, "id", int32(p.ID), "path", p.Path())
}

// fromCty converts val to ty and stores it in target.
func fromCty(val cty.Value, ty cty.Type, target interface{}) error {
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return fmt.Errorf("%w: expected %s: %v", oerrors.ErrKindMismatch, ty.FriendlyName(), err)
	}
	if err := gocty.FromCtyValue(converted, target); err != nil {
		return fmt.Errorf("%w: %v", oerrors.ErrInvalidValue, err)
	}
	return nil
}
