package paramset

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/provide-io/oarrow/go/oarrow/pkg/oarrow"
)

func (s *Set) ctyValue(id oarrow.ParamID) (cty.Value, bool) {
	v, ok := s.values[id]
	if !ok {
		return cty.NilVal, false
	}
	switch v.kind {
	case oarrow.KindReal:
		return cty.NumberFloatVal(v.real), true
	case oarrow.KindLong:
		return cty.NumberIntVal(v.long), true
	default:
		return cty.BoolVal(v.flag), true
	}
}

// WriteHCL writes s as a parameter document that Decode reads back.
// Sub-object blocks with no values are omitted.
func WriteHCL(w io.Writer, s *Set) error {
	f := hclwrite.NewEmptyFile()
	arrow := f.Body().AppendNewBlock(rootBlock, nil).Body()

	for _, d := range blockParams(rootBlock) {
		if v, ok := s.ctyValue(d.ID); ok {
			arrow.SetAttributeValue(d.Attr, v)
		}
	}

	for _, g := range oarrow.Descriptors() {
		if g.Kind != oarrow.KindGroup {
			continue
		}
		var present []oarrow.Descriptor
		for _, d := range blockParams(g.Block) {
			if s.Has(d.ID) {
				present = append(present, d)
			}
		}
		if len(present) == 0 {
			continue
		}

		block := arrow.AppendNewBlock(g.Block, nil).Body()
		for _, d := range present {
			v, _ := s.ctyValue(d.ID)
			block.SetAttributeValue(d.Attr, v)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
