// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"profseq/internal/jsonlutil"
	"profseq/internal/output"
	"profseq/pkg/api"
)

// Whole-document writers, keyed by format. Streaming alignment output is
// handled separately by StartAlignmentWriter.
var (
	ConsensusWriters = map[string]func(w io.Writer, c api.ConsensusV1, header bool) error{}
	CostWriters      = map[string]func(w io.Writer, c api.CostV1) error{}
)

func RegisterConsensus(format string, fn func(io.Writer, api.ConsensusV1, bool) error) {
	ConsensusWriters[format] = fn
}
func RegisterCost(format string, fn func(io.Writer, api.CostV1) error) { CostWriters[format] = fn }

func init() {
	RegisterConsensus("text", output.WriteConsensusText)
	RegisterConsensus("json", func(w io.Writer, c api.ConsensusV1, _ bool) error { return output.EncodeJSON(w, c) })
	RegisterConsensus("yaml", func(w io.Writer, c api.ConsensusV1, _ bool) error { return output.EncodeYAML(w, c) })
	RegisterConsensus("jsonl", func(w io.Writer, c api.ConsensusV1, _ bool) error { return jsonlutil.Write(w, c.Rows...) })

	RegisterCost("text", output.WriteCostText)
	RegisterCost("json", func(w io.Writer, c api.CostV1) error { return output.EncodeJSON(w, c) })
	RegisterCost("yaml", func(w io.Writer, c api.CostV1) error { return output.EncodeYAML(w, c) })
	RegisterCost("jsonl", func(w io.Writer, c api.CostV1) error { return jsonlutil.Write(w, c) })
}

func WriteConsensus(format string, w io.Writer, c api.ConsensusV1, header bool) error {
	fn, ok := ConsensusWriters[format]
	if !ok {
		return fmt.Errorf("unknown consensus format %q (no writer registered)", format)
	}
	return fn(w, c, header)
}

func WriteCost(format string, w io.Writer, c api.CostV1) error {
	fn, ok := CostWriters[format]
	if !ok {
		return fmt.Errorf("unknown cost format %q (no writer registered)", format)
	}
	return fn(w, c)
}

// Formats lists the registered consensus formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(ConsensusWriters))
	for f := range ConsensusWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
