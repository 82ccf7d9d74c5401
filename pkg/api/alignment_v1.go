// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON/YAML schema for one plain sequence aligned
// against a profile. Keep fields, names, and types stable. Add new fields only
// with ",omitempty".
type AlignmentV1 struct {
	SequenceID string `json:"sequence_id" yaml:"sequence_id"`
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty"`
	Length     int    `json:"length" yaml:"length"`
	Score      int    `json:"score" yaml:"score"`
	Cigar      string `json:"cigar" yaml:"cigar"`
	Matches    int    `json:"matches" yaml:"matches"`     // columns aligned to a consensus symbol
	Deletions  int    `json:"deletions" yaml:"deletions"` // profile columns against gap
	Insertions int    `json:"insertions" yaml:"insertions"`
	Profile    string `json:"profile_row,omitempty" yaml:"profile_row,omitempty"`
	Sequence   string `json:"sequence_row,omitempty" yaml:"sequence_row,omitempty"`
}
