// pkg/api/consensus_v1.go
package api

// ConsensusRowV1 is one column of a consensus penalty table.
type ConsensusRowV1 struct {
	Column    int    `json:"column" yaml:"column"` // 1-based
	Consensus string `json:"consensus" yaml:"consensus"`
	Depth     int    `json:"depth" yaml:"depth"` // sum of counts
	Counts    []int  `json:"counts" yaml:"counts,flow"`
	Penalties []int  `json:"penalties" yaml:"penalties,flow"`
}

// ConsensusV1 is a whole consensus penalty table.
type ConsensusV1 struct {
	Alphabet string           `json:"alphabet" yaml:"alphabet"`
	Symbols  string           `json:"symbols" yaml:"symbols"`
	Unity    int              `json:"unity" yaml:"unity"`
	Sequence string           `json:"sequence,omitempty" yaml:"sequence,omitempty"` // most frequent symbol per column
	Rows     []ConsensusRowV1 `json:"rows" yaml:"rows"`
}

// CostV1 reports every cost the scoring model answers for one DP cell.
type CostV1 struct {
	Column              int    `json:"column" yaml:"column"` // 1-based
	Symbol              string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	BeforeStart         bool   `json:"before_start,omitempty" yaml:"before_start,omitempty"`
	Score               *int   `json:"score,omitempty" yaml:"score,omitempty"`
	GapOpenHorizontal   int    `json:"gap_open_horizontal" yaml:"gap_open_horizontal"`
	GapExtendHorizontal int    `json:"gap_extend_horizontal" yaml:"gap_extend_horizontal"`
	GapOpenVertical     int    `json:"gap_open_vertical" yaml:"gap_open_vertical"`
	GapExtendVertical   int    `json:"gap_extend_vertical" yaml:"gap_extend_vertical"`
}
