// pkg/api/calc_v1.go
package api

// Value is a computed number with the rounded string shown to users.
type Value struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Unit    string  `json:"unit,omitempty"`
}

// DilutionV1 is the stable JSON schema for a C1·V1 = C2·V2 solve.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type DilutionV1 struct {
	Mode    string `json:"mode"`    // findV2 | findC2 | findV1 | findC1
	Unknown string `json:"unknown"` // V2 | C2 | V1 | C1
	Result  Value  `json:"result"`
	Diluent *Value `json:"diluent,omitempty"`
}

type SerialStepV1 struct {
	Step          int   `json:"step"`
	Concentration Value `json:"concentration"`
	StockVolume   Value `json:"stock_volume"`
	DiluentVolume Value `json:"diluent_volume"`
}

// SerialV1 is the stable schema for a serial dilution series.
type SerialV1 struct {
	Steps   int            `json:"steps"`
	Factor  float64        `json:"factor"`
	Summary string         `json:"summary"`
	Series  []SerialStepV1 `json:"series"`
}

// MolarityV1 covers the three molarity calculator modes.
type MolarityV1 struct {
	Mode    string            `json:"mode"` // molarity | mass | stock
	Result  Value             `json:"result"`
	Inputs  map[string]string `json:"inputs,omitempty"`
	Formula string            `json:"formula,omitempty"`
}

type PrimerV1 struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Sequence  string  `json:"sequence"`
	Direction string  `json:"direction,omitempty"`
	Length    int     `json:"length"`
	GCPercent float64 `json:"gc_percent"`
	Tm        float64 `json:"tm"`
	TmMethod  string  `json:"tm_method"` // wallace | empirical
}

// PairV1 is the stable schema for a primer-pair analysis.
type PairV1 struct {
	Status      string    `json:"status"`
	Compatible  bool      `json:"compatible"`
	Message     string    `json:"message"`
	Forward     *PrimerV1 `json:"forward,omitempty"`
	Reverse     *PrimerV1 `json:"reverse,omitempty"`
	ForwardPos  int       `json:"forward_pos,omitempty"` // 1-based
	ReversePos  int       `json:"reverse_pos,omitempty"` // 1-based
	ProductSize int       `json:"product_size,omitempty"`
	TmDiff      float64   `json:"tm_diff"`
}

type RevCompV1 struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Length int    `json:"length"`
}

type GCV1 struct {
	ID        string  `json:"id,omitempty"`
	Sequence  string  `json:"sequence"`
	Length    int     `json:"length"`
	GCCount   int     `json:"gc_count"`
	GCPercent float64 `json:"gc_percent"`
}

type GroupV1 struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"sd"`
}

// TTestV1 is the stable schema for a two-sample t-test. P-values and
// critical values are approximations.
type TTestV1 struct {
	Method           string     `json:"method"` // student | welch | paired
	TStatistic       float64    `json:"t"`
	DegreesOfFreedom int        `json:"df"`
	PValue           float64    `json:"p_approx"`
	MeanDifference   float64    `json:"mean_difference"`
	StandardError    float64    `json:"standard_error"`
	TCritical        float64    `json:"t_critical"`
	ConfidenceLevel  float64    `json:"confidence_level"`
	CI               [2]float64 `json:"ci"`
	Significant      bool       `json:"significant"`
	Alpha            float64    `json:"alpha"`
	Group1           GroupV1    `json:"group1"`
	Group2           GroupV1    `json:"group2"`
	Differences      *GroupV1   `json:"differences,omitempty"`
}

type TranslationV1 struct {
	SequenceType string         `json:"sequence_type"`
	Frame        int            `json:"frame"`
	Codons       []string       `json:"codons"`
	AminoAcids   string         `json:"amino_acids"`
	Composition  map[string]int `json:"composition,omitempty"`
}

type SiteV1 struct {
	Enzyme    string `json:"enzyme"`
	Site      string `json:"site"`
	Count     int    `json:"count"`
	Positions []int  `json:"positions"` // 1-based
}

type SitesV1 struct {
	SequenceID string   `json:"sequence_id,omitempty"`
	Length     int      `json:"length"`
	Enzymes    []SiteV1 `json:"enzymes"`
}

type SubstanceV1 struct {
	Formula string  `json:"formula"`
	Name    string  `json:"name"`
	MW      float64 `json:"mw"`
}
