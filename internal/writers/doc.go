// Package writers turns calculator reports into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (tables, TSV, JSON, XLSX).
//   - Calculators stay domain-only; internal/output reduces results to Reports.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
