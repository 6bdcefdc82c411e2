// SPDX-License-Identifier: MIT
// Package ecio is the output glue layer: appending descent results to the
// result CSV. Instance files are loaded by package instance.
package ecio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/katalvlaran/eqcol/descent"
	"github.com/katalvlaran/eqcol/tabu"
)

// csvHeader is the exact column order demanded by the output contract.
var csvHeader = []string{
	"Instance", "Seed", "Alpha", "Beta", "P_Limit", "P_Str", "Asp",
	"SI", "SF", "Dev(%)", "Time(s)", "TotalIter",
}

// AppendRow appends one result row to path, writing csvHeader first iff the
// file is empty at open time (checked by size, not existence, so repeated
// runs against the same file never duplicate the header).
func AppendRow(path, instanceName string, seed int64, cfg tabu.Config, res descent.Result, elapsedSeconds float64) error {
	needsHeader, err := isEmptyOrMissing(path)
	if err != nil {
		return fmt.Errorf("ecio: AppendRow: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("ecio: AppendRow: open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if needsHeader {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("ecio: AppendRow: write header: %w", err)
		}
	}

	row := []string{
		instanceName,
		fmt.Sprintf("%d", seed),
		fmt.Sprintf("%v", cfg.Alpha),
		fmt.Sprintf("%d", cfg.Beta),
		fmt.Sprintf("%d", cfg.PerturbationLimit),
		fmt.Sprintf("%v", cfg.PerturbationStrength),
		aspirationFlag(cfg.Aspiration),
		fmt.Sprintf("%d", res.InitialK),
		fmt.Sprintf("%d", res.BestK),
		fmt.Sprintf("%.2f", res.DevPercent),
		fmt.Sprintf("%.4f", elapsedSeconds),
		fmt.Sprintf("%d", res.TotalIter),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("ecio: AppendRow: write row: %w", err)
	}

	w.Flush()
	return w.Error()
}

// aspirationFlag renders the boolean as the 0|1 integer the original CSV
// format uses rather than Go's "true"/"false".
func aspirationFlag(enabled bool) string {
	if enabled {
		return "1"
	}
	return "0"
}

// isEmptyOrMissing reports whether path does not exist or exists with size
// 0, in which case AppendRow must write the header row.
func isEmptyOrMissing(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.Size() == 0, nil
}
