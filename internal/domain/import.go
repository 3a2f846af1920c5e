package domain

import "time"

// TableImportStats contabiliza as linhas de um arquivo importado
type TableImportStats struct {
	Table   string `json:"table"`
	File    string `json:"file"`
	Loaded  int    `json:"loaded"`
	Skipped int    `json:"skipped"`
	Missing bool   `json:"missing,omitempty"`
}

// ImportReport descreve uma execução completa da importação
type ImportReport struct {
	RunID       string              `json:"run_id"`
	StartedAt   time.Time           `json:"started_at"`
	CompletedAt time.Time           `json:"completed_at"`
	Tables      []*TableImportStats `json:"tables"`
}

func (r *ImportReport) TotalLoaded() int {
	total := 0
	for _, t := range r.Tables {
		total += t.Loaded
	}
	return total
}
