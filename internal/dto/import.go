package dto

import "transaction-importer/internal/services"

// ImportSummary carries the counters of a completed import
type ImportSummary struct {
	RowsRead          int  `json:"rowsRead"`
	RowsSkipped       int  `json:"rowsSkipped"`
	CategoriesCreated int  `json:"categoriesCreated"`
	CategoriesReused  int  `json:"categoriesReused"`
	FileRemoved       bool `json:"fileRemoved"`
}

// ImportResponse represents the response of a CSV import
type ImportResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      ImportSummary         `json:"summary"`
}

func NewImportResponse(result *services.ImportResult) ImportResponse {
	return ImportResponse{
		Transactions: NewTransactionResponses(result.Transactions),
		Summary: ImportSummary{
			RowsRead:          result.RowsRead,
			RowsSkipped:       result.RowsSkipped,
			CategoriesCreated: result.CategoriesCreated,
			CategoriesReused:  result.CategoriesReused,
			FileRemoved:       result.CleanupErr == nil,
		},
	}
}

// ImportStagedRequest asks for an import of a file already in the staging directory
type ImportStagedRequest struct {
	Path string `json:"path" validate:"required,not_blank"`
}
