package validation

// BatchResult is a validation result tagged with the index of its record
type BatchResult struct {
	Index int `json:"index"`
	Result
}

// ValidateBatch applies one validator across records
func ValidateBatch[T any](records []T, validate func(T) Result) []BatchResult {
	results := make([]BatchResult, len(records))
	for i, r := range records {
		results[i] = BatchResult{Index: i, Result: validate(r)}
	}
	return results
}

// AllValid reports whether every result in the batch is valid
func AllValid(results []BatchResult) bool {
	for _, r := range results {
		if !r.Valid {
			return false
		}
	}
	return true
}

// GetErrors returns only the failed results, in index order
func GetErrors(results []BatchResult) []BatchResult {
	var failed []BatchResult
	for _, r := range results {
		if !r.Valid {
			failed = append(failed, r)
		}
	}
	return failed
}
