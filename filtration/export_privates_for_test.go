package filtration

// Test-only exports.

// KeepCountForTest exposes the pruning rounding rule keepCount.
func KeepCountForTest(total int, p float64) int { return keepCount(total, p) }
