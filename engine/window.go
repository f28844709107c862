package engine

import "github.com/structureguard/structguard/model"

// appendPoint adds a reading to a rolling history, dropping the oldest points
// to keep at most maxLen. Insertion order is chronological, so the result
// stays ascending by timestamp.
func appendPoint(history []model.TimeSeriesPoint, point model.TimeSeriesPoint, maxLen int) []model.TimeSeriesPoint {
	keep := maxLen - 1
	if keep < 0 {
		keep = 0
	}
	if len(history) > keep {
		history = history[len(history)-keep:]
	}
	out := make([]model.TimeSeriesPoint, 0, len(history)+1)
	out = append(out, history...)
	return append(out, point)
}
