package scoring

import "sort"

// Result is one row of the ranked score table. Rank is 1-based.
type Result struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// RankScores orders alternatives by score, highest first. Equal scores keep
// their input order. Neither argument is modified.
func RankScores(alternatives []Alternative, scores []float64) []Result {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	results := make([]Result, len(order))
	for pos, idx := range order {
		results[pos] = Result{
			Rank:  pos + 1,
			Name:  alternatives[idx].Name,
			Score: scores[idx],
		}
	}
	return results
}
