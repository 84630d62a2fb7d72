package events

const (
	SubjectRankingRequest = "moora.ranking.request"

	StreamName   = "MOORA_EVENTS"
	StreamMaxAge = "720h" // 30 days
	QueueGroup   = "moora"
)

func SubjectRankingCompleted(runID string) string { return "moora.ranking." + runID + ".completed" }
func SubjectRankingRejected(runID string) string  { return "moora.ranking." + runID + ".rejected" }
