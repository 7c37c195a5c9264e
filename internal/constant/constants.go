package constant

// AlgorithmVersion tags every persisted score and presort segment so a
// rollout can distinguish rows produced by different scoring code.
const AlgorithmVersion = "mf-v1"

// Match scoring
const (
	DefaultTopK          = 200
	DefaultBatchSize     = 100
	DefaultBatchPauseMs  = 250
	DefaultRatingMinimum = 3
)

// Component weights. Sum is 1.0; the newness operator runs feed-side
// only and never persists a component column.
var DefaultWeights = map[string]float64{
	"quiz":           0.25,
	"traits":         0.20,
	"interests":      0.20,
	"rating_quality": 0.10,
	"rating_fit":     0.10,
	"proximity":      0.15,
}

// Feed composition
const (
	DefaultFeedCount     = 20
	MaxFeedCount         = 50
	DefaultActorCap      = 2
	DefaultPostCap       = 60
	DefaultSuggestionCap = 30
	DefaultQuestionCap   = 10
	DefaultSegmentCount  = 3
	DefaultSegmentSize   = 40
	PresortTTLMinutes    = 30
	SeenWindowHours      = 72
)

// Messaging. Event type names live in pkg/events next to their
// constructors.
const TopicPresortRecompute = "presort.recompute"
