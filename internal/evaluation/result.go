package evaluation

// Recommendation is the hiring-signal tier derived from a normalized score.
type Recommendation string

const (
	Excellent        Recommendation = "excellent"
	Good             Recommendation = "good"
	Average          Recommendation = "average"
	NeedsImprovement Recommendation = "needsImprovement"
)

// Confidence classifies how the candidate carried the answer.
type Confidence string

const (
	Genuine       Confidence = "genuine"
	Uncertain     Confidence = "uncertain"
	Overconfident Confidence = "overconfident"
)

// Result is the uniform evaluation of one answer, regardless of whether it
// came from the remote service, an AI provider or the local heuristic.
type Result struct {
	Score          float64        `json:"score"`
	Recommendation Recommendation `json:"recommendation"`
	Confidence     Confidence     `json:"confidenceLevel"`
	Feedback       string         `json:"feedback"`
}

// Recommend maps a normalized score to its tier. The same thresholds apply to
// every evaluation path.
func Recommend(score float64) Recommendation {
	switch {
	case score >= 80:
		return Excellent
	case score >= 65:
		return Good
	case score < 45:
		return NeedsImprovement
	default:
		return Average
	}
}

var feedbackByTier = map[Recommendation]string{
	Excellent:        "回答非常专业，有具体案例支撑，展现了深厚的技术功底",
	Good:             "回答较为完整，建议可以补充更多具体数据或案例",
	Average:          "回答基本到位，但深度不足，建议追问以了解更多细节",
	NeedsImprovement: "回答过于简略，需要进一步挖掘候选人能力",
}

// FeedbackFor returns the canned interviewer guidance for a tier.
func FeedbackFor(tier Recommendation) string {
	return feedbackByTier[tier]
}

// ParseConfidence normalizes a confidence label coming from a remote source,
// defaulting to genuine for unknown values.
func ParseConfidence(s string) Confidence {
	switch Confidence(s) {
	case Uncertain:
		return Uncertain
	case Overconfident:
		return Overconfident
	default:
		return Genuine
	}
}
