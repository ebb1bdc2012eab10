package suggestion

import (
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type distinguishes probing follow-ups from differently-angled alternatives.
type Type string

const (
	Followup    Type = "followup"
	Alternative Type = "alternative"
)

// Question is one ranked suggestion for the interviewer. Lower priority means
// higher rank.
type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Type     Type   `json:"type"`
	Angle    string `json:"angle,omitempty"`
	Priority int    `json:"priority"`
}

// followupTemplates probe the candidate's own wording; {point} is filled with
// a keyword extracted from the answer.
var followupTemplates = []string{
	"您刚才提到的 {point}，能否更详细地说明具体实现方式？",
	"关于 {point}，您能举一个具体的数据或案例来支撑吗？",
	"您提到 {point}，那么在实际中遇到 {challenge} 时如何处理？",
	"能否深入解释一下 {point} 的技术细节？",
}

type angleTemplate struct {
	angle    string
	template string
}

var alternativeTemplates = []angleTemplate{
	{angle: "深度探索", template: "如果要从底层原理角度来理解您的方案，您会如何解释？"},
	{angle: "实际案例", template: "能否分享一个具体的案例来说明您的观点？"},
	{angle: "反向思考", template: "如果重新做这个决定，您会有什么不同的选择？"},
	{angle: "团队协作", template: "在这个过程中，您是如何与团队其他成员协作的？"},
	{angle: "问题解决", template: "遇到最大的困难是什么？您是如何克服的？"},
}

const (
	defaultKeyword   = "这个问题"
	defaultChallenge = "性能瓶颈"
	maxKeywords      = 3
)

var keywordPattern = regexp.MustCompile(`[\p{Han}a-zA-Z]+`)

// Generator derives ranked follow-up and alternative questions from the last
// Q&A exchange. The template banks are fixed; only the alternative order is
// randomized.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator returns a suggestion generator. A nil source gets a time-seeded
// one.
func NewGenerator(src *rand.Rand) *Generator {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rand: src}
}

// Generate produces followupCount follow-ups and alternativeCount alternative
// questions for the given answer. Follow-ups come first; priority is the
// 1-based position in the final list.
func (g *Generator) Generate(answer string, followupCount, alternativeCount int) []*Question {
	suggestions := make([]*Question, 0, followupCount+alternativeCount)

	keywords := extractKeywords(answer)

	for i := 0; i < followupCount; i++ {
		template := followupTemplates[i%len(followupTemplates)]
		point := defaultKeyword
		if len(keywords) > 0 {
			point = keywords[i%len(keywords)]
		}

		text := strings.ReplaceAll(template, "{point}", point)
		text = strings.ReplaceAll(text, "{challenge}", defaultChallenge)

		suggestions = append(suggestions, &Question{
			ID:       uuid.NewString(),
			Text:     text,
			Type:     Followup,
			Priority: len(suggestions) + 1,
		})
	}

	shuffled := make([]angleTemplate, len(alternativeTemplates))
	copy(shuffled, alternativeTemplates)
	g.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for i := 0; i < alternativeCount && i < len(shuffled); i++ {
		suggestions = append(suggestions, &Question{
			ID:       uuid.NewString(),
			Text:     shuffled[i].template,
			Type:     Alternative,
			Angle:    shuffled[i].angle,
			Priority: len(suggestions) + 1,
		})
	}

	return suggestions
}

// FromRemote converts follow-up texts returned by the evaluation service into
// ranked suggestions.
func FromRemote(questions []string) []*Question {
	suggestions := make([]*Question, 0, len(questions))
	for _, text := range questions {
		if strings.TrimSpace(text) == "" {
			continue
		}
		suggestions = append(suggestions, &Question{
			ID:       uuid.NewString(),
			Text:     text,
			Type:     Followup,
			Priority: len(suggestions) + 1,
		})
	}
	return suggestions
}

// extractKeywords picks the first few CJK/Latin tokens of the answer as
// probing points.
func extractKeywords(answer string) []string {
	matches := keywordPattern.FindAllString(answer, maxKeywords)
	return matches
}
