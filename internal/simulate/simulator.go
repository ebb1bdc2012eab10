package simulate

import (
	"math/rand"
	"sort"
	"strings"
	"time"
)

type category string

const (
	categoryTechnical category = "technical"
	categoryProject   category = "project"
)

const projectMarker = "项目"

// answerTemplates holds per-archetype banks of canned answers. {skill} is
// filled with a skill drawn from the profile. Archetypes without a bank for a
// category fall back to the ideal technical bank.
var answerTemplates = map[Archetype]map[category][]string{
	Ideal: {
		categoryTechnical: {
			"在 {skill} 方面，我有 3 年以上的深度实践经验。比如在上一个项目中，我使用 {skill} 实现了高性能的数据处理模块，将处理效率提升了 60%。具体来说...",
			"关于 {skill}，我认为它的核心优势在于...在实际应用中，我会结合项目需求选择合适的设计模式...",
		},
		categoryProject: {
			"我最自豪的项目是一个大型电商平台的重构。作为技术负责人，我主导了前端架构升级，引入了微前端方案，最终将页面加载速度提升 40%，同时支持多团队并行开发...",
			"在这个项目中，最大的挑战是数据一致性问题。我设计了基于事件溯源的解决方案...",
		},
	},
	Nervous: {
		categoryTechnical: {
			"呃...{skill} 我用过一些，主要是在学校的项目里...可能还不太熟练...",
			"这个...我有学过 {skill}，但是实际经验不是很多，可能需要一些时间来适应...",
		},
		categoryProject: {
			"嗯...我参与过一些项目，主要是做一些功能开发...可能规模不是很大...",
			"项目的话...主要是跟着导师做的，我负责的部分是...",
		},
	},
	Overconfident: {
		categoryTechnical: {
			"{skill}？这个我精通！基本上没有什么是我不会的，各种框架库我都用过，轻松驾驭！",
			"说实话，{skill} 对我来说太简单了，我可以快速上手任何新技术，这不是问题。",
		},
		categoryProject: {
			"我主导过很多大型项目，基本上都是我一个人搞定核心架构，其他人只是打下手。",
			"那个项目完全是靠我带起来的，如果没有我的技术决策，项目根本不可能成功。",
		},
	},
}

// Simulator synthesizes candidate answers for demo sessions from a profile
// archetype.
type Simulator struct {
	profile *Profile
	rand    *rand.Rand
}

// New returns a simulator for the given profile. A nil rand source gets a
// time-seeded one.
func New(profile *Profile, src *rand.Rand) *Simulator {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{profile: profile, rand: src}
}

// Profile returns the simulated candidate's profile.
func (s *Simulator) Profile() *Profile {
	return s.profile
}

// Respond synthesizes a plausible answer to the interviewer's question.
func (s *Simulator) Respond(question string) string {
	if s.profile == nil {
		return ""
	}

	cat := categoryTechnical
	if strings.Contains(question, projectMarker) {
		cat = categoryProject
	}

	templates := answerTemplates[s.profile.Archetype][cat]
	if len(templates) == 0 {
		templates = answerTemplates[Ideal][categoryTechnical]
	}

	template := templates[s.rand.Intn(len(templates))]

	return strings.ReplaceAll(template, "{skill}", s.pickSkill())
}

func (s *Simulator) pickSkill() string {
	if len(s.profile.Skills) == 0 {
		return "JavaScript"
	}

	// Sorted for a deterministic draw order under a seeded rand.
	skills := make([]string, 0, len(s.profile.Skills))
	for skill := range s.profile.Skills {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return skills[s.rand.Intn(len(skills))]
}
