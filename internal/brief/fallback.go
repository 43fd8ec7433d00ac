package brief

import (
	"fmt"

	"preshub/internal/core"
)

// Static fallback copy. Pure and deterministic: used whenever the AI path
// fails, and as the non-AI default path.

var elevatorPitches = map[string]string{
	"Healthcare":         "We help healthcare organizations transform patient care and operational efficiency through intelligent agentic automation that adapts to complex clinical workflows, ensuring compliance while reducing administrative burden by up to 60%.",
	"Financial Services": "We enable financial institutions to accelerate digital transformation with agentic AI systems that autonomously handle complex processes from loan origination to fraud detection while maintaining strict regulatory compliance.",
	"Retail":             "We empower retailers to create seamless, personalized customer experiences through agentic systems that dynamically optimize inventory, pricing, and customer engagement across all channels in real-time.",
	"Manufacturing":      "We help manufacturers achieve operational excellence through intelligent agents that optimize production scheduling, predictive maintenance, and supply chain coordination.",
	"Technology":         "We accelerate innovation for tech companies by deploying agentic AI that automates complex development workflows and scales operations without proportional headcount growth.",
	"default":            "We partner with enterprise leaders to deploy agentic AI systems that transform business operations moving beyond simple automation to intelligent agents that reason, adapt, and execute complex workflows autonomously.",
}

var universalQuestions = []string{
	"What business processes currently require the most manual intervention or slow your teams down?",
	"Where do you see the biggest opportunity for intelligent automation in your organization?",
	"How does data currently flow between your critical systems? Are there pain points or bottlenecks?",
	"If you could eliminate one operational bottleneck tomorrow with AI, what would deliver the most value?",
	"What constraints do you have around data privacy, governance, or regulatory compliance?",
}

var industryQuestions = map[string][]string{
	"Healthcare": {
		"How are you handling prior authorization processes today?",
		"What percentage of staff time is spent on documentation versus patient care?",
	},
	"Financial Services": {
		"How are you balancing innovation speed with regulatory compliance?",
		"What is your current approach to fraud detection?",
	},
	"Retail": {
		"How quickly can you respond to demand fluctuations?",
		"What is your customer data utilization rate across channels?",
	},
	"Manufacturing": {
		"What is your equipment downtime rate?",
		"How do you coordinate across your supply chain during disruptions?",
	},
}

var industryInsights = map[string][]string{
	"Healthcare": {
		"Administrative costs account for 25-30% of total healthcare spending",
		"Provider burnout driven by documentation burden is at all-time high",
		"Interoperability challenges create $30B+ in annual waste",
	},
	"Financial Services": {
		"Manual loan processing takes 30-45 days on average",
		"Fraud losses exceed $40B annually",
		"Customer expectations for real-time service are reshaping the industry",
	},
	"Retail": {
		"Inventory optimization can improve margins by 2-5 percentage points",
		"Personalization drives 10-30% revenue uplift",
		"Omnichannel customers spend 3-4x more",
	},
	"default": {
		"Agentic AI adoption is accelerating",
		"Early adopters seeing 40-60% efficiency gains",
		"Integration remains a critical success factor",
	},
}

var positioningStatements = []string{
	"Unlike RPA or basic automation, agentic systems reason through complex scenarios and adapt to changing conditions",
	"Our platform integrates with your existing tech stack (Azure, AWS, ServiceNow, Salesforce)",
	"We focus on business outcomes first with high-impact use cases that deliver ROI in 4-8 weeks",
	"Enterprise-grade security, governance, and compliance built-in from day one",
}

// ElevatorPitch returns the industry-specific pitch, or the default one for
// unknown industries (including the empty string).
func ElevatorPitch(industry string) string {
	if pitch, ok := elevatorPitches[industry]; ok {
		return pitch
	}
	return elevatorPitches["default"]
}

// DiscoveryQuestions concatenates the universal question set with the
// industry-specific additions, when any exist.
func DiscoveryQuestions(industry string) []string {
	questions := make([]string, 0, len(universalQuestions)+2)
	questions = append(questions, universalQuestions...)
	questions = append(questions, industryQuestions[industry]...)
	return questions
}

// IndustryInsights returns the fixed insight list for the industry, or the
// default list for industries without one.
func IndustryInsights(industry string) []string {
	insights, ok := industryInsights[industry]
	if !ok {
		insights = industryInsights["default"]
	}
	out := make([]string, len(insights))
	copy(out, insights)
	return out
}

// Positioning returns the industry-independent positioning statements.
func Positioning() []string {
	out := make([]string, len(positioningStatements))
	copy(out, positioningStatements)
	return out
}

// FallbackCaseStudy returns the placeholder case study for an industry.
func FallbackCaseStudy(industry string) core.CaseStudy {
	return core.CaseStudy{
		Title:   fmt.Sprintf("%s Transformation Example", industry),
		Summary: "Detailed case study content will be populated here based on your materials.",
		Metrics: []string{
			"Placeholder for key metrics",
			"ROI and timeline data",
			"Business impact summary",
		},
	}
}

// GenerateBriefData assembles a complete brief from the static tables,
// echoing meeting type, client role, and context verbatim from the request.
func GenerateBriefData(req core.BriefRequest) core.GeneratedBrief {
	return core.GeneratedBrief{
		Industry:           req.Industry,
		MeetingType:        req.MeetingType,
		ClientRole:         req.ClientRole,
		Context:            req.Context,
		ElevatorPitch:      ElevatorPitch(req.Industry),
		DiscoveryQuestions: DiscoveryQuestions(req.Industry),
		IndustryInsights:   IndustryInsights(req.Industry),
		Positioning:        Positioning(),
		CaseStudy:          FallbackCaseStudy(req.Industry),
	}
}
