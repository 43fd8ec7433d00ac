package core

// Industries lists the industries the briefing tool supports.
var Industries = []string{
	"Healthcare",
	"Financial Services",
	"Retail",
	"Manufacturing",
	"Technology",
	"Insurance",
	"Telecommunications",
	"Energy & Utilities",
	"Other",
}

// MeetingTypes lists the standard meeting types used to tailor brief context.
var MeetingTypes = []string{
	"Intro Call",
	"Discovery Session",
	"Executive Briefing",
	"Partnership Discussion",
	"Conference/Event",
	"Follow-up Meeting",
}

// ClientRoles lists the client roles used to customize focus and tone.
var ClientRoles = []string{
	"C-Suite (CEO, CTO, CFO)",
	"VP Level",
	"Director",
	"Manager",
	"Technical Lead",
	"Business Analyst",
}
