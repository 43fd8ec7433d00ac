package core

import "time"

// BriefRequest represents the selections a user makes before generating a brief.
type BriefRequest struct {
	Industry    string `json:"industry"`    // Target industry for the meeting
	MeetingType string `json:"meetingType"` // Kind of meeting (e.g., "Discovery Session")
	ClientRole  string `json:"clientRole"`  // Role of the client attendee
	Context     string `json:"context"`     // Optional free-text context supplied by the user
}

// CaseStudy is the case-study block inside a generated brief.
type CaseStudy struct {
	Title   string   `json:"title"`   // Case study title tailored to the industry
	Summary string   `json:"summary"` // Two-sentence description
	Metrics []string `json:"metrics"` // Key metrics bullet list
}

// GeneratedBrief is the structured executive brief produced by the brief agent
// (or by the static fallback generator). Every slice field is always present,
// possibly empty, never nil after normalization.
type GeneratedBrief struct {
	Industry           string    `json:"industry"`
	MeetingType        string    `json:"meetingType"`
	ClientRole         string    `json:"clientRole"`
	Context            string    `json:"context"`
	ElevatorPitch      string    `json:"elevatorPitch"`
	DiscoveryQuestions []string  `json:"discoveryQuestions"`
	IndustryInsights   []string  `json:"industryInsights"`
	Positioning        []string  `json:"positioning"`
	CaseStudy          CaseStudy `json:"caseStudy"`
}

// BriefRecord is the persisted form of a generated brief. Records are created
// once at save time and never updated or deleted.
type BriefRecord struct {
	ID        string         `json:"id"`        // Store-assigned identifier
	Input     *BriefRequest  `json:"input"`     // Original request, nil when the client omitted it
	Brief     GeneratedBrief `json:"brief"`     // The generated brief payload
	CreatedAt time.Time      `json:"createdAt"` // Server-assigned save timestamp
}

// CategorizedQuestions groups discovery questions under a named category.
type CategorizedQuestions struct {
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
}

// RoleCategories is the read model returned by the questions endpoint:
// question categories grouped by client role. Built per query, never stored.
type RoleCategories struct {
	Role       string                 `json:"role"`
	Categories []CategorizedQuestions `json:"categories"`
}

// QuestionSeed is a pre-seeded discovery-question document. A seed carries
// either a single Category+Questions pair or a Categories list; both shapes
// are normalized by the questions service.
type QuestionSeed struct {
	Industry   string                 `json:"industry"`
	ClientRole string                 `json:"clientRole,omitempty"`
	Category   string                 `json:"category,omitempty"`
	Questions  []string               `json:"questions,omitempty"`
	Categories []CategorizedQuestions `json:"categories,omitempty"`
}

// BriefHistoryItem is the flattened view of a saved brief returned by the
// history listing endpoint.
type BriefHistoryItem struct {
	ID                 string     `json:"id"`
	Industry           string     `json:"industry"`
	MeetingType        string     `json:"meetingType"`
	ClientRole         string     `json:"clientRole"`
	CreatedAt          *time.Time `json:"createdAt"`
	ElevatorPitch      string     `json:"elevatorPitch"`
	DiscoveryQuestions []string   `json:"discoveryQuestions"`
	IndustryInsights   []string   `json:"industryInsights"`
	Positioning        []string   `json:"positioning"`
	CaseStudy          *CaseStudy `json:"caseStudy"`
	Context            string     `json:"context"`
}

// HistoryItem converts a stored record into its listing view.
func (r BriefRecord) HistoryItem() BriefHistoryItem {
	item := BriefHistoryItem{
		ID:                 r.ID,
		Industry:           r.Brief.Industry,
		MeetingType:        r.Brief.MeetingType,
		ClientRole:         r.Brief.ClientRole,
		ElevatorPitch:      r.Brief.ElevatorPitch,
		DiscoveryQuestions: r.Brief.DiscoveryQuestions,
		IndustryInsights:   r.Brief.IndustryInsights,
		Positioning:        r.Brief.Positioning,
		Context:            r.Brief.Context,
	}
	if !r.CreatedAt.IsZero() {
		t := r.CreatedAt
		item.CreatedAt = &t
	}
	cs := r.Brief.CaseStudy
	item.CaseStudy = &cs
	return item
}
