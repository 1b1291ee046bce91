package prompt

// Audience selects who a paper review is written for.
type Audience string

// The closed audience set offered by the review pipeline.
const (
	AudienceNone      Audience = ""
	AudienceGeneral   Audience = "General"
	AudienceTechnical Audience = "Technical"
	AudienceExecutive Audience = "Executive"
)

var audienceClauses = []struct {
	Audience Audience
	Clause   string
}{
	{AudienceGeneral, "Write for a general reader: avoid jargon and explain technical terms when they first appear."},
	{AudienceTechnical, "Write for a technical reader familiar with the field: use precise terminology and discuss methodology in depth."},
	{AudienceExecutive, "Write for an executive reader: lead with findings and implications, keep technical detail to a minimum."},
}

// ReviewType selects the kind of review the pipeline produces.
type ReviewType string

// The closed review-type set offered by the review pipeline.
const (
	ReviewSummary     ReviewType = "Summary"
	ReviewCritique    ReviewType = "Critique"
	ReviewMethodology ReviewType = "Methodology"
)

var reviewTypeClauses = []struct {
	Type   ReviewType
	Clause string
}{
	{ReviewSummary, "Summarize the paper: its question, approach, and main findings."},
	{ReviewCritique, "Critique the paper: assess the strength of its claims, evidence, and argumentation, noting weaknesses explicitly."},
	{ReviewMethodology, "Examine the paper's methodology: data, experimental design, and the validity of its analysis."},
}

// ParseAudience resolves a raw selection by exact match. Empty or unknown
// selections resolve to AudienceNone.
func ParseAudience(s string) (Audience, bool) {
	if s == "" {
		return AudienceNone, true
	}
	for _, ac := range audienceClauses {
		if string(ac.Audience) == s {
			return ac.Audience, true
		}
	}
	return AudienceNone, false
}

// ParseReviewType resolves a raw selection by exact match. Empty selections
// default to ReviewSummary.
func ParseReviewType(s string) (ReviewType, bool) {
	if s == "" {
		return ReviewSummary, true
	}
	for _, rc := range reviewTypeClauses {
		if string(rc.Type) == s {
			return rc.Type, true
		}
	}
	return ReviewSummary, false
}

func audienceClause(a Audience) (string, bool) {
	for _, ac := range audienceClauses {
		if ac.Audience == a {
			return ac.Clause, true
		}
	}
	return "", false
}

func reviewTypeClause(rt ReviewType) (string, bool) {
	for _, rc := range reviewTypeClauses {
		if rc.Type == rt {
			return rc.Clause, true
		}
	}
	return "", false
}
