package tui

type stage int

const (
	stageForm stage = iota
	stageResults
)

type requestState int

const (
	stateIdle requestState = iota
	stateLoading
	stateSucceeded
	stateFailed
)

func (s requestState) String() string {
	switch s {
	case stateLoading:
		return "LOADING"
	case stateSucceeded:
		return "READY"
	case stateFailed:
		return "FAILED"
	default:
		return "IDLE"
	}
}

type formField int

const (
	fieldIndustry formField = iota
	fieldTechnology
)

const (
	heroTitle   = "Startup Idea Generator"
	heroBadge   = "CrewAI Powered"
	heroTagline = "Use AI to generate startup ideas based on industry and technology focus."
)

const (
	industryPlaceholder   = "e.g. Healthcare, Finance, Education"
	technologyPlaceholder = "e.g. AI, Blockchain, IoT"
	validationMessage     = "Industry and technology focus are both required."
	expectedWaitNotice    = "This may take up to 60 seconds"
)

var pipelineSteps = []string{
	"Generate innovative startup ideas",
	"Research market potential",
	"Evaluate technical feasibility",
	"Assess business viability",
}

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	inputCharLimit            = 80
)
