package debug

// PlanStartData is emitted once at the top of Plan, before dispatch.
type PlanStartData struct {
	Variant  string `json:"variant"`
	LengthMM int    `json:"length_mm"`
	Screens  bool   `json:"screens_enabled"`
	JoistBox bool   `json:"joist_box"`
}

// PlanDispatchData names the §4.3 branch function Plan selected.
type PlanDispatchData struct {
	Branch string `json:"branch"`
}

// PlanPunchData is emitted for each punch a branch function adds,
// before invariant-level range dropping.
type PlanPunchData struct {
	Kind       string  `json:"kind"`
	PositionMM float64 `json:"position_mm"`
	Dropped    bool    `json:"dropped,omitempty"` // true if out of [0, length]
}

// PlanEndData summarises the layout Plan produced.
type PlanEndData struct {
	BoltHoles    int   `json:"bolt_holes"`
	Dimples      int   `json:"dimples"`
	WebTabs      int   `json:"web_tabs"`
	ServiceHoles int   `json:"service_holes"`
	Stubs        int   `json:"stubs"`
	ElapsedMs    int64 `json:"elapsed_ms"`
}

// AdviseLookupData records one span-advisor table lookup.
type AdviseLookupData struct {
	LengthMM     float64 `json:"length_mm"`
	KPaRating    float64 `json:"kpa_rating"`
	Variant      string  `json:"variant"`
	JoistSpacing int     `json:"joist_spacing"`
	ExceedsLimit bool    `json:"exceeds_limit"`
}

// ClashRuleData records one clash-detector rule's findings.
type ClashRuleData struct {
	Rule        string `json:"rule"`
	Diagnostics int    `json:"diagnostics"`
}

// OverrideTransitionData records one Manual Override Engine state
// transition.
type OverrideTransitionData struct {
	Event   string `json:"event"`
	Mode    string `json:"mode"`
	Version uint64 `json:"version"`
}

// ErrorData contains error information.
type ErrorData struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
