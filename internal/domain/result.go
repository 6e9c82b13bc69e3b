package domain

// GenerationResult represents the outcome of generating and copying one case list
type GenerationResult struct {
	Module          string       `json:"module"`
	API             string       `json:"api"`
	Type            CaseListType `json:"type"`
	SourcePath      string       `json:"source_path"`
	DestPath        string       `json:"dest_path,omitempty"`
	Bytes           int64        `json:"bytes"`
	Cases           int          `json:"cases"`
	SHA256          string       `json:"sha256,omitempty"`
	DurationSeconds float64      `json:"duration_seconds"`
	Success         bool         `json:"success"`
	Error           string       `json:"error,omitempty"`
}

// RunMeta contains metadata about a generate run
type RunMeta struct {
	RunID           string  `json:"run_id"`
	BuildDir        string  `json:"build_dir"`
	BuildType       string  `json:"build_type"`
	Target          string  `json:"target"`
	DestDir         string  `json:"dest_dir"`
	Total           int     `json:"total"`
	Succeeded       int     `json:"succeeded"`
	Failed          int     `json:"failed"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunManifest is the complete record of a generate run
type RunManifest struct {
	Meta    RunMeta            `json:"meta"`
	Results []GenerationResult `json:"results"`
}

// Failures returns the results that did not succeed
func (m *RunManifest) Failures() []GenerationResult {
	var failed []GenerationResult
	for _, r := range m.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}
