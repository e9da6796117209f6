package dto

import "github.com/google/uuid"

// JobRequest is the payload for both job creation and update.
type JobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	JobType     string `json:"jobType"`
	SalaryRange string `json:"salaryRange"`
	Description string `json:"description"`
}

// JobFilter holds the optional public listing filters. An empty field
// means no constraint on that column, never an empty-string match.
type JobFilter struct {
	Location string
	JobType  string
}

type ApplyRequest struct {
	JobID uuid.UUID `json:"jobId"`
}

type UpdateProfileRequest struct {
	Bio       string   `json:"bio"`
	Skills    []string `json:"skills"`
	ResumeURL string   `json:"resumeUrl"`
}
