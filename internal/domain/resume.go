package domain

import "time"

// ResumeRoles is the fixed set of roles a resume can be uploaded for.
var ResumeRoles = []ResumeRole{
	{ID: "devops", Label: "DevOps Engineer"},
	{ID: "ai-ml", Label: "AI/ML Engineer"},
	{ID: "software", Label: "Software Engineer"},
	{ID: "backend", Label: "Backend Developer"},
}

type ResumeRole struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func ValidResumeRole(id string) bool {
	for _, r := range ResumeRoles {
		if r.ID == id {
			return true
		}
	}
	return false
}

// ResumeStatus reports whether a resume file exists in storage for a role.
type ResumeStatus struct {
	ResumeRole
	Exists     bool       `json:"exists"`
	Size       int64      `json:"size,omitempty"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`
	Downloads  int64      `json:"downloads"`
}
