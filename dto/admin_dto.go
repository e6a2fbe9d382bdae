package dto

// CreateProjectManagerRequest promotes or creates a project manager account
type CreateProjectManagerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// DeleteProjectManagersRequest is the bulk cascade-deletion payload
type DeleteProjectManagersRequest struct {
	Emails []string `json:"emails" binding:"required,min=1"`
}

// SkippedEmail records why one entry of a bulk request was not processed
type SkippedEmail struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// DeleteProjectManagersResult is the aggregate outcome of a bulk deletion
type DeleteProjectManagersResult struct {
	Deleted                CascadeDeleteResult `json:"deleted"`
	DeletedEmails          []string            `json:"deletedEmails"`
	InvalidOrSkippedEmails []SkippedEmail      `json:"invalidOrSkippedEmails"`
}
