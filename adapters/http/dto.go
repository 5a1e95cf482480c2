package http

import (
	"bytes"
	"encoding/json"
	"time"
)

// Optional distinguishes a field that was absent from one that was sent as
// null. Set is true whenever the key appeared in the request body.
type Optional[T any] struct {
	Value *T
	Set   bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Profile

type CreateProfileRequest struct {
	Name      string  `json:"name" binding:"required"`
	Headline  string  `json:"headline" binding:"required"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	AvatarURL *string `json:"avatar_url"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Headline  *string `json:"headline"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	AvatarURL *string `json:"avatar_url"`
}

// Ordered collections

type ReorderRequest struct {
	OrderIndex *int `json:"order_index" binding:"required,gte=0"`
}

type CreateSkillRequest struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category" binding:"required"`
	OrderIndex int    `json:"order_index" binding:"gte=0"`
	Level      string `json:"level"`
}

type UpdateSkillRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *string `json:"level"`
}

type CreateToolRequest struct {
	Name           string `json:"name" binding:"required"`
	Category       string `json:"category" binding:"required"`
	OrderIndex     int    `json:"order_index" binding:"gte=0"`
	KnowledgeLevel string `json:"knowledge_level"`
}

type UpdateToolRequest struct {
	Name           *string `json:"name"`
	Category       *string `json:"category"`
	KnowledgeLevel *string `json:"knowledge_level"`
}

type CreateExperienceRequest struct {
	Role             string     `json:"role" binding:"required"`
	Company          string     `json:"company" binding:"required"`
	StartDate        time.Time  `json:"start_date" binding:"required"`
	EndDate          *time.Time `json:"end_date"`
	Description      *string    `json:"description"`
	Responsibilities []string   `json:"responsibilities"`
	OrderIndex       int        `json:"order_index" binding:"gte=0"`
}

type UpdateExperienceRequest struct {
	Role             *string             `json:"role"`
	Company          *string             `json:"company"`
	StartDate        *time.Time          `json:"start_date"`
	EndDate          Optional[time.Time] `json:"end_date"`
	Description      *string             `json:"description"`
	Responsibilities []string            `json:"responsibilities"`
}

type CreateEducationRequest struct {
	Institution string     `json:"institution" binding:"required"`
	Degree      string     `json:"degree" binding:"required"`
	Field       string     `json:"field" binding:"required"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	Description *string    `json:"description"`
	OrderIndex  int        `json:"order_index" binding:"gte=0"`
}

type UpdateEducationRequest struct {
	Institution *string             `json:"institution"`
	Degree      *string             `json:"degree"`
	Field       *string             `json:"field"`
	StartDate   *time.Time          `json:"start_date"`
	EndDate     Optional[time.Time] `json:"end_date"`
	Description *string             `json:"description"`
}

type CreateTrainingRequest struct {
	Title       string  `json:"title" binding:"required"`
	Provider    string  `json:"provider" binding:"required"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
	OrderIndex  int     `json:"order_index" binding:"gte=0"`
}

type UpdateTrainingRequest struct {
	Title       *string `json:"title"`
	Provider    *string `json:"provider"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
}

type CreateProjectRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	LiveURL      *string    `json:"live_url"`
	RepoURL      *string    `json:"repo_url"`
	Technologies []string   `json:"technologies"`
	OrderIndex   int        `json:"order_index" binding:"gte=0"`
}

type UpdateProjectRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	StartDate    *time.Time          `json:"start_date"`
	EndDate      Optional[time.Time] `json:"end_date"`
	LiveURL      Optional[string]    `json:"live_url"`
	RepoURL      Optional[string]    `json:"repo_url"`
	Technologies []string            `json:"technologies"`
}

type CreateCertificationRequest struct {
	Title         string     `json:"title" binding:"required"`
	Issuer        string     `json:"issuer" binding:"required"`
	IssueDate     time.Time  `json:"issue_date" binding:"required"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialID  *string    `json:"credential_id"`
	CredentialURL *string    `json:"credential_url"`
	OrderIndex    int        `json:"order_index" binding:"gte=0"`
}

type UpdateCertificationRequest struct {
	Title         *string             `json:"title"`
	Issuer        *string             `json:"issuer"`
	IssueDate     *time.Time          `json:"issue_date"`
	ExpiryDate    Optional[time.Time] `json:"expiry_date"`
	CredentialID  *string             `json:"credential_id"`
	CredentialURL *string             `json:"credential_url"`
}

type CreateLanguageRequest struct {
	Name        string `json:"name" binding:"required"`
	Proficiency string `json:"proficiency"`
	OrderIndex  int    `json:"order_index" binding:"gte=0"`
}

type UpdateLanguageRequest struct {
	Name        *string `json:"name"`
	Proficiency *string `json:"proficiency"`
}

type CreateProgrammingLanguageRequest struct {
	Name       string `json:"name" binding:"required"`
	Level      string `json:"level"`
	OrderIndex int    `json:"order_index" binding:"gte=0"`
}

type UpdateProgrammingLanguageRequest struct {
	Name  *string `json:"name"`
	Level *string `json:"level"`
}

type CreateSocialNetworkRequest struct {
	Platform   string  `json:"platform" binding:"required"`
	URL        string  `json:"url" binding:"required,url"`
	Username   *string `json:"username"`
	OrderIndex int     `json:"order_index" binding:"gte=0"`
}

type UpdateSocialNetworkRequest struct {
	Platform *string `json:"platform"`
	URL      *string `json:"url"`
	Username *string `json:"username"`
}

// Contact information

type CreateContactInfoRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone"`
	LinkedInURL *string `json:"linkedin_url"`
	GitHubURL   *string `json:"github_url"`
	WebsiteURL  *string `json:"website_url"`
}

type UpdateContactInfoRequest struct {
	Email       *string          `json:"email"`
	Phone       Optional[string] `json:"phone"`
	LinkedInURL *string          `json:"linkedin_url"`
	GitHubURL   *string          `json:"github_url"`
	WebsiteURL  *string          `json:"website_url"`
}

// Contact messages

type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
