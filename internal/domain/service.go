package domain

// Service identifies an external service an automation can touch.
type Service string

// Supported external services.
const (
	ServiceSlack  Service = "slack"
	ServiceJira   Service = "jira"
	ServiceS3     Service = "s3"
	ServiceGitHub Service = "github"

	// ServiceNone marks capabilities that run inside the process and need
	// no external credential (e.g. text analysis).
	ServiceNone Service = ""
)

// IsValid reports whether s names a supported external service.
func (s Service) IsValid() bool {
	switch s {
	case ServiceSlack, ServiceJira, ServiceS3, ServiceGitHub:
		return true
	default:
		return false
	}
}

func (s Service) String() string {
	return string(s)
}
