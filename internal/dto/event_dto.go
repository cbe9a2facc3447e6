package dto

// NotebookSharedMessage is the payload published when a grant is created or
// updated. Consumed by the notification worker to send the share email.
type NotebookSharedMessage struct {
	NotebookId     string `json:"notebook_id"`
	NotebookName   string `json:"notebook_name"`
	OwnerEmail     string `json:"owner_email"`
	RecipientEmail string `json:"recipient_email"`
	Permission     string `json:"permission"`
}
