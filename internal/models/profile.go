package models

// Profile is the payload delivered by the identity provider after a
// successful federated login.
type Profile struct {
	ExternalID  string `json:"external_id"`  // Provider-issued subject id
	DisplayName string `json:"display_name"` // Display name from the provider profile
	Email       string `json:"email"`        // Verified email from the provider
	FirstName   string `json:"first_name"`   // Given name
	LastName    string `json:"last_name"`    // Family name
}
