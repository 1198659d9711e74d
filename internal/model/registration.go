package model

// PartnerRegistration is the payload submitted by the partner onboarding
// form and forwarded to the backend's partner registration endpoint.
type PartnerRegistration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	BusinessType string `json:"business_type"`
	Experience   string `json:"experience"`
	ServiceArea  string `json:"service_area"`
}

// ProfessionalAddress is the structured address collected by the freelance
// professional wizard.
type ProfessionalAddress struct {
	Street string `json:"street"`
	Suburb string `json:"suburb"`
	City   string `json:"city"`
}

// ProfessionalRegistration is the payload submitted by the freelance
// professional onboarding wizard.
type ProfessionalRegistration struct {
	FullName           string              `json:"full_name"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone"`
	Nationality        string              `json:"nationality"`
	HasNZLicense       bool                `json:"has_nz_license"`
	Address            ProfessionalAddress `json:"address"`
	YearsExperience    string              `json:"years_experience"`
	Specializations    []string            `json:"specializations"`
	Availability       string              `json:"availability"`
	PreferredStartDate string              `json:"preferred_start_date"`
	AboutYourself      string              `json:"about_yourself"`
	Location           string              `json:"location"`
	ServiceCategory    string              `json:"service_category"`
}

// RegistrationAck is the backend's acknowledgement of an onboarding
// submission.
type RegistrationAck struct {
	ID      FlexID `json:"id,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// User is the authenticated account snapshot returned by the backend.
type User struct {
	ID           FlexID `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	IsActive     bool   `json:"is_active"`
	BusinessType string `json:"business_type,omitempty"`
}

// Credentials is the login payload forwarded to the backend.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the backend's response to a successful login or
// registration: a bearer token plus the account it belongs to.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}
