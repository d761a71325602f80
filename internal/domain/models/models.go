package models

// User is the registration record. The username doubles as the session
// principal; Password holds the bcrypt hash, never the raw value.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Booking is an ambulance ride request owned by the creating user.
// Username is set from the session at insert time and never reassigned.
type Booking struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	PatientName    string `json:"patient_name"`
	PickupLocation string `json:"pickup_location"`
	Destination    string `json:"destination"`
	ContactNumber  string `json:"contact_number"`
}

// ContactMessage is write-only: stored on submission, never read back.
type ContactMessage struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
