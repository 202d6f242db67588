package request

// Credentials is the request body for signup and login.
// Username is only required for signup.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}

// SubmitScore is the request body for submitting a game result
type SubmitScore struct {
	Score int    `json:"score"`
	Mode  string `json:"mode"`
}
