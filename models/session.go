package models

// AMREntry records one authentication method used to establish a session,
// with the unix timestamp of when it happened. A method of "recovery" marks
// a session established through a password-reset link.
type AMREntry struct {
	Method    string `json:"method"`
	Timestamp int64  `json:"timestamp"`
}

// Session struct for storing session data
type Session struct {
	Token     string     `json:"session_token"`
	UserID    string     `json:"user_id"`
	Email     string     `json:"email"`
	CreatedAt string     `json:"created_at"`
	ExpiresAt string     `json:"expires_at"`
	AMR       []AMREntry `json:"amr"`
}

// RecoveryAMR returns the "recovery" entry of the session's AMR list, or nil.
func (s *Session) RecoveryAMR() *AMREntry {
	if s == nil {
		return nil
	}
	for i := range s.AMR {
		if s.AMR[i].Method == "recovery" {
			return &s.AMR[i]
		}
	}
	return nil
}
