package model

// Role is the coarse access-control class of a user.  It is assigned once at
// signup and is not self-changeable through this service; the closed set of
// values below is the only one the access policy recognizes.  Any other value
// found in a session grants no privileges at all.
type Role string

const (
	RoleConsumer Role = "Consumer" // regular diner browsing stalls and writing reviews
	RoleHawker   Role = "Hawker"   // stall operator; gated behind admin verification
	RoleAdmin    Role = "Admin"    // platform administrator
)

// Valid reports whether r is one of the three recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleConsumer, RoleHawker, RoleAdmin:
		return true
	}
	return false
}

// Profile is the user profile as carried in the session cookie snapshot and
// as returned by the remote profile endpoint.  The JSON field names match the
// data API's contract.
//
// VerifyStatus is a pointer because it is only meaningful for Hawkers: absent
// for Consumers and Admins, false for a Hawker still pending admin approval,
// true once approved.
type Profile struct {
	Name          string `json:"name"`
	EmailAddress  string `json:"emailAddress"`
	ProfilePhoto  string `json:"profilePhoto,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Role          Role   `json:"role"`
	VerifyStatus  *bool  `json:"verifyStatus,omitempty"`
	IsGoogleUser  bool   `json:"isGoogleUser,omitempty"`
}

// Verified reports whether the profile carries an affirmative verification
// flag.  A missing flag counts as unverified so that enforcement fails closed.
func (p Profile) Verified() bool {
	return p.VerifyStatus != nil && *p.VerifyStatus
}

// User is the bare account record embedded in API responses (login results,
// hawker records).  Unlike Profile it carries the numeric account id.
type User struct {
	UserID        int64  `json:"userID"`
	Name          string `json:"name"`
	EmailAddress  string `json:"emailAddress"`
	ProfilePhoto  string `json:"profilePhoto,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Role          Role   `json:"role"`
}
