package model

// Roles issued by the user service and honoured by the gateway's
// role middleware.
const (
	RoleCustomer       = "CUSTOMER"
	RoleTheaterManager = "THEATER_MANAGER"
)

// User mirrors the user service's public view of an account.  The
// gateway never sees or stores credentials; authentication happens in
// the user service and only the resulting token passes through here.
type User struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
