package domain

// User is an entry in the assignee directory.
//
// Example JSON representation:
//
//	{
//	    "id": "u-amy",
//	    "full_name": "Amy Okafor",
//	    "role": "operations",
//	    "department": "logistics"
//	}
type User struct {
	// ID is the unique identifier referenced by Task.AssignedTo.
	ID string `json:"id"`

	// FullName is the display name shown in the console.
	FullName string `json:"full_name"`

	// Role is the user's role within the organization.
	Role string `json:"role,omitempty"`

	// Department is the user's department.
	Department string `json:"department,omitempty"`
}
