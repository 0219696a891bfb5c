package call

// Contact is the customer information shown alongside a call.
type Contact struct {
	Name            string
	Phone           string
	Email           string
	MembershipLevel string
}

// View is a call joined with its customer and the handling agent. Contact
// and AgentName are nil when the referenced rows are missing.
type View struct {
	Call      *Call
	Contact   *Contact
	AgentName *string
}
