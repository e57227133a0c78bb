package domain

type JobStatus string

const (
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
)

type ItemStatus string

const (
	ItemIncomplete ItemStatus = "Incomplete"
	ItemComplete   ItemStatus = "Complete"
)

type UserType string

const (
	UserOwner  UserType = "Owner"
	UserAdmin  UserType = "Admin"
	UserMember UserType = "User"
	UserClient UserType = "Client"
)

// ValidUserTypes is the canonical set of accepted user type strings.
var ValidUserTypes = map[string]bool{
	"Owner": true, "Admin": true, "User": true, "Client": true,
}

// ItemKind distinguishes the two kinds of schedulable phase children.
type ItemKind string

const (
	KindTask     ItemKind = "task"
	KindMaterial ItemKind = "material"
)
