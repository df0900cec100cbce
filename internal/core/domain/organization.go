package domain

// Organization groups records and serves as the picklist source for
// the tag/organization editor.
type Organization struct {
	// ID is the opaque identifier assigned by the server.
	ID string

	// Name is the display name.
	Name string

	// Description is an optional free-form description.
	Description string

	// MemberCount is the number of members, when the server reports it.
	MemberCount int

	// StorageUsed is the storage consumed in bytes, when reported.
	StorageUsed int64
}

// Stats is the service-wide dashboard summary.
type Stats struct {
	// TotalClips is the number of stored records.
	TotalClips int

	// TotalOrganizations is the number of organizations.
	TotalOrganizations int

	// ActiveProjects is the number of organizations with records.
	ActiveProjects int

	// StorageUsedGB is the artifact storage consumed, in gigabytes.
	StorageUsedGB float64
}
