package media

type CreateInput struct {
	// Path is relative to the media prefix.
	Path        string
	Description *string
	OwnerID     *uint
}

type Patch struct {
	Path        *string
	Description *string
	OwnerID     *uint
}
