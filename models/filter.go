package models

// UserFilter narrows the administrative user query. Zero-valued fields are
// ignored; an entirely zero filter matches every user. All values are bound
// as SQL parameters, never interpolated into query text.
type UserFilter struct {
	// Login filters by exact login match.
	Login string

	// Email filters by exact email match.
	Email string

	// Limit caps the number of returned rows. Zero means no limit.
	Limit uint64
}
