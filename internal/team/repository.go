package team

import (
	"context"
	"time"
)

// MemberBatch pairs a member with the windows to store for them.
type MemberBatch struct {
	Member  *Member
	Windows []*Availability
}

// Repository defines the storage interface for members and availability.
type Repository interface {
	// CreateMember adds a new member. Returns ErrDuplicateMember if the name is taken.
	CreateMember(ctx context.Context, m *Member) error

	// GetMemberByName retrieves a member by name (case-insensitive).
	// Returns ErrMemberNotFound if no member matches.
	GetMemberByName(ctx context.Context, name string) (*Member, error)

	// ListMembers returns all members ordered by name.
	ListMembers(ctx context.Context) ([]*Member, error)

	// DeleteMember removes a member and all of their availability.
	DeleteMember(ctx context.Context, id int64) error

	// AddAvailability stores an availability window.
	AddAvailability(ctx context.Context, a *Availability) error

	// ListAvailability returns a member's windows overlapping [from, to), ordered by start.
	ListAvailability(ctx context.Context, memberID int64, from, to time.Time) ([]*Availability, error)

	// ImportMembers stores a batch atomically: either every member and
	// window is written or nothing is. Entries with a zero member ID are
	// created. Returns ErrDuplicateMember if a name appears twice in the
	// batch or a new member's name is taken.
	ImportMembers(ctx context.Context, batch []MemberBatch) error

	// ClearAvailability removes all windows of a member and returns how many were removed.
	ClearAvailability(ctx context.Context, memberID int64) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}
