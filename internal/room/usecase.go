package room

import "context"

type RoomUsecase interface {
	// ResolvePublic canonicalizes a caller-supplied room token: lookup by
	// name first, then by id when the token parses as one, and finally
	// create-on-miss. Concurrent creates for one unseen name converge on a
	// single room through the unique name constraint.
	ResolvePublic(ctx context.Context, token string) (*RoomDTO, error)

	// FindPublic resolves the same token forms as ResolvePublic but never
	// creates: references that merely mention a room (leave, typing) must
	// not mint one.
	FindPublic(ctx context.Context, token string) (*RoomDTO, error)

	// ResolvePrivate is lookup-only; private rooms are provisioned solely
	// by friend-request acceptance.
	ResolvePrivate(ctx context.Context, id string) (*PrivateRoomDTO, error)

	// ListPublicRooms returns non-private rooms keyed by name.
	ListPublicRooms(ctx context.Context) (map[string]*RoomDTO, error)

	// EnsureDefaultRooms seeds the starter rooms when the table is empty.
	EnsureDefaultRooms(ctx context.Context) error
}
