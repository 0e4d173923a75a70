package usecase

import (
	"context"

	"github.com/F2fX4553/polychat/internal/room"
	models "github.com/F2fX4553/polychat/internal/room/model"
	"github.com/F2fX4553/polychat/internal/room/repository"
	appErrors "github.com/F2fX4553/polychat/pkg/errors"
	"github.com/F2fX4553/polychat/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type RoomUsecase struct {
	repo   room.RoomRepository
	logger logger.Logger
}

func NewRoomUsecase(repo room.RoomRepository, logger logger.Logger) *RoomUsecase {
	return &RoomUsecase{repo: repo, logger: logger}
}

// ResolvePublic canonicalizes a room token. The token is tried as a name,
// then as an id, and an unseen name becomes a real room on the spot. When
// two resolvers race on the same unseen name the unique constraint rejects
// one insert and that caller re-resolves by name, so both converge on a
// single canonical id.
func (uc *RoomUsecase) ResolvePublic(ctx context.Context, token string) (*room.RoomDTO, error) {
	if token == "" {
		return nil, appErrors.ErrDestinationRequired
	}

	r, err := uc.lookupPublic(ctx, token)
	switch {
	case err == nil:
		return roomToDTO(r), nil
	case errors.Is(err, repository.ErrRoomNotFound):
		// fall through to create
	default:
		return nil, appErrors.ErrStoreUnavailable(err)
	}

	created := &models.ChatRoom{
		Name:        token,
		Description: "Chat room " + token,
	}
	err = uc.repo.CreateRoom(ctx, created)
	switch {
	case err == nil:
		uc.logger.Infof("created public room %q (%s)", created.Name, created.ID)
		return roomToDTO(created), nil
	case errors.Is(err, repository.ErrDuplicateRoomName):
		// Lost the create race; the winner's room is canonical.
		r, err = uc.repo.FindRoomByName(ctx, token)
		if err != nil {
			return nil, appErrors.ErrStoreUnavailable(err)
		}
		return roomToDTO(r), nil
	default:
		return nil, appErrors.ErrStoreUnavailable(err)
	}
}

// FindPublic is the lookup-only counterpart of ResolvePublic, for callers
// that reference a room without the authority to mint one (leave, typing).
func (uc *RoomUsecase) FindPublic(ctx context.Context, token string) (*room.RoomDTO, error) {
	if token == "" {
		return nil, appErrors.ErrDestinationRequired
	}

	r, err := uc.lookupPublic(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, appErrors.ErrRoomNotFound
		}
		return nil, appErrors.ErrStoreUnavailable(err)
	}
	return roomToDTO(r), nil
}

// lookupPublic tries the token as a name, then as an id. Returns
// repository.ErrRoomNotFound when neither matches.
func (uc *RoomUsecase) lookupPublic(ctx context.Context, token string) (*models.ChatRoom, error) {
	r, err := uc.repo.FindRoomByName(ctx, token)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, repository.ErrRoomNotFound) {
		return nil, err
	}

	if id, parseErr := uuid.Parse(token); parseErr == nil {
		return uc.repo.FindRoomByID(ctx, id)
	}
	return nil, repository.ErrRoomNotFound
}

func (uc *RoomUsecase) ResolvePrivate(ctx context.Context, id string) (*room.PrivateRoomDTO, error) {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return nil, appErrors.ErrPrivateRoomNotFound
	}

	r, err := uc.repo.FindPrivateRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrPrivateRoomNotFound) {
			return nil, appErrors.ErrPrivateRoomNotFound
		}
		return nil, appErrors.ErrStoreUnavailable(err)
	}
	return privateRoomToDTO(r), nil
}

func (uc *RoomUsecase) ListPublicRooms(ctx context.Context) (map[string]*room.RoomDTO, error) {
	rooms, err := uc.repo.ListPublicRooms(ctx)
	if err != nil {
		return nil, appErrors.ErrStoreUnavailable(err)
	}

	result := make(map[string]*room.RoomDTO, len(rooms))
	for i := range rooms {
		result[rooms[i].Name] = roomToDTO(&rooms[i])
	}
	return result, nil
}

var defaultRooms = []models.ChatRoom{
	{Name: "General", Description: "Public chat for everyone"},
	{Name: "Developers", Description: "Technical discussions about Polygon"},
	{Name: "Trading", Description: "Price discussion and market analysis"},
}

func (uc *RoomUsecase) EnsureDefaultRooms(ctx context.Context) error {
	count, err := uc.repo.CountRooms(ctx)
	if err != nil {
		return appErrors.ErrStoreUnavailable(err)
	}
	if count > 0 {
		return nil
	}

	for i := range defaultRooms {
		r := defaultRooms[i]
		if err := uc.repo.CreateRoom(ctx, &r); err != nil {
			// Another instance may have seeded concurrently.
			if errors.Is(err, repository.ErrDuplicateRoomName) {
				continue
			}
			return appErrors.ErrStoreUnavailable(err)
		}
	}
	uc.logger.Info("default chat rooms created")
	return nil
}

func roomToDTO(r *models.ChatRoom) *room.RoomDTO {
	dto := &room.RoomDTO{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
		IsPrivate:   r.IsPrivate,
	}
	if !r.CreatedAt.IsZero() {
		t := r.CreatedAt
		dto.CreatedAt = &t
	}
	return dto
}

func privateRoomToDTO(r *models.PrivateChatRoom) *room.PrivateRoomDTO {
	dto := &room.PrivateRoomDTO{
		ID:      r.ID.String(),
		User1ID: r.User1ID,
		User2ID: r.User2ID,
	}
	if !r.CreatedAt.IsZero() {
		t := r.CreatedAt
		dto.CreatedAt = &t
	}
	return dto
}
