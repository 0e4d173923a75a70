package errors

var (
	// Domain errors — used in usecase/repository
	ErrUserNotFound        = NotFound("user not found")
	ErrRoomNotFound        = NotFound("room not found")
	ErrPrivateRoomNotFound = NotFound("private room not found")
	ErrMessageNotFound     = NotFound("message not found")
	ErrRequestNotFound     = NotFound("friend request not found")
	ErrInvalidParty        = NotFound("sender or receiver not found")
	ErrDuplicateRequest    = AlreadyExists("friend request already sent")
	ErrNotMessageOwner     = Forbidden("you can only delete your own messages")
	ErrWalletRequired      = InvalidArg("wallet address required")
	ErrContentRequired     = InvalidArg("message content required")
	ErrDestinationRequired = InvalidArg("room or private room id required")
	ErrQueryTooShort       = InvalidArg("search query must be at least 3 characters")
	ErrInvalidAction       = InvalidArg("action must be accept or reject")
	ErrFileTypeNotAllowed  = InvalidArg("file type not allowed")
)

func ErrStoreUnavailable(cause error) error {
	return Wrap(CodeUnavailable, "store unavailable", cause)
}
