package services

import (
	"errors"

	"github.com/srimandev/taskmate/internal/models"
	"gorm.io/gorm"
)

// FriendshipUserRepository is the slice of the user store the state machine
// needs. SavePair must persist both records in one transaction so a crash
// can never leave a one-sided friendship behind.
type FriendshipUserRepository interface {
	FindByID(userID uint) (models.User, error)
	Save(user *models.User) error
	SavePair(first *models.User, second *models.User) error
	ListWithoutFriend(excludingUserID uint) ([]models.User, error)
	ListByIDs(userIDs []uint) ([]models.User, error)
}

// FriendshipService drives the pairwise state machine: Unrelated,
// RequestPending in either direction, Friends. Every state is reachable
// again; removal returns a pair to Unrelated.
type FriendshipService struct {
	users FriendshipUserRepository
}

func NewFriendshipService(users FriendshipUserRepository) *FriendshipService {
	return &FriendshipService{users: users}
}

// SendRequest records senderID in the recipient's request set. Self-requests
// and requests to a user who already has a friend are rejected outright.
func (service *FriendshipService) SendRequest(senderID uint, recipientID uint) error {
	if senderID == recipientID {
		return ErrSelfRequest
	}

	recipient, err := service.findUser(recipientID)
	if err != nil {
		return err
	}

	if recipient.FriendID != nil && *recipient.FriendID == senderID {
		return ErrAlreadyFriends
	}
	if recipient.HasFriend() {
		return ErrRecipientUnavailable
	}
	if recipient.HasRequestFrom(senderID) {
		return ErrRequestAlreadySent
	}

	recipient.FriendRequests = append(recipient.FriendRequests, senderID)
	return service.users.Save(&recipient)
}

// AcceptRequest links both users symmetrically and clears the pending
// request. Both sides must currently be friend-free; an accept never
// overwrites an existing friendship.
func (service *FriendshipService) AcceptRequest(recipientID uint, senderID uint) error {
	recipient, err := service.findUser(recipientID)
	if err != nil {
		return err
	}
	sender, err := service.findUser(senderID)
	if err != nil {
		return err
	}

	if recipient.HasFriend() || sender.HasFriend() {
		return ErrFriendSlotTaken
	}

	recipient.FriendID = &sender.ID
	sender.FriendID = &recipient.ID
	recipient.RemoveRequestFrom(senderID)

	return service.users.SavePair(&recipient, &sender)
}

// DeclineRequest drops senderID from the recipient's request set. Declining
// a request that was never sent is a no-op success.
func (service *FriendshipService) DeclineRequest(recipientID uint, senderID uint) error {
	recipient, err := service.findUser(recipientID)
	if err != nil {
		return err
	}

	if !recipient.RemoveRequestFrom(senderID) {
		return nil
	}
	return service.users.Save(&recipient)
}

// RemoveFriend clears the friendship on both sides.
func (service *FriendshipService) RemoveFriend(userID uint) error {
	user, err := service.findUser(userID)
	if err != nil {
		return err
	}
	if !user.HasFriend() {
		return ErrNoFriend
	}

	friend, err := service.findUser(*user.FriendID)
	if err != nil {
		return err
	}

	user.FriendID = nil
	friend.FriendID = nil
	return service.users.SavePair(&user, &friend)
}

// HasFriend is a pure query; a missing user record reads as false.
func (service *FriendshipService) HasFriend(userID uint) (bool, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.HasFriend(), nil
}

// CurrentFriend resolves the caller's friend record.
func (service *FriendshipService) CurrentFriend(userID uint) (models.User, error) {
	user, err := service.findUser(userID)
	if err != nil {
		return models.User{}, err
	}
	if !user.HasFriend() {
		return models.User{}, ErrNoFriend
	}
	return service.findUser(*user.FriendID)
}

// ListUsersWithoutFriend projects every friend-free user except the caller.
func (service *FriendshipService) ListUsersWithoutFriend(excludingUserID uint) ([]models.UserSummary, error) {
	users, err := service.users.ListWithoutFriend(excludingUserID)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

// ListIncomingRequests projects the users referenced by the caller's
// request set. Ids whose records have since vanished are skipped.
func (service *FriendshipService) ListIncomingRequests(userID uint) ([]models.UserSummary, error) {
	user, err := service.findUser(userID)
	if err != nil {
		return nil, err
	}

	senders, err := service.users.ListByIDs(user.FriendRequests)
	if err != nil {
		return nil, err
	}
	return summarize(senders), nil
}

func (service *FriendshipService) findUser(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func summarize(users []models.User) []models.UserSummary {
	summaries := make([]models.UserSummary, 0, len(users))
	for index := range users {
		summaries = append(summaries, users[index].Summary())
	}
	return summaries
}
