package service

import (
	"context"
	"testing"

	"warbler/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, string, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, search string, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, search, limit, offset)
}

// noopUserRepo returns a stub whose methods all succeed with zero values.
// Tests override the methods they care about.
func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
	}
}

type socialRepoStub struct {
	addFollowFn     func(context.Context, uint, uint) error
	removeFollowFn  func(context.Context, uint, uint) error
	isFollowingFn   func(context.Context, uint, uint) (bool, error)
	followingFn     func(context.Context, uint) ([]models.User, error)
	followersFn     func(context.Context, uint) ([]models.User, error)
	addBlockFn      func(context.Context, uint, uint) error
	removeBlockFn   func(context.Context, uint, uint) error
	isBlockingFn    func(context.Context, uint, uint) (bool, error)
	addLikeFn       func(context.Context, uint, uint) error
	removeLikeFn    func(context.Context, uint, uint) error
	isLikedFn       func(context.Context, uint, uint) (bool, error)
	likedMessagesFn func(context.Context, uint) ([]models.Message, error)
}

func (s *socialRepoStub) AddFollow(ctx context.Context, followerID, followedID uint) error {
	return s.addFollowFn(ctx, followerID, followedID)
}
func (s *socialRepoStub) RemoveFollow(ctx context.Context, followerID, followedID uint) error {
	return s.removeFollowFn(ctx, followerID, followedID)
}
func (s *socialRepoStub) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followedID)
}
func (s *socialRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID)
}
func (s *socialRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}
func (s *socialRepoStub) AddBlock(ctx context.Context, blockerID, blockedID uint) error {
	return s.addBlockFn(ctx, blockerID, blockedID)
}
func (s *socialRepoStub) RemoveBlock(ctx context.Context, blockerID, blockedID uint) error {
	return s.removeBlockFn(ctx, blockerID, blockedID)
}
func (s *socialRepoStub) IsBlocking(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	return s.isBlockingFn(ctx, blockerID, blockedID)
}
func (s *socialRepoStub) AddLike(ctx context.Context, userID, messageID uint) error {
	return s.addLikeFn(ctx, userID, messageID)
}
func (s *socialRepoStub) RemoveLike(ctx context.Context, userID, messageID uint) error {
	return s.removeLikeFn(ctx, userID, messageID)
}
func (s *socialRepoStub) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, messageID)
}
func (s *socialRepoStub) LikedMessages(ctx context.Context, userID uint) ([]models.Message, error) {
	return s.likedMessagesFn(ctx, userID)
}

func noopSocialRepo() *socialRepoStub {
	return &socialRepoStub{
		addFollowFn:     func(context.Context, uint, uint) error { return nil },
		removeFollowFn:  func(context.Context, uint, uint) error { return nil },
		isFollowingFn:   func(context.Context, uint, uint) (bool, error) { return false, nil },
		followingFn:     func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followersFn:     func(context.Context, uint) ([]models.User, error) { return nil, nil },
		addBlockFn:      func(context.Context, uint, uint) error { return nil },
		removeBlockFn:   func(context.Context, uint, uint) error { return nil },
		isBlockingFn:    func(context.Context, uint, uint) (bool, error) { return false, nil },
		addLikeFn:       func(context.Context, uint, uint) error { return nil },
		removeLikeFn:    func(context.Context, uint, uint) error { return nil },
		isLikedFn:       func(context.Context, uint, uint) (bool, error) { return false, nil },
		likedMessagesFn: func(context.Context, uint) ([]models.Message, error) { return nil, nil },
	}
}

type messageRepoStub struct {
	createFn   func(context.Context, *models.Message) error
	getByIDFn  func(context.Context, uint) (*models.Message, error)
	deleteFn   func(context.Context, uint) error
	timelineFn func(context.Context, uint, int) ([]models.Message, error)
	byUserFn   func(context.Context, uint, int) ([]models.Message, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	return s.getByIDFn(ctx, id)
}
func (s *messageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *messageRepoStub) Timeline(ctx context.Context, userID uint, limit int) ([]models.Message, error) {
	return s.timelineFn(ctx, userID, limit)
}
func (s *messageRepoStub) ByUser(ctx context.Context, userID uint, limit int) ([]models.Message, error) {
	return s.byUserFn(ctx, userID, limit)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:   func(context.Context, *models.Message) error { return nil },
		getByIDFn:  func(_ context.Context, id uint) (*models.Message, error) { return &models.Message{ID: id}, nil },
		deleteFn:   func(context.Context, uint) error { return nil },
		timelineFn: func(context.Context, uint, int) ([]models.Message, error) { return nil, nil },
		byUserFn:   func(context.Context, uint, int) ([]models.Message, error) { return nil, nil },
	}
}

type dmRepoStub struct {
	createFn func(context.Context, *models.DirectMessage) error
	inboxFn  func(context.Context, uint) ([]models.DirectMessage, error)
	sentFn   func(context.Context, uint) ([]models.DirectMessage, error)
}

func (s *dmRepoStub) Create(ctx context.Context, dm *models.DirectMessage) error {
	return s.createFn(ctx, dm)
}
func (s *dmRepoStub) Inbox(ctx context.Context, userID uint) ([]models.DirectMessage, error) {
	return s.inboxFn(ctx, userID)
}
func (s *dmRepoStub) Sent(ctx context.Context, userID uint) ([]models.DirectMessage, error) {
	return s.sentFn(ctx, userID)
}

func noopDMRepo() *dmRepoStub {
	return &dmRepoStub{
		createFn: func(context.Context, *models.DirectMessage) error { return nil },
		inboxFn:  func(context.Context, uint) ([]models.DirectMessage, error) { return nil, nil },
		sentFn:   func(context.Context, uint) ([]models.DirectMessage, error) { return nil, nil },
	}
}

func assertAppCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if !models.HasCode(err, code) {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}
