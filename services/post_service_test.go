package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/apperrors"
	"microblog/models"
)

func TestUpdateInsideEditWindow(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")

	post, err := svc.Create(owner.ID, "hello")
	require.NoError(t, err)

	svc.now = func() time.Time { return post.CreatedAt.Add(EditWindow - time.Second) }

	updated, err := svc.Update(post.ID, owner.ID, "hello, edited")
	require.NoError(t, err)
	assert.Equal(t, "hello, edited", updated.Content)
}

func TestUpdateAtAndAfterEditWindowBoundary(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")

	post, err := svc.Create(owner.ID, "hello")
	require.NoError(t, err)

	for _, elapsed := range []time.Duration{EditWindow, EditWindow + time.Hour} {
		svc.now = func() time.Time { return post.CreatedAt.Add(elapsed) }

		_, err := svc.Update(post.ID, owner.ID, "too late")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrForbidden), "elapsed %v", elapsed)
	}
}

func TestUpdateWindowNotResetByEdits(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")

	post, err := svc.Create(owner.ID, "hello")
	require.NoError(t, err)

	svc.now = func() time.Time { return post.CreatedAt.Add(5 * time.Minute) }
	_, err = svc.Update(post.ID, owner.ID, "first edit")
	require.NoError(t, err)

	// The window still runs from creation, not from the first edit.
	svc.now = func() time.Time { return post.CreatedAt.Add(EditWindow + time.Minute) }
	_, err = svc.Update(post.ID, owner.ID, "second edit")
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestUpdateByNonOwnerForbiddenRegardlessOfTime(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")

	post, err := svc.Create(owner.ID, "hello")
	require.NoError(t, err)

	_, err = svc.Update(post.ID, other.ID, "hijack")
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestUpdateMissingPost(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")

	_, err := svc.Update(999, owner.ID, "ghost")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCreateContentBounds(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")

	_, err := svc.Create(owner.ID, "")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRequest))

	_, err = svc.Create(owner.ID, strings.Repeat("a", MaxContentLength+1))
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRequest))

	_, err = svc.Create(owner.ID, strings.Repeat("a", MaxContentLength))
	assert.NoError(t, err)
}

func TestLikeTwiceConflicts(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")

	post, err := svc.Create(owner.ID, "hello")
	require.NoError(t, err)

	require.NoError(t, svc.Like(post.ID, owner.ID))

	err = svc.Like(post.ID, owner.ID)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnlikeWithoutLike(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")

	post, err := svc.Create(owner.ID, "hello")
	require.NoError(t, err)

	err = svc.Unlike(post.ID, owner.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestLikeMissingPost(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")

	err := svc.Like(999, owner.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestRetweetToggle(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")

	post, err := svc.Create(owner.ID, "hello")
	require.NoError(t, err)

	require.NoError(t, svc.Retweet(post.ID, owner.ID))
	assert.True(t, errors.Is(svc.Retweet(post.ID, owner.ID), apperrors.ErrConflict))
	require.NoError(t, svc.Unretweet(post.ID, owner.ID))
	assert.True(t, errors.Is(svc.Unretweet(post.ID, owner.ID), apperrors.ErrNotFound))
}

func TestDeleteCascadesAndLocksOutLikes(t *testing.T) {
	svc, db := newPostService(t)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")

	post, err := svc.Create(owner.ID, "hello")
	require.NoError(t, err)
	require.NoError(t, svc.Like(post.ID, other.ID))
	require.NoError(t, svc.Retweet(post.ID, other.ID))

	// Delete by a non-owner is forbidden.
	assert.True(t, errors.Is(svc.Delete(post.ID, other.ID), apperrors.ErrForbidden))

	// Delete is not time-restricted for the owner.
	svc.now = func() time.Time { return post.CreatedAt.Add(24 * time.Hour) }
	require.NoError(t, svc.Delete(post.ID, owner.ID))

	var likes, retweets int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likes).Error)
	require.NoError(t, db.Model(&models.Retweet{}).Count(&retweets).Error)
	assert.Zero(t, likes)
	assert.Zero(t, retweets)

	// Liking the deleted post now fails NotFound.
	assert.True(t, errors.Is(svc.Like(post.ID, other.ID), apperrors.ErrNotFound))
}
