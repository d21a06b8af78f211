package server

import (
	"net/http"
	"strings"
	"testing"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessage(t *testing.T) {
	t.Run("anonymous posting is rejected and nothing persists", func(t *testing.T) {
		_, app, db := newTestServer(t)

		resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/messages/new", map[string]string{
			"text": "should not exist",
		}, nil))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var count int64
		require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("authenticated posting persists the warble", func(t *testing.T) {
		s, app, db := newTestServer(t)
		user := createUser(t, db, "testuser", "password")
		cookie := sessionCookie(t, s, user.ID)

		resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/messages/new", map[string]string{
			"text": "hello warbler",
		}, cookie))
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var msg models.Message
		require.NoError(t, db.First(&msg).Error)
		assert.Equal(t, "hello warbler", msg.Text)
		assert.Equal(t, user.ID, msg.UserID)
	})

	t.Run("text over 140 characters is rejected", func(t *testing.T) {
		s, app, db := newTestServer(t)
		user := createUser(t, db, "testuser", "password")
		cookie := sessionCookie(t, s, user.ID)

		resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/messages/new", map[string]string{
			"text": strings.Repeat("a", 141),
		}, cookie))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteMessage(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		s, app, db := newTestServer(t)
		user := createUser(t, db, "testuser", "password")
		msg := &models.Message{Text: "mine", UserID: user.ID}
		require.NoError(t, db.Create(msg).Error)
		cookie := sessionCookie(t, s, user.ID)

		resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/messages/1/delete", nil, cookie))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var count int64
		require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("someone else's warble is forbidden and survives", func(t *testing.T) {
		s, app, db := newTestServer(t)
		owner := createUser(t, db, "owner", "password")
		intruder := createUser(t, db, "intruder", "password")
		msg := &models.Message{Text: "not yours", UserID: owner.ID}
		require.NoError(t, db.Create(msg).Error)
		cookie := sessionCookie(t, s, intruder.ID)

		resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/messages/1/delete", nil, cookie))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var count int64
		require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestToggleLike(t *testing.T) {
	t.Run("liking your own warble is forbidden", func(t *testing.T) {
		s, app, db := newTestServer(t)
		user := createUser(t, db, "testuser", "password")
		require.NoError(t, db.Create(&models.Message{Text: "mine", UserID: user.ID}).Error)
		cookie := sessionCookie(t, s, user.ID)

		resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/messages/1/like", nil, cookie))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("toggling adds then removes the like", func(t *testing.T) {
		s, app, db := newTestServer(t)
		author := createUser(t, db, "author", "password")
		fan := createUser(t, db, "fan", "password")
		require.NoError(t, db.Create(&models.Message{Text: "likeable", UserID: author.ID}).Error)
		cookie := sessionCookie(t, s, fan.ID)

		resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/messages/1/like", nil, cookie))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, decodeBody(t, resp)["liked"])

		resp = doRequest(t, app, jsonRequest(t, http.MethodPost, "/messages/1/like", nil, cookie))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, decodeBody(t, resp)["liked"])

		var count int64
		require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestHomepage(t *testing.T) {
	t.Run("anonymous visitors get an empty landing payload", func(t *testing.T) {
		_, app, _ := newTestServer(t)

		resp := doRequest(t, app, jsonRequest(t, http.MethodGet, "/", nil, nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		messages, ok := body["messages"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, messages)
	})

	t.Run("timeline shows own and followed warbles only", func(t *testing.T) {
		s, app, db := newTestServer(t)
		me := createUser(t, db, "me", "password")
		friend := createUser(t, db, "friend", "password")
		stranger := createUser(t, db, "stranger", "password")

		require.NoError(t, db.Create(&models.Follow{FollowerID: me.ID, FollowedID: friend.ID}).Error)
		require.NoError(t, db.Create(&models.Message{Text: "own", UserID: me.ID}).Error)
		require.NoError(t, db.Create(&models.Message{Text: "followed", UserID: friend.ID}).Error)
		require.NoError(t, db.Create(&models.Message{Text: "hidden", UserID: stranger.ID}).Error)

		cookie := sessionCookie(t, s, me.ID)
		resp := doRequest(t, app, jsonRequest(t, http.MethodGet, "/", nil, cookie))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		messages, ok := body["messages"].([]interface{})
		require.True(t, ok)
		require.Len(t, messages, 2)
		for _, m := range messages {
			text := m.(map[string]interface{})["text"]
			assert.NotEqual(t, "hidden", text)
		}
	})
}

func TestGetMessage(t *testing.T) {
	_, app, db := newTestServer(t)
	user := createUser(t, db, "testuser", "password")
	require.NoError(t, db.Create(&models.Message{Text: "visible", UserID: user.ID}).Error)

	resp := doRequest(t, app, jsonRequest(t, http.MethodGet, "/messages/1", nil, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	msg, ok := body["message"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "visible", msg["text"])

	resp = doRequest(t, app, jsonRequest(t, http.MethodGet, "/messages/99", nil, nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
