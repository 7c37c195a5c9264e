package events

import (
	"time"

	"github.com/google/uuid"
)

// Relationship and visibility mutations. Each invalidates presorted
// feed segments for the users involved; subscribers decide how.

const (
	EventFollowGranted         = "FOLLOW_GRANTED"
	EventFollowDenied          = "FOLLOW_DENIED"
	EventFollowRevoked         = "FOLLOW_REVOKED"
	EventPostVisibilityChanged = "POST_VISIBILITY_CHANGED"
	EventMatchScoresReplaced   = "MATCH_SCORES_REPLACED"
)

func NewFollowGranted(followerId, followeeId uuid.UUID) Event {
	return BaseEvent{
		Type: EventFollowGranted,
		Data: map[string]interface{}{
			"follower_id": followerId.String(),
			"followee_id": followeeId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewFollowDenied(followerId, followeeId uuid.UUID) Event {
	return BaseEvent{
		Type: EventFollowDenied,
		Data: map[string]interface{}{
			"follower_id": followerId.String(),
			"followee_id": followeeId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewFollowRevoked(followerId, followeeId uuid.UUID) Event {
	return BaseEvent{
		Type: EventFollowRevoked,
		Data: map[string]interface{}{
			"follower_id": followerId.String(),
			"followee_id": followeeId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewPostVisibilityChanged(postId, authorId uuid.UUID, visibility string) Event {
	return BaseEvent{
		Type: EventPostVisibilityChanged,
		Data: map[string]interface{}{
			"post_id":    postId.String(),
			"author_id":  authorId.String(),
			"visibility": visibility,
		},
		OccurredAt: time.Now(),
	}
}

func NewMatchScoresReplaced(viewerId uuid.UUID, count int, version string) Event {
	return BaseEvent{
		Type: EventMatchScoresReplaced,
		Data: map[string]interface{}{
			"viewer_id": viewerId.String(),
			"count":     count,
			"version":   version,
		},
		OccurredAt: time.Now(),
	}
}
