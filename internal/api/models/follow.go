package models

import "time"

// Follow is the relation of record; the followers/following columns on users
// are derived from it and updated in the same transaction.
type Follow struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FollowerID int64     `json:"follower_id" gorm:"not null;uniqueIndex:idx_follow_edge"`
	FolloweeID int64     `json:"followee_id" gorm:"not null;uniqueIndex:idx_follow_edge"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Follow) TableName() string {
	return "follows"
}

// ApplyFollowChange applies the symmetric counter pair for a follow toggle:
// followers on the target, following on the actor. Counts floor at zero so a
// toggle storm can never drive them negative.
func ApplyFollowChange(actor, target *User, nowFollowing bool) {
	if nowFollowing {
		target.Followers++
		actor.Following++
		return
	}
	if target.Followers > 0 {
		target.Followers--
	}
	if actor.Following > 0 {
		actor.Following--
	}
}
