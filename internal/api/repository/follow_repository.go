package repository

import (
	"errors"

	"reelcritic/internal/api/models"

	"gorm.io/gorm"
)

// FollowRepository owns the follow edge and the derived counters. The toggle
// is a single transaction: edge insert/delete plus the symmetric counter pair
// commit or roll back together, so a failure can never leave the target
// followed while the actor's following count lags.
type FollowRepository interface {
	Toggle(actorID, targetID int64) (nowFollowing bool, target, actor *models.User, err error)
	IsFollowing(followerID, followeeID int64) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Toggle(actorID, targetID int64) (bool, *models.User, *models.User, error) {
	var nowFollowing bool
	var target, actor models.User

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&target, "id = ?", targetID).Error; err != nil {
			return err
		}
		if err := tx.First(&actor, "id = ?", actorID).Error; err != nil {
			return err
		}

		var edge models.Follow
		err := tx.Where("follower_id = ? AND followee_id = ?", actorID, targetID).First(&edge).Error
		switch {
		case err == nil:
			if err := tx.Delete(&edge).Error; err != nil {
				return err
			}
			nowFollowing = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Follow{FollowerID: actorID, FolloweeID: targetID}).Error; err != nil {
				return err
			}
			nowFollowing = true
		default:
			return err
		}

		models.ApplyFollowChange(&actor, &target, nowFollowing)

		if err := tx.Model(&models.User{}).Where("id = ?", targetID).
			UpdateColumn("followers", target.Followers).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", actorID).
			UpdateColumn("following", actor.Following).Error
	})
	if err != nil {
		return false, nil, nil, err
	}
	return nowFollowing, &target, &actor, nil
}

func (r *followRepository) IsFollowing(followerID, followeeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
