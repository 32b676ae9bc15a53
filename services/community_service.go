package services

import (
	"errors"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"

	"gorm.io/gorm"
)

func ListPosts(category string) ([]models.CommunityPost, error) {
	q := config.DB.Order("created_at desc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var posts []models.CommunityPost
	err := q.Find(&posts).Error
	return posts, err
}

func CreatePost(userID uint, title, content, category string) (*models.CommunityPost, error) {
	post := models.CommunityPost{
		UserID:   userID,
		Title:    title,
		Content:  content,
		Category: category,
	}
	if err := config.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func LikePost(postID uint) error {
	result := config.DB.Model(&models.CommunityPost{}).
		Where("id = ?", postID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("post not found")
	}
	return nil
}

func ListComments(postID uint) ([]models.PostComment, error) {
	var comments []models.PostComment
	err := config.DB.
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&comments).Error
	return comments, err
}

func AddComment(userID, postID uint, content string) (*models.PostComment, error) {
	var post models.CommunityPost
	if err := config.DB.First(&post, postID).Error; err != nil {
		return nil, errors.New("post not found")
	}

	comment := models.PostComment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}
