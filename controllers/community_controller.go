package controllers

import (
	"net/http"
	"strconv"

	"github.com/Brayern/bibo-health-hub/services"

	"github.com/gin-gonic/gin"
)

// CommunityController carries the feed hub so new posts reach connected
// clients without a refresh.
type CommunityController struct {
	Hub *services.FeedHub
}

func NewCommunityController(hub *services.FeedHub) *CommunityController {
	return &CommunityController{Hub: hub}
}

func (cc *CommunityController) ListPosts(c *gin.Context) {
	posts, err := services.ListPosts(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

type postInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

func (cc *CommunityController) CreatePost(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input postInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := services.CreatePost(userID, input.Title, input.Content, input.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if cc.Hub != nil {
		cc.Hub.Broadcast(map[string]any{"kind": "post.created", "post": post})
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (cc *CommunityController) LikePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := services.LikePost(uint(postID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (cc *CommunityController) ListComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	comments, err := services.ListComments(uint(postID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type commentInput struct {
	Content string `json:"content" binding:"required"`
}

func (cc *CommunityController) AddComment(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var input commentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := services.AddComment(userID, uint(postID), input.Content)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
