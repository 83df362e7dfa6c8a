package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ForumLoop/models"
	"github.com/ForumLoop/usecases"
)

type ReplyController struct {
	addReply    *usecases.AddReplyUseCase
	deleteReply *usecases.DeleteReplyUseCase
}

func NewReplyController(addReply *usecases.AddReplyUseCase, deleteReply *usecases.DeleteReplyUseCase) *ReplyController {
	return &ReplyController{addReply: addReply, deleteReply: deleteReply}
}

// CreateReply handles POST /threads/:thread_id/comments/:comment_id/replies.
func (rc *ReplyController) CreateReply(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.User)

	var body struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err, models.ErrAddReplyInvalidType)
		return
	}

	added, err := rc.addReply.Execute(c.Request.Context(), body.Content, c.Param("thread_id"), c.Param("comment_id"), currentUser.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reply created successfully",
		"reply":   added,
	})
}

// DeleteReply handles DELETE /threads/:thread_id/comments/:comment_id/replies/:reply_id.
func (rc *ReplyController) DeleteReply(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.User)

	err := rc.deleteReply.Execute(c.Request.Context(), c.Param("reply_id"), c.Param("comment_id"), c.Param("thread_id"), currentUser.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reply deleted successfully"})
}
