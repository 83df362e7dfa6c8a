package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ForumLoop/models"
	"github.com/ForumLoop/usecases"
)

type CommentController struct {
	addComment    *usecases.AddCommentUseCase
	deleteComment *usecases.DeleteCommentUseCase
	toggleLike    *usecases.LikeDislikeCommentUseCase
}

func NewCommentController(addComment *usecases.AddCommentUseCase, deleteComment *usecases.DeleteCommentUseCase, toggleLike *usecases.LikeDislikeCommentUseCase) *CommentController {
	return &CommentController{addComment: addComment, deleteComment: deleteComment, toggleLike: toggleLike}
}

// CreateComment handles POST /threads/:thread_id/comments.
func (cc *CommentController) CreateComment(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.User)
	threadID := c.Param("thread_id")

	var body struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err, models.ErrAddCommentInvalidType)
		return
	}

	added, err := cc.addComment.Execute(c.Request.Context(), body.Content, threadID, currentUser.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment created successfully",
		"comment": added,
	})
}

// DeleteComment handles DELETE /threads/:thread_id/comments/:comment_id.
// The delete is logical; the comment keeps its row and renders redacted.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.User)

	err := cc.deleteComment.Execute(c.Request.Context(), c.Param("comment_id"), c.Param("thread_id"), currentUser.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ToggleCommentLike handles PUT /threads/:thread_id/comments/:comment_id/likes.
func (cc *CommentController) ToggleCommentLike(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.User)

	err := cc.toggleLike.Execute(c.Request.Context(), c.Param("comment_id"), currentUser.ID, c.Param("thread_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment like toggled successfully"})
}
