package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ForumLoop/models"
	"github.com/ForumLoop/usecases"
)

type ThreadController struct {
	addThread *usecases.AddThreadUseCase
	getThread *usecases.GetThreadUseCase
}

func NewThreadController(addThread *usecases.AddThreadUseCase, getThread *usecases.GetThreadUseCase) *ThreadController {
	return &ThreadController{addThread: addThread, getThread: getThread}
}

// CreateThread handles POST /threads.
func (tc *ThreadController) CreateThread(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.User)

	var body struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err, models.ErrAddThreadInvalidType)
		return
	}

	added, err := tc.addThread.Execute(c.Request.Context(), body.Title, body.Body, currentUser.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thread created successfully",
		"thread":  added,
	})
}

// GetThreadDetail handles GET /threads/:thread_id. Public, no auth required.
func (tc *ThreadController) GetThreadDetail(c *gin.Context) {
	detail, err := tc.getThread.Execute(c.Request.Context(), c.Param("thread_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"thread": detail})
}
