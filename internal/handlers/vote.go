package handlers

import (
	"net/http"
	"strconv"

	"pubfeed/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes *services.VoteService
}

func NewVoteHandler(votes *services.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

type voteRequest struct {
	PublicationID uint `json:"publication_id" binding:"required"`
	Value         int  `json:"value" binding:"oneof=-1 1"`
}

// Vote records a vote via the standalone vote resource.
func (h *VoteHandler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "value must be -1 for dislike or 1 for like"})
		return
	}

	vote, err := h.votes.CreateOrUpdate(c.Request.Context(), req.PublicationID, CurrentUser(c).ID, req.Value)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, vote)
}

// Delete removes the caller's vote. Deleting a vote that does not exist
// succeeds silently.
func (h *VoteHandler) Delete(c *gin.Context) {
	publicationID, err := strconv.ParseUint(c.Query("publication_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid publication_id"})
		return
	}

	if err := h.votes.Delete(c.Request.Context(), uint(publicationID), CurrentUser(c).ID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
