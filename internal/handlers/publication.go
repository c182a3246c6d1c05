package handlers

import (
	"net/http"
	"strconv"

	"pubfeed/internal/services"

	"github.com/gin-gonic/gin"
)

type PublicationHandler struct {
	publications *services.PublicationService
	votes        *services.VoteService
}

func NewPublicationHandler(publications *services.PublicationService, votes *services.VoteService) *PublicationHandler {
	return &PublicationHandler{publications: publications, votes: votes}
}

type publicationRequest struct {
	Text string `json:"text" binding:"required"`
}

type voteValueRequest struct {
	Value int `json:"value" binding:"oneof=-1 1"`
}

// List returns the rating-sorted feed. Always live, never cached.
func (h *PublicationHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	publications, err := h.publications.List(c.Request.Context(), skip, limit)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, publications)
}

// Create inserts a new publication owned by the authenticated user.
func (h *PublicationHandler) Create(c *gin.Context) {
	var req publicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	publication, err := h.publications.Create(c.Request.Context(), req.Text, CurrentUser(c).ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, publication)
}

// Get serves a single publication, cached payload verbatim on a hit.
func (h *PublicationHandler) Get(c *gin.Context) {
	id, err := publicationID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid publication id"})
		return
	}

	payload, err := h.publications.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// Update replaces the publication text. Owner only.
func (h *PublicationHandler) Update(c *gin.Context) {
	id, err := publicationID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid publication id"})
		return
	}

	var req publicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	publication, err := h.publications.Update(c.Request.Context(), id, req.Text, CurrentUser(c).ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, publication)
}

// Delete removes the publication and its votes. Owner only.
func (h *PublicationHandler) Delete(c *gin.Context) {
	id, err := publicationID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid publication id"})
		return
	}

	if err := h.publications.Delete(c.Request.Context(), id, CurrentUser(c).ID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Vote records the authenticated user's vote via the publication path.
func (h *PublicationHandler) Vote(c *gin.Context) {
	id, err := publicationID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid publication id"})
		return
	}

	var req voteValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "value must be -1 for dislike or 1 for like"})
		return
	}

	if _, err := h.votes.CreateOrUpdate(c.Request.Context(), id, CurrentUser(c).ID, req.Value); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, "ok")
}

func publicationID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
