package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/core/values"
	"github.com/gin-gonic/gin"
)

// Values exposes the values resource over HTTP.
type Values interface {
	List() gin.HandlerFunc
	Get() gin.HandlerFunc
	Create() gin.HandlerFunc
	Update() gin.HandlerFunc
	Delete() gin.HandlerFunc
}

func NewValues(svc values.Service) Values {
	return &valuesHandler{svc: svc}
}

type valuesHandler struct {
	svc values.Service
}

type valueURI struct {
	ID int64 `uri:"id"`
}

// List godoc
//
//	@Summary	List values
//	@Tags		values
//	@Produce	json
//	@Success	200	{array}	string
//	@Failure	401	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/values [get]
func (h *valuesHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.svc.List())
	}
}

// Get godoc
//
//	@Summary	Get a value by id
//	@Tags		values
//	@Produce	json
//	@Param		id	path		int	true	"Value id"
//	@Success	200	{string}	string
//	@Failure	400	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/values/{id} [get]
func (h *valuesHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, h.svc.Get(id))
	}
}

// Create godoc
//
//	@Summary	Post a new value
//	@Tags		values
//	@Accept		json
//	@Param		value	body	string	false	"Value"
//	@Success	204
//	@Security	BearerAuth
//	@Router		/values [post]
func (h *valuesHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.svc.Create(readValue(c))
		c.Status(http.StatusNoContent)
	}
}

// Update godoc
//
//	@Summary	Update a value by id
//	@Tags		values
//	@Accept		json
//	@Param		id		path	int		true	"Value id"
//	@Param		value	body	string	false	"Value"
//	@Success	204
//	@Failure	400	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/values/{id} [put]
func (h *valuesHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		h.svc.Update(id, readValue(c))
		c.Status(http.StatusNoContent)
	}
}

// Delete godoc
//
//	@Summary	Delete a value by id
//	@Tags		values
//	@Param		id	path	int	true	"Value id"
//	@Success	204
//	@Failure	400	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/values/{id} [delete]
func (h *valuesHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		h.svc.Remove(id)
		c.Status(http.StatusNoContent)
	}
}

// bindID parses the :id path segment as a base-10 int64 and writes a 400 on failure.
func bindID(c *gin.Context) (int64, bool) {
	var uri valueURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid id",
			"message": err.Error(),
		})
		return 0, false
	}
	return uri.ID, true
}

// readValue drains the body. A JSON string literal is decoded, anything else
// is taken verbatim.
func readValue(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
