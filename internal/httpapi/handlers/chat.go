package handlers

import (
	"log"
	"net/http"

	"github.com/devray27/studypal-backend/internal/chat"
	"github.com/devray27/studypal-backend/internal/common"
	"github.com/gin-gonic/gin"
)

type saveChatReq struct {
	AllMessages []chat.Inbound `json:"allMessages"`
	UserIDToken string         `json:"userIdToken"`
}

// SaveChat persists a client batch. Duplicate rows are skipped and counted,
// never raised: the same batch can be resubmitted safely after a transient
// failure.
func (h *Handler) SaveChat(c *gin.Context) {
	var req saveChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json", err.Error())
		return
	}
	if req.UserIDToken == "" {
		common.Fail(c, http.StatusBadRequest, "userIdToken is required", "validation failed")
		return
	}
	if len(req.AllMessages) == 0 {
		common.Fail(c, http.StatusBadRequest, "allMessages must not be empty", "validation failed")
		return
	}
	for _, m := range req.AllMessages {
		if m.Content == "" {
			common.Fail(c, http.StatusBadRequest, "message content must not be empty", "validation failed")
			return
		}
	}

	res, err := h.ChatSvc.SaveAll(c.Request.Context(), req.UserIDToken, req.AllMessages)
	if err != nil {
		log.Printf("[SaveChat] token=%s err=%v", req.UserIDToken, err)
		common.Fail(c, http.StatusInternalServerError, "failed to save chat", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     http.StatusOK,
		"message":    "chat saved",
		"inserted":   res.Inserted,
		"duplicates": res.Duplicates,
	})
}

func (h *Handler) GetAllChats(c *gin.Context) {
	msgs, err := h.ChatSvc.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("[GetAllChats] err=%v", err)
		common.Fail(c, http.StatusInternalServerError, "failed to list chats", err.Error())
		return
	}
	c.JSON(http.StatusOK, msgs)
}
