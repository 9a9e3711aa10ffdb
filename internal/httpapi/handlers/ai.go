package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/devray27/studypal-backend/internal/ai"
	"github.com/devray27/studypal-backend/internal/common"
	"github.com/devray27/studypal-backend/internal/store/redisstore"
	"github.com/gin-gonic/gin"
)

// runTask renders and executes one AI task with the configured timeout,
// consulting the optional answer cache first. On failure it writes the
// response itself and reports !ok.
func (h *Handler) runTask(c *gin.Context, t ai.Task) (string, bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Cfg.AITimeout)
	defer cancel()

	var cacheKey string
	if h.Cache != nil {
		if prompt, err := t.Prompt(); err == nil {
			cacheKey = redisstore.AnswerKey(string(t.Kind), prompt)
			answer, hit, err := h.Cache.GetAnswer(ctx, cacheKey)
			if err != nil {
				log.Printf("[ai] cache get kind=%s err=%v", t.Kind, err)
			} else if hit {
				return answer, true
			}
		}
	}

	answer, err := h.Gateway.Run(ctx, t)
	if err != nil {
		if errors.Is(err, ai.ErrBadTask) {
			common.Fail(c, http.StatusBadRequest, "invalid request", err.Error())
			return "", false
		}
		log.Printf("[ai] task kind=%s err=%v", t.Kind, err)
		common.Fail(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return "", false
	}

	if h.Cache != nil && cacheKey != "" {
		if err := h.Cache.SetAnswer(ctx, cacheKey, answer, h.Cfg.AnswerTTL); err != nil {
			log.Printf("[ai] cache set kind=%s err=%v", t.Kind, err)
		}
	}
	return answer, true
}

type summarizeReq struct {
	Paragraph string `json:"paragraph"`
}

func (h *Handler) Summarize(c *gin.Context) {
	var req summarizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	summary, ok := h.runTask(c, ai.Task{Kind: ai.TaskSummarize, Text: req.Paragraph})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "tokenVerify": true})
}

type getCodeReq struct {
	Language    string `json:"language"`
	InputedCode string `json:"inputedCode"`
}

func (h *Handler) GetCode(c *gin.Context) {
	var req getCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	solution, ok := h.runTask(c, ai.Task{Kind: ai.TaskSolveCode, Language: req.Language, Code: req.InputedCode})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"codeSolution": solution})
}

type pdfContentReq struct {
	PDFContent string `json:"pdfContent"`
}

func (h *Handler) PDFSummary(c *gin.Context) {
	var req pdfContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	summary, ok := h.runTask(c, ai.Task{Kind: ai.TaskSummarize, Text: req.PDFContent})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *Handler) PDFQuestions(c *gin.Context) {
	var req pdfContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	questions, ok := h.runTask(c, ai.Task{Kind: ai.TaskGenerateQuestions, Document: req.PDFContent})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"allQuestions": questions})
}

type askDoubtReq struct {
	PDFContent string `json:"pdfContent"`
	Question   string `json:"question"`
}

func (h *Handler) AskDoubt(c *gin.Context) {
	var req askDoubtReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	answer, ok := h.runTask(c, ai.Task{Kind: ai.TaskAnswerDoubt, Document: req.PDFContent, Question: req.Question})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ansToDoubt": answer})
}
