package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// Generate is a stub. Report generation never shipped in the system
// this replaces and stays out of scope here.
func (h *ReportHandler) Generate(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"status":  "not_implemented",
		"message": "Funcionalidade de relatório em desenvolvimento.",
	})
}
