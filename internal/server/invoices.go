package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smallbiznis/quickinvoice/internal/invoice/domain"
)

func (s *Server) PreviewInvoice(c *gin.Context) {
	var req invoicedomain.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	totals, err := s.invoiceSvc.Preview(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (s *Server) GenerateInvoice(c *gin.Context) {
	var req invoicedomain.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.invoiceSvc.Generate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+resp.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(resp.PDF)))
	c.Data(http.StatusOK, "application/pdf", resp.PDF)
}

func (s *Server) ListHistory(c *gin.Context) {
	records, err := s.invoiceSvc.History(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"count":   len(records),
	})
}
