package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/echoquill"
	"github.com/gin-gonic/gin"
)

// MsgMissingTheme is the detail returned when a request has a blank theme.
const MsgMissingTheme = "Missing 'theme' field"

func errorBody(detail string) gin.H {
	return gin.H{"detail": detail}
}

type generateRequest struct {
	Theme  string `json:"theme"`
	Genre  string `json:"genre"`
	Tone   string `json:"tone"`
	Length string `json:"length"`
}

type exportRequest struct {
	Story *string `json:"story"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "EchoQuill API running"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	req := echoquill.GenerationRequest{
		Theme:  strings.TrimSpace(body.Theme),
		Genre:  echoquill.Genre(strings.TrimSpace(body.Genre)),
		Tone:   echoquill.Tone(strings.TrimSpace(body.Tone)),
		Length: echoquill.Length(strings.TrimSpace(body.Length)),
	}
	if req.Theme == "" {
		c.JSON(http.StatusBadRequest, errorBody(MsgMissingTheme))
		return
	}

	start := time.Now()
	story, err := s.generator.Generate(c.Request.Context(), req)
	s.metrics.generationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.generationsTotal.WithLabelValues("error").Inc()
		s.logger.Error("story generation failed",
			"error", err,
			"genre", req.Genre,
			"tone", req.Tone,
			"length", req.Length,
			"request_id", c.GetString(requestIDKey),
		)
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	s.metrics.generationsTotal.WithLabelValues("ok").Inc()
	s.logger.Debug("story generated",
		"chars", len(story),
		"request_id", c.GetString(requestIDKey),
	)
	c.JSON(http.StatusOK, gin.H{"story": story})
}

func (s *Server) handleExport(c *gin.Context) {
	var body exportRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Story == nil {
		c.JSON(http.StatusBadRequest, errorBody("Missing 'story' field"))
		return
	}

	a := echoquill.NewArtifact(*body.Story)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, a.Name))
	c.Data(http.StatusOK, a.MIMEType+"; charset=utf-8", a.Content)
}
