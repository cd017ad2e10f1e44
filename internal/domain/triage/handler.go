package triage

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HelloOjasMutreja/Aushadham/pkg/envelope"
)

const (
	APIStatus  = "Medical Questionnaire API is running!"
	APIVersion = "3.0"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.Home)
	g.POST("/start_questionnaire", h.StartQuestionnaire)
	g.POST("/submit_answer", h.SubmitAnswer)
	g.POST("/next_question", h.navigate(ActionNext))
	g.POST("/previous_question", h.navigate(ActionPrevious))
	g.POST("/skip_question", h.navigate(ActionSkip))
	g.POST("/get_current_question", h.GetCurrentQuestion)
	g.POST("/get_report", h.GetReport)
}

type startRequest struct {
	Symptom     string `json:"symptom"`
	Description string `json:"description"`
}

type submitRequest struct {
	SessionID string  `json:"sessionId"`
	Answer    *string `json:"answer"`
	Action    string  `json:"action"`
}

type sessionRequest struct {
	SessionID string `json:"sessionId"`
}

func (h *Handler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  APIStatus,
		"version": APIVersion,
		"endpoints": []string{
			"/start_questionnaire",
			"/submit_answer",
			"/next_question",
			"/previous_question",
			"/skip_question",
			"/get_current_question",
			"/get_report",
		},
	})
}

func (h *Handler) StartQuestionnaire(c echo.Context) error {
	var req startRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res, err := h.svc.Start(c.Request().Context(), req.Symptom, req.Description)
	if err != nil {
		return serviceError(err)
	}
	return envelope.JSON(c, http.StatusOK, res)
}

func (h *Handler) SubmitAnswer(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return h.submit(c, SubmitInput{SessionID: req.SessionID, Answer: req.Answer, Action: req.Action})
}

// navigate serves the fixed-action shortcuts. Any action in the body is
// ignored.
func (h *Handler) navigate(action Action) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req submitRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		return h.submit(c, SubmitInput{SessionID: req.SessionID, Answer: req.Answer, Action: action.String()})
	}
}

func (h *Handler) submit(c echo.Context, in SubmitInput) error {
	res, err := h.svc.Submit(c.Request().Context(), in)
	if err != nil {
		return serviceError(err)
	}
	return envelope.JSON(c, http.StatusOK, res)
}

func (h *Handler) GetCurrentQuestion(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res, err := h.svc.CurrentQuestion(c.Request().Context(), req.SessionID)
	if err != nil {
		return serviceError(err)
	}
	return envelope.JSON(c, http.StatusOK, res)
}

func (h *Handler) GetReport(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	report, err := h.svc.Report(c.Request().Context(), req.SessionID)
	if err != nil {
		return serviceError(err)
	}
	return envelope.JSON(c, http.StatusOK, map[string]*Report{"report": report})
}

func serviceError(err error) error {
	if errors.Is(err, ErrSessionNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Invalid session").SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
