package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/application/interview/usecases"
	"github.com/talento-hq/talento/internal/domain/interview"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// InterviewHandler serves the HR side (authenticated) and the candidate
// side (by share link, unauthenticated) of interviews.
type InterviewHandler struct {
	createUC    createInterviewUseCase
	listUC      listInterviewsUseCase
	reportUC    getReportUseCase
	dashboardUC getMemberDashboardUseCase
	getByLinkUC getByLinkUseCase
	startUC     startInterviewUseCase
	submitUC    submitInterviewUseCase
	logger      logger.Interface
}

func NewInterviewHandler(
	createUC createInterviewUseCase,
	listUC listInterviewsUseCase,
	reportUC getReportUseCase,
	dashboardUC getMemberDashboardUseCase,
	getByLinkUC getByLinkUseCase,
	startUC startInterviewUseCase,
	submitUC submitInterviewUseCase,
	logger logger.Interface,
) *InterviewHandler {
	return &InterviewHandler{
		createUC:    createUC,
		listUC:      listUC,
		reportUC:    reportUC,
		dashboardUC: dashboardUC,
		getByLinkUC: getByLinkUC,
		startUC:     startUC,
		submitUC:    submitUC,
		logger:      logger,
	}
}

type CreateInterviewRequest struct {
	JobTitle  string     `json:"jobTitle" binding:"required"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

type StartInterviewRequest struct {
	CandidateName  string `json:"candidateName" binding:"required"`
	CandidateEmail string `json:"candidateEmail" binding:"required,email"`
}

type SubmitInterviewRequest struct {
	Answers []interview.Answer `json:"answers"`
}

// Create creates an interview and consumes one unit of quota
// @Summary Create interview
// @Tags Interviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateInterviewRequest true "Interview details"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/interviews [post]
func (h *InterviewHandler) Create(c *gin.Context) {
	accountID, err := CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateInterviewRequest
	if err := BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateInterviewCommand{
		AccountID: accountID,
		JobTitle:  req.JobTitle,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Interview created successfully")
}

// List lists the caller's interviews, newest first
// @Summary List interviews
// @Tags Interviews
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/interviews [get]
func (h *InterviewHandler) List(c *gin.Context) {
	accountID, err := CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), accountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Report returns the analysis report of a completed interview
// @Summary Interview report
// @Tags Interviews
// @Produce json
// @Security Bearer
// @Param id path string true "Interview ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/interviews/{id}/report [get]
func (h *InterviewHandler) Report(c *gin.Context) {
	accountID, err := CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reportUC.Execute(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Dashboard returns the member dashboard
// @Summary Member dashboard
// @Description Profile with quota usage, interview stats and recent interviews
// @Tags Interviews
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/dashboard [get]
func (h *InterviewHandler) Dashboard(c *gin.Context) {
	accountID, err := CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.dashboardUC.Execute(c.Request.Context(), accountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetByLink resolves a candidate link
// @Summary Get interview by link
// @Tags Interviews
// @Produce json
// @Param link path string true "Interview link"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/interviews/link/{link} [get]
func (h *InterviewHandler) GetByLink(c *gin.Context) {
	result, err := h.getByLinkUC.Execute(c.Request.Context(), c.Param("link"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Start records the candidate and generates questions
// @Summary Start interview
// @Tags Interviews
// @Accept json
// @Produce json
// @Param link path string true "Interview link"
// @Param request body StartInterviewRequest true "Candidate details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/interviews/link/{link}/start [post]
func (h *InterviewHandler) Start(c *gin.Context) {
	var req StartInterviewRequest
	if err := BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.startUC.Execute(c.Request.Context(), usecases.StartInterviewCommand{
		Link:           c.Param("link"),
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Interview started", result)
}

// Submit stores answers and the analysis
// @Summary Submit interview
// @Tags Interviews
// @Accept json
// @Produce json
// @Param link path string true "Interview link"
// @Param request body SubmitInterviewRequest true "Answers"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/interviews/link/{link}/submit [post]
func (h *InterviewHandler) Submit(c *gin.Context) {
	var req SubmitInterviewRequest
	if err := BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitInterviewCommand{
		Link:    c.Param("link"),
		Answers: req.Answers,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Interview submitted successfully", result)
}
