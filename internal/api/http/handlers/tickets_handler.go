package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-portal/internal/api/dto"
	"github.com/spec-kit/itsm-portal/internal/domain"
	"github.com/spec-kit/itsm-portal/internal/service"
	apperrors "github.com/spec-kit/itsm-portal/pkg/util"
)

// TicketsHandler manages dashboard ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	filter := parseTicketQuery(c)
	tickets := h.service.ListTickets(c.Context(), filter)
	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketSummary(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.GetTicket(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// UpdateTicket PATCH /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == nil && req.AssigneeName == nil && req.Resolution == nil {
		return apperrors.NewValidationError("no update fields provided", nil)
	}
	ticket, err := h.service.UpdateTicket(c.Context(), c.Params("id"), service.TicketUpdateInput{
		Status:        req.Status,
		AssigneeName:  req.AssigneeName,
		AssigneeEmail: req.AssigneeEmail,
		Resolution:    req.Resolution,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// AddComment POST /tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.AddComment(c.Context(), c.Params("id"), service.CommentInput{
		Author:     req.Author,
		AuthorType: req.AuthorType,
		Content:    req.Content,
		IsInternal: req.IsInternal,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// AddTreatment POST /tickets/:id/treatments.
func (h *TicketsHandler) AddTreatment(c *fiber.Ctx) error {
	var req dto.CreateTreatmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.AddTreatment(c.Context(), c.Params("id"), service.TreatmentInput{
		Technician:      req.Technician,
		Action:          req.Action,
		Description:     req.Description,
		Status:          req.Status,
		DurationMinutes: req.DurationMinutes,
		NextAction:      req.NextAction,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// AddEvaluation POST /tickets/:id/evaluations.
func (h *TicketsHandler) AddEvaluation(c *fiber.Ctx) error {
	var req dto.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.AddEvaluation(c.Context(), c.Params("id"), service.EvaluationInput{
		Evaluator:        req.Evaluator,
		Type:             req.Type,
		Severity:         req.Severity,
		Impact:           req.Impact,
		Urgency:          req.Urgency,
		RootCause:        req.RootCause,
		RiskAssessment:   req.RiskAssessment,
		Recommendations:  req.Recommendations,
		FollowUpRequired: req.FollowUpRequired,
		FollowUpDate:     req.FollowUpDate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// Metrics GET /tickets/metrics.
func (h *TicketsHandler) Metrics(c *fiber.Ctx) error {
	metrics := h.service.Metrics(c.Context())
	return c.JSON(fiber.Map{"data": dto.MetricsResponse{
		TotalTickets:          metrics.TotalTickets,
		OpenTickets:           metrics.OpenTickets,
		ResolvedToday:         metrics.ResolvedToday,
		AverageResolutionTime: metrics.AverageResolutionTime,
		SLACompliance:         metrics.SLACompliance,
		CriticalTickets:       metrics.CriticalTickets,
	}})
}

func parseTicketQuery(c *fiber.Ctx) service.TicketListFilter {
	filter := service.TicketListFilter{}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			filter.Statuses = append(filter.Statuses, domain.TicketStatus(strings.TrimSpace(part)))
		}
	}
	if priorityStr := c.Query("priority"); priorityStr != "" {
		for _, part := range strings.Split(priorityStr, ",") {
			filter.Priorities = append(filter.Priorities, domain.TicketPriority(strings.TrimSpace(part)))
		}
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if email := c.Query("email"); email != "" {
		filter.RequesterEmail = &email
	}
	if term := c.Query("q"); term != "" {
		filter.SearchTerm = &term
	}
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize
	return filter
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func ticketSummary(ticket *domain.Ticket) dto.TicketSummary {
	return dto.TicketSummary{
		ID:           ticket.ID,
		TicketNumber: ticket.TicketNumber,
		Title:        ticket.Title,
		Category:     ticket.Category,
		Priority:     ticket.Priority,
		Status:       ticket.Status,
		Requester:    requesterResponse(ticket.Requester),
		Assignee:     assigneeResponse(ticket.Assignee),
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
		DueDate:      ticket.DueDate,
		SLA:          slaResponse(ticket.SLA),
	}
}

func ticketDetail(ticket *domain.Ticket) dto.TicketDetailResponse {
	comments := make([]dto.CommentResponse, 0, len(ticket.Comments))
	for _, comment := range ticket.Comments {
		comments = append(comments, dto.CommentResponse{
			ID:         comment.ID,
			Author:     comment.Author,
			AuthorType: comment.AuthorType,
			Content:    comment.Content,
			Timestamp:  comment.Timestamp,
			IsInternal: comment.IsInternal,
		})
	}
	treatments := make([]dto.TreatmentResponse, 0, len(ticket.Treatments))
	for _, treatment := range ticket.Treatments {
		treatments = append(treatments, dto.TreatmentResponse{
			ID:              treatment.ID,
			TreatmentDate:   treatment.TreatmentDate,
			Technician:      treatment.Technician,
			Action:          treatment.Action,
			Description:     treatment.Description,
			Status:          treatment.Status,
			DurationMinutes: treatment.DurationMinutes,
			NextAction:      treatment.NextAction,
		})
	}
	evaluations := make([]dto.EvaluationResponse, 0, len(ticket.Evaluations))
	for _, evaluation := range ticket.Evaluations {
		evaluations = append(evaluations, dto.EvaluationResponse{
			ID:               evaluation.ID,
			EvaluationDate:   evaluation.EvaluationDate,
			Evaluator:        evaluation.Evaluator,
			Type:             evaluation.Type,
			Severity:         evaluation.Severity,
			Impact:           evaluation.Impact,
			Urgency:          evaluation.Urgency,
			RootCause:        evaluation.RootCause,
			RiskAssessment:   evaluation.RiskAssessment,
			Recommendations:  evaluation.Recommendations,
			FollowUpRequired: evaluation.FollowUpRequired,
			FollowUpDate:     evaluation.FollowUpDate,
		})
	}

	return dto.TicketDetailResponse{
		ID:           ticket.ID,
		TicketNumber: ticket.TicketNumber,
		Title:        ticket.Title,
		Description:  ticket.Description,
		Category:     ticket.Category,
		Priority:     ticket.Priority,
		Status:       ticket.Status,
		Requester:    requesterResponse(ticket.Requester),
		Assignee:     assigneeResponse(ticket.Assignee),
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
		DueDate:      ticket.DueDate,
		ResolvedAt:   ticket.ResolvedAt,
		Resolution:   ticket.Resolution,
		Comments:     comments,
		Treatments:   treatments,
		Evaluations:  evaluations,
		SLA:          slaResponse(ticket.SLA),
	}
}

func requesterResponse(requester domain.Requester) dto.RequesterResponse {
	return dto.RequesterResponse{
		Name:       requester.Name,
		Email:      requester.Email,
		Department: requester.Department,
	}
}

func assigneeResponse(assignee *domain.Assignee) *dto.AssigneeResponse {
	if assignee == nil {
		return nil
	}
	return &dto.AssigneeResponse{Name: assignee.Name, Email: assignee.Email}
}

func slaResponse(sla domain.SLA) dto.SLAResponse {
	return dto.SLAResponse{
		ResponseTime:   sla.ResponseTime,
		ResolutionTime: sla.ResolutionTime,
		Breached:       sla.Breached,
	}
}
