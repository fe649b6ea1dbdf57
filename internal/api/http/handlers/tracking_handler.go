package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-portal/internal/api/dto"
	"github.com/spec-kit/itsm-portal/internal/service"
)

// TrackingHandler serves the user-facing request-tracking view.
type TrackingHandler struct {
	service *service.TrackingService
}

// NewTrackingHandler constructs handler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: trackingService}
}

// ListSubmissions GET /tracking/submissions?email=.
func (h *TrackingHandler) ListSubmissions(c *fiber.Ctx) error {
	submissions, err := h.service.SubmissionsForEmail(c.Context(), c.Query("email"))
	if err != nil {
		return err
	}
	items := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		items = append(items, submissionResponse(&submissions[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Stats GET /tracking/stats?email=.
func (h *TrackingHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.StatsForEmail(c.Context(), c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TrackingStatsResponse{
		TotalSubmissions:       stats.TotalSubmissions,
		PendingSubmissions:     stats.PendingSubmissions,
		ResolvedSubmissions:    stats.ResolvedSubmissions,
		AverageResolutionHours: stats.AverageResolutionHours,
		LastSubmission:         stats.LastSubmission,
	}})
}

func submissionResponse(submission *service.Submission) dto.SubmissionResponse {
	comments := make([]dto.CommentResponse, 0, len(submission.Comments))
	for _, comment := range submission.Comments {
		comments = append(comments, dto.CommentResponse{
			ID:         comment.ID,
			Author:     comment.Author,
			AuthorType: comment.AuthorType,
			Content:    comment.Content,
			Timestamp:  comment.Timestamp,
			IsInternal: comment.IsInternal,
		})
	}
	return dto.SubmissionResponse{
		TicketID:           submission.TicketID,
		TicketNumber:       submission.TicketNumber,
		Title:              submission.Title,
		Description:        submission.Description,
		Category:           submission.Category,
		Department:         submission.ServiceDepartment,
		Priority:           submission.Priority,
		Status:             submission.Status,
		SubmittedAt:        submission.SubmittedAt,
		LastUpdate:         submission.LastUpdate,
		DueDate:            submission.DueDate,
		ProgressPercentage: submission.ProgressPercentage,
		Comments:           comments,
	}
}
