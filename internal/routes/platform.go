package routes

import (
	"net/http"

	"github.com/sabur-pro/rayan-admin/internal/cms"
	"github.com/sabur-pro/rayan-admin/internal/contracts"
	appErrors "github.com/sabur-pro/rayan-admin/internal/errors"
	"github.com/sabur-pro/rayan-admin/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetPlatformUsers(c *gin.Context) {
	pagination := h.parsePagination(c)

	query := cms.UserQuery{
		Page:     pagination.Page,
		Limit:    pagination.Limit,
		Role:     c.Query("role"),
		LangCode: c.Query("lang_code"),
		Login:    c.Query("login"),
	}
	for param, target := range map[string]*int{
		"course_id":     &query.CourseID,
		"semester_id":   &query.SemesterID,
		"university_id": &query.UniversityID,
		"faculty_id":    &query.FacultyID,
	} {
		if raw := c.Query(param); raw != "" {
			value, err := pkg.ParseInt(raw)
			if err != nil {
				h.respondError(c, appErrors.NewValidationError(param, "must be an integer"))
				return
			}
			*target = value
		}
	}

	ctx := c.Request.Context()
	page, err := h.Platform.Users(ctx, query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *Handler) GetSubscriptions(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	subscriptions, err := h.Platform.Subscriptions(ctx, cms.SubscriptionQuery{
		Page:      pagination.Page,
		Limit:     pagination.Limit,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

func (h *Handler) ActivateSubscription(c *gin.Context) {
	var body contracts.SubscriptionActivateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	err := h.Platform.ActivateSubscription(ctx, body.SubscriptionID, cms.SubscriptionStatus(body.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Subscription updated"})
}
