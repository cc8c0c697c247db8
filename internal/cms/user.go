package cms

import (
	"context"
	"net/http"
	"strconv"
)

type UserQuery struct {
	Page         int
	Limit        int
	Role         string
	LangCode     string
	CourseID     int
	SemesterID   int
	UniversityID int
	FacultyID    int
	Login        string
}

func (c *Client) Users(ctx context.Context, params UserQuery) (*Page[User], error) {
	q := pageQuery(params.Page, params.Limit)
	if params.Role != "" {
		q.Set("role", params.Role)
	}
	if params.LangCode != "" {
		q.Set("lang_code", params.LangCode)
	}
	if params.CourseID > 0 {
		q.Set("course_id", strconv.Itoa(params.CourseID))
	}
	if params.SemesterID > 0 {
		q.Set("semester_id", strconv.Itoa(params.SemesterID))
	}
	if params.UniversityID > 0 {
		q.Set("university_id", strconv.Itoa(params.UniversityID))
	}
	if params.FacultyID > 0 {
		q.Set("faculty_id", strconv.Itoa(params.FacultyID))
	}
	if params.Login != "" {
		q.Set("login", params.Login)
	}

	var out Page[User]
	if err := c.do(ctx, http.MethodGet, "/user", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type SubscriptionQuery struct {
	Page      int
	Limit     int
	StartDate string
	EndDate   string
}

// Subscriptions returns subscription requests. Unlike the other list
// endpoints the upstream answers with a bare array.
func (c *Client) Subscriptions(ctx context.Context, params SubscriptionQuery) ([]Subscription, error) {
	q := pageQuery(params.Page, params.Limit)
	if params.StartDate != "" {
		q.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		q.Set("end_date", params.EndDate)
	}

	var out []Subscription
	if err := c.do(ctx, http.MethodGet, "/user/subscription", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActivateSubscription accepts or denies a subscription request.
func (c *Client) ActivateSubscription(ctx context.Context, subscriptionID int, status SubscriptionStatus) error {
	body := map[string]interface{}{
		"subscription_id": subscriptionID,
		"status":          status,
	}
	return c.do(ctx, http.MethodPost, "/admin/subscription/activate", nil, body, nil)
}
