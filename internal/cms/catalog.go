package cms

import (
	"context"
	"net/http"
	"strconv"
)

func (c *Client) Courses(ctx context.Context, langCode string, page, limit int) (*Page[Course], error) {
	q := pageQuery(page, limit)
	q.Set("lang_code", langCode)

	var out Page[Course]
	if err := c.do(ctx, http.MethodGet, "/course", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Semesters(ctx context.Context, page, limit int) (*Page[Semester], error) {
	var out Page[Semester]
	if err := c.do(ctx, http.MethodGet, "/semester", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type SubjectQuery struct {
	LangCode   string
	FacultyID  int
	SemesterID int
	CourseID   int
	Page       int
	Limit      int
}

func (c *Client) Subjects(ctx context.Context, params SubjectQuery) (*Page[Subject], error) {
	q := pageQuery(params.Page, params.Limit)
	q.Set("lang_code", params.LangCode)
	q.Set("faculty_id", strconv.Itoa(params.FacultyID))
	q.Set("semester_id", strconv.Itoa(params.SemesterID))
	q.Set("course_id", strconv.Itoa(params.CourseID))

	var out Page[Subject]
	if err := c.do(ctx, http.MethodGet, "/subject", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
