package cms

import (
	"context"
	"net/http"
	"strconv"
)

// MaterialTypes lists material types, optionally scoped to one subject when
// subjectID is positive.
func (c *Client) MaterialTypes(ctx context.Context, langCode string, subjectID, page, limit int) (*Page[MaterialType], error) {
	q := pageQuery(page, limit)
	q.Set("lang_code", langCode)
	if subjectID > 0 {
		q.Set("subject_id", strconv.Itoa(subjectID))
	}

	var out Page[MaterialType]
	if err := c.do(ctx, http.MethodGet, "/material-type", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type MaterialQuery struct {
	LangCode       string
	CourseID       int
	SemesterID     int
	SubjectID      int
	MaterialTypeID int
	Page           int
	Limit          int
}

func (c *Client) Materials(ctx context.Context, params MaterialQuery) (*Page[Material], error) {
	q := pageQuery(params.Page, params.Limit)
	q.Set("lang_code", params.LangCode)
	q.Set("course_id", strconv.Itoa(params.CourseID))
	q.Set("semester_id", strconv.Itoa(params.SemesterID))
	q.Set("subject_id", strconv.Itoa(params.SubjectID))
	q.Set("material_type_id", strconv.Itoa(params.MaterialTypeID))

	var out Page[Material]
	if err := c.do(ctx, http.MethodGet, "/material", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
