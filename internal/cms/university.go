package cms

import (
	"context"
	"net/http"
	"strconv"
)

// Universities lists university translations for one language.
func (c *Client) Universities(ctx context.Context, langCode string, page, limit int) (*Page[UniversityTranslation], error) {
	q := pageQuery(page, limit)
	q.Set("lang_code", langCode)

	var out Page[UniversityTranslation]
	if err := c.do(ctx, http.MethodGet, "/university", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUniversity(ctx context.Context, req *CreateUniversityRequest) (*University, error) {
	var out University
	if err := c.do(ctx, http.MethodPost, "/university", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Faculties lists faculties for one university and language.
func (c *Client) Faculties(ctx context.Context, universityID int, langCode string, page, limit int) (*Page[Faculty], error) {
	q := pageQuery(page, limit)
	q.Set("university_id", strconv.Itoa(universityID))
	q.Set("lang_code", langCode)

	var out Page[Faculty]
	if err := c.do(ctx, http.MethodGet, "/faculty", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
