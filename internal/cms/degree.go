package cms

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) Degrees(ctx context.Context, page, limit int) (*Page[Degree], error) {
	var out Page[Degree]
	if err := c.do(ctx, http.MethodGet, "/degree", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllDegrees walks the paginated endpoint until total_count entries are
// collected or the server stops returning data.
func (c *Client) AllDegrees(ctx context.Context, limit int) ([]Degree, error) {
	var collected []Degree

	for page := 1; page <= fetchAllPageCap; page++ {
		res, err := c.Degrees(ctx, page, limit)
		if err != nil {
			return nil, err
		}
		collected = append(collected, res.Data...)

		if len(res.Data) == 0 || len(collected) >= res.TotalCount {
			break
		}
	}

	return collected, nil
}

func (c *Client) CreateDegree(ctx context.Context, req *CreateDegreeRequest) (*Degree, error) {
	var out Degree
	if err := c.do(ctx, http.MethodPost, "/degree", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDegreeTranslation(ctx context.Context, degreeID int, langCode string, req *UpdateDegreeTranslationRequest) error {
	q := url.Values{}
	q.Set("lang_code", langCode)
	return c.do(ctx, http.MethodPut, "/degree/translation/"+strconv.Itoa(degreeID), q, req, nil)
}
