package client

import (
	"context"

	"tourdesk/hydrate"
	"tourdesk/models"
)

// Reference-data fetches. These run concurrently with the main tour fetch on
// the edit screen; the hydration pipeline tolerates any arrival order.

func (c *Client) Categories(ctx context.Context, userID string) ([]models.Category, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var out []models.Category
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/category/user/" + userID)
	if err := apiErr(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Facts(ctx context.Context, userID string) ([]models.FactDefinition, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var out []models.FactDefinition
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/facts/user/" + userID)
	if err := apiErr(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FAQs(ctx context.Context, userID string) ([]models.FAQDefinition, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var out []models.FAQDefinition
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/faqs/user/" + userID)
	if err := apiErr(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Destinations(ctx context.Context) ([]models.Destination, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var out []models.Destination
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/global/destinations/user-destinations")
	if err := apiErr(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadCatalogs fetches all reference data the edit form links against. A
// failed catalog is non-fatal: linking simply skips it, the same way the
// dashboard renders before its dropdown data arrives.
func (c *Client) LoadCatalogs(ctx context.Context, userID string) hydrate.Catalogs {
	cat := hydrate.Catalogs{}
	if v, err := c.Facts(ctx, userID); err == nil {
		cat.Facts = v
	}
	if v, err := c.FAQs(ctx, userID); err == nil {
		cat.FAQs = v
	}
	if v, err := c.Categories(ctx, userID); err == nil {
		cat.Categories = v
	}
	if v, err := c.Destinations(ctx); err == nil {
		cat.Destinations = v
	}
	return cat
}
