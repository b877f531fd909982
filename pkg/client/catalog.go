package client

import (
	"context"
	"fmt"

	"github.com/shiblymohammed/electionServices/pkg/catalog"
)

// Packages lists the active packages on sale.
func (c *Client) Packages(ctx context.Context) ([]catalog.Package, error) {
	var res results[catalog.Package]
	if err := c.getJSON(ctx, "/packages/", &res); err != nil {
		return nil, err
	}
	return res.items, nil
}

// PackageByID fetches one package with its included items.
func (c *Client) PackageByID(ctx context.Context, id int64) (*catalog.Package, error) {
	var pkg catalog.Package
	if err := c.getJSON(ctx, fmt.Sprintf("/packages/%d/", id), &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Campaigns lists the active per-unit campaign services.
func (c *Client) Campaigns(ctx context.Context) ([]catalog.Campaign, error) {
	var res results[catalog.Campaign]
	if err := c.getJSON(ctx, "/campaigns/", &res); err != nil {
		return nil, err
	}
	return res.items, nil
}

// CampaignByID fetches one campaign service.
func (c *Client) CampaignByID(ctx context.Context, id int64) (*catalog.Campaign, error) {
	var camp catalog.Campaign
	if err := c.getJSON(ctx, fmt.Sprintf("/campaigns/%d/", id), &camp); err != nil {
		return nil, err
	}
	return &camp, nil
}
