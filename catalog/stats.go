package catalog

import "context"

// Stats counts tribes, assets and stored files for the admin dashboard.
func (c *Catalog) Stats(ctx context.Context) (*Stats, error) {
	tribes, err := c.tribes.LoadTribes(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := c.assets.LoadAssets(ctx)
	if err != nil {
		return nil, err
	}
	uploads, err := c.attachments.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Tribes:  len(tribes),
		Assets:  len(assets),
		Uploads: uploads,
	}, nil
}
