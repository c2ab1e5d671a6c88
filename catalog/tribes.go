package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/poiesic/utamaduni/core"
	"github.com/poiesic/utamaduni/search"
)

// ListTribes returns every tribe in collection order.
func (c *Catalog) ListTribes(ctx context.Context) ([]core.Tribe, error) {
	return c.tribes.LoadTribes(ctx)
}

// SearchTribes fuzzy-matches query against tribe names, alternative names and
// descriptions. An empty query returns every tribe.
func (c *Catalog) SearchTribes(ctx context.Context, query string) ([]core.Tribe, error) {
	tribes, err := c.tribes.LoadTribes(ctx)
	if err != nil {
		return nil, err
	}
	return c.tribeEngine.Run(tribes, search.Query{
		Search:       query,
		SearchFields: tribeSearchFields,
	}), nil
}

// SuggestTribes returns up to limit tribe names for typeahead.
func (c *Catalog) SuggestTribes(ctx context.Context, query string, limit int) ([]string, error) {
	tribes, err := c.tribes.LoadTribes(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tribes))
	for _, t := range tribes {
		names = append(names, t.Name)
	}
	return search.Suggest(query, names, limit), nil
}

// GetTribe returns the tribe with the given ID.
func (c *Catalog) GetTribe(ctx context.Context, id string) (*core.Tribe, error) {
	tribes, err := c.tribes.LoadTribes(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(tribes, func(t core.Tribe) bool { return t.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTribeNotFound, id)
	}
	return &tribes[i], nil
}

// TribeOverview returns a tribe with its asset count and first assets in collection order.
func (c *Catalog) TribeOverview(ctx context.Context, id string) (*TribeOverview, error) {
	tribe, err := c.GetTribe(ctx, id)
	if err != nil {
		return nil, err
	}
	assets, err := c.assets.LoadAssets(ctx)
	if err != nil {
		return nil, err
	}

	owned := c.assetEngine.Run(assets, search.Query{
		Filters: map[string]string{core.FieldTribeID: tribe.ID},
	})

	return &TribeOverview{
		Tribe:      *tribe,
		AssetCount: len(owned),
		Recent:     owned[:min(len(owned), recentAssetLimit)],
	}, nil
}

// SubmitTribe registers a community from the public form.
// Name, region and description are required and the name must be new.
func (c *Catalog) SubmitTribe(ctx context.Context, sub TribeSubmission) (*core.Tribe, error) {
	tribe := core.Tribe{
		Name:             strings.TrimSpace(sub.Name),
		AlternativeNames: strings.TrimSpace(sub.AlternativeNames),
		Region:           strings.TrimSpace(sub.Region),
		Description:      strings.TrimSpace(sub.Description),
		ContactCommunity: strings.TrimSpace(sub.ContactCommunity),
	}
	if err := core.ValidateTribeSubmission(&tribe); err != nil {
		return nil, err
	}
	return c.insertTribe(ctx, tribe)
}

// AddTribe is the moderator quick add: only a name is required.
func (c *Catalog) AddTribe(ctx context.Context, name, region string) (*core.Tribe, error) {
	tribe := core.Tribe{
		Name:   strings.TrimSpace(name),
		Region: strings.TrimSpace(region),
	}
	if err := core.ValidateTribe(&tribe); err != nil {
		return nil, err
	}
	return c.insertTribe(ctx, tribe)
}

func (c *Catalog) insertTribe(ctx context.Context, tribe core.Tribe) (*core.Tribe, error) {
	tribe.ID = core.TribeIDFromName(tribe.Name)

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	tribes, err := c.tribes.LoadTribes(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range tribes {
		if strings.EqualFold(existing.Name, tribe.Name) || existing.ID == tribe.ID {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTribe, existing.Name)
		}
	}

	if err := c.tribes.SaveTribes(ctx, append(tribes, tribe)); err != nil {
		return nil, err
	}
	c.logger.Info("tribe added", "id", tribe.ID, "name", tribe.Name)
	return &tribe, nil
}

// DeleteTribe removes a tribe. Its assets stay in the archive.
func (c *Catalog) DeleteTribe(ctx context.Context, id string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	tribes, err := c.tribes.LoadTribes(ctx)
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(slices.Clone(tribes), func(t core.Tribe) bool { return t.ID == id })
	if len(kept) == len(tribes) {
		return fmt.Errorf("%w: %s", ErrTribeNotFound, id)
	}

	if err := c.tribes.SaveTribes(ctx, kept); err != nil {
		return err
	}
	c.logger.Info("tribe deleted", "id", id)
	return nil
}
