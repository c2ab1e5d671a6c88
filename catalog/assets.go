package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/poiesic/utamaduni/core"
	"github.com/poiesic/utamaduni/search"
	"github.com/poiesic/utamaduni/storage"
)

// BrowseAssets runs the exploration query: tribe and type filters, fuzzy search
// over title, description and narrative, then date order (newest first by default).
func (c *Catalog) BrowseAssets(ctx context.Context, q BrowseQuery) ([]core.Asset, error) {
	assets, err := c.assets.LoadAssets(ctx)
	if err != nil {
		return nil, err
	}
	return c.assetEngine.Run(assets, search.Query{
		Filters: map[string]string{
			core.FieldTribeName: q.Tribe,
			core.FieldAssetType: q.Type,
		},
		Search:       q.Search,
		SearchFields: assetSearchFields,
		SortKey:      core.FieldDateAdded,
		Descending:   q.Sort != SortOldest,
	}), nil
}

// FilterOptions returns the sorted distinct tribe names and asset types present
// in the archive, each list led by its sentinel.
func (c *Catalog) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	assets, err := c.assets.LoadAssets(ctx)
	if err != nil {
		return nil, err
	}

	tribes := make([]string, 0, len(assets))
	types := make([]string, 0, len(assets))
	for _, a := range assets {
		name := a.TribeName
		if name == "" {
			name = unknownTribe
		}
		tribes = append(tribes, name)
		types = append(types, string(a.AssetType))
	}
	slices.Sort(tribes)
	slices.Sort(types)

	return &FilterOptions{
		Tribes: append([]string{search.AllCommunities}, slices.Compact(tribes)...),
		Types:  append([]string{search.AllTypes}, slices.Compact(types)...),
	}, nil
}

// GetAsset returns the asset with the given ID.
func (c *Catalog) GetAsset(ctx context.Context, id string) (*core.Asset, error) {
	assets, err := c.assets.LoadAssets(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(assets, func(a core.Asset) bool { return a.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}
	return &assets[i], nil
}

// SubmitAsset validates a contribution, stores its attachment and appends it to the archive.
func (c *Catalog) SubmitAsset(ctx context.Context, sub AssetSubmission) (*core.Asset, error) {
	asset, err := c.PrepareAsset(ctx, sub)
	if err != nil {
		return nil, err
	}

	if sub.Attachment != nil {
		if err := c.AttachFile(ctx, &asset, *sub.Attachment); err != nil {
			return nil, err
		}
	}

	if err := c.AppendAssets(ctx, asset); err != nil {
		c.DiscardAttachment(ctx, &asset)
		return nil, err
	}
	return &asset, nil
}

// PrepareAsset returns the record SubmitAsset would append for sub without
// storing anything: fields are validated, the tribe's name and region are
// copied, and an ID and DateAdded are assigned.
func (c *Catalog) PrepareAsset(ctx context.Context, sub AssetSubmission) (core.Asset, error) {
	asset := core.Asset{
		TribeID:          strings.TrimSpace(sub.TribeID),
		Title:            strings.TrimSpace(sub.Title),
		AssetType:        sub.AssetType,
		Description:      strings.TrimSpace(sub.Description),
		NarrativeContext: strings.TrimSpace(sub.NarrativeContext),
		DateRecorded:     sub.DateRecorded,
		CustodianName:    strings.TrimSpace(sub.CustodianName),
		CustodianContact: strings.TrimSpace(sub.CustodianContact),
		LicenseType:      sub.LicenseType,
		CustomTerms:      strings.TrimSpace(sub.CustomTerms),
		ExternalURL:      strings.TrimSpace(sub.ExternalURL),
	}
	if sub.Attachment != nil {
		asset.OriginalFilename = sub.Attachment.Name
	}
	if err := core.ValidateAsset(&asset); err != nil {
		return core.Asset{}, err
	}

	tribe, err := c.GetTribe(ctx, asset.TribeID)
	if err != nil {
		return core.Asset{}, err
	}
	asset.TribeName = tribe.Name
	asset.Region = tribe.Region
	asset.ID = c.newID()
	asset.DateAdded = c.now().UTC()
	return asset, nil
}

// AttachFile stores f for a prepared asset as "<assetID>_<tribeID><ext>" and
// records the reference, original name and content digest on the asset.
// Safe for concurrent use on different assets.
func (c *Catalog) AttachFile(ctx context.Context, asset *core.Asset, f File) error {
	if !core.IsAllowedAttachment(f.Name) {
		return fmt.Errorf("%w: %w: %q", core.ErrInvalidAsset, core.ErrUnsupportedAttachment, f.Name)
	}

	name := asset.ID + "_" + asset.TribeID + core.AttachmentExt(f.Name)
	ref, err := c.attachments.Store(ctx, f.Data, name)
	if err != nil {
		return fmt.Errorf("store attachment for asset %s: %w", asset.ID, err)
	}

	asset.AttachedFile = ref
	asset.OriginalFilename = f.Name
	asset.AttachmentDigest = core.DigestContent(f.Data)
	return nil
}

// AppendAssets adds prepared assets to the end of the collection, in order, with one save.
func (c *Catalog) AppendAssets(ctx context.Context, assets ...core.Asset) error {
	if len(assets) == 0 {
		return nil
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	existing, err := c.assets.LoadAssets(ctx)
	if err != nil {
		return err
	}
	if err := c.assets.SaveAssets(ctx, append(existing, assets...)); err != nil {
		return err
	}

	for _, a := range assets {
		c.logger.Info("asset added", "id", a.ID, "tribe", a.TribeID, "title", a.Title, "attachment", a.AttachedFile)
	}
	return nil
}

// DeleteAsset removes an asset and its stored attachment.
func (c *Catalog) DeleteAsset(ctx context.Context, id string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	assets, err := c.assets.LoadAssets(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(assets, func(a core.Asset) bool { return a.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}
	removed := assets[i]

	if err := c.assets.SaveAssets(ctx, slices.Delete(assets, i, i+1)); err != nil {
		return err
	}
	c.logger.Info("asset deleted", "id", id, "title", removed.Title)

	c.DiscardAttachment(ctx, &removed)
	return nil
}

// OpenAttachment returns an asset's file after checking it against the recorded digest.
func (c *Catalog) OpenAttachment(ctx context.Context, id string) (*Attachment, error) {
	asset, err := c.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if !asset.HasAttachment() {
		return nil, fmt.Errorf("%w: %s", ErrNoAttachment, id)
	}

	data, err := c.attachments.Retrieve(ctx, asset.AttachedFile)
	if err != nil {
		return nil, err
	}
	if asset.AttachmentDigest != "" && core.DigestContent(data) != asset.AttachmentDigest {
		c.logger.Error("attachment digest mismatch", "id", id, "ref", asset.AttachedFile)
		return nil, fmt.Errorf("%w: %s", ErrAttachmentCorrupt, asset.AttachedFile)
	}

	filename := asset.OriginalFilename
	if filename == "" {
		filename = asset.AttachedFile
	}
	return &Attachment{
		Filename: filename,
		Kind:     core.AttachmentKind(asset.AttachedFile),
		Data:     data,
	}, nil
}

// DiscardAttachment removes an asset's stored file. Failures are logged, not returned.
func (c *Catalog) DiscardAttachment(ctx context.Context, asset *core.Asset) {
	if !asset.HasAttachment() {
		return
	}
	err := c.attachments.Delete(ctx, asset.AttachedFile)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.logger.Warn("failed to remove attachment", "id", asset.ID, "ref", asset.AttachedFile, "err", err)
	}
}
