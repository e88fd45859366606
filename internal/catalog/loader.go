// Package catalog loads the static game data documents and indexes them for
// lookup by id, numeric id, name and category slug.
package catalog

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/atlas-api/internal/entities/gamedata"
	"github.com/KirkDiggler/atlas-api/internal/errors"
)

// Document names inside the catalog directory
const (
	DescriptorFile = "catalog.json"
	ItemsDir       = "items"
	DraftsFile     = "drafts.json"
	CodesFile      = "codes.json"
)

// Documents is the raw content of a catalog directory
type Documents struct {
	Descriptor gamedata.Descriptor
	// Items are grouped in descriptor category order
	Items  []gamedata.Item
	Drafts []gamedata.DraftRecipe
	Codes  []gamedata.RedemptionCode
}

// Load reads every catalog document from fsys. The descriptor is required;
// item files, drafts and codes are optional and load concurrently. Documents
// are assumed valid: a decode failure aborts the load.
func Load(ctx context.Context, fsys fs.FS) (*Documents, error) {
	if fsys == nil {
		return nil, errors.InvalidArgument("catalog filesystem is required")
	}

	docs := &Documents{}
	found, err := readJSON(fsys, DescriptorFile, &docs.Descriptor)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFoundf("catalog descriptor %s not found", DescriptorFile)
	}

	categories := docs.Descriptor.Categories
	itemsByCategory := make([][]gamedata.Item, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		i, category := i, category
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			name := path.Join(ItemsDir, category.ID+".json")
			var items []gamedata.Item
			found, err := readJSON(fsys, name, &items)
			if err != nil {
				return err
			}
			if !found {
				slog.DebugContext(gctx, "category has no item document", "category", category.ID)
				return nil
			}
			for j := range items {
				if items[j].CategoryID == "" {
					items[j].CategoryID = category.ID
				}
			}
			itemsByCategory[i] = items
			return nil
		})
	}
	g.Go(func() error {
		_, err := readJSON(fsys, DraftsFile, &docs.Drafts)
		return err
	})
	g.Go(func() error {
		_, err := readJSON(fsys, CodesFile, &docs.Codes)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, items := range itemsByCategory {
		docs.Items = append(docs.Items, items...)
	}

	slog.InfoContext(ctx, "catalog documents loaded",
		"categories", len(categories),
		"characters", len(docs.Descriptor.Characters),
		"items", len(docs.Items),
		"drafts", len(docs.Drafts),
		"codes", len(docs.Codes))

	return docs, nil
}

// readJSON decodes name into v. A missing file returns found=false.
func readJSON(fsys fs.FS, name string, v any) (found bool, err error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to read %s", name)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.DataLossf("failed to decode %s: %v", name, err)
	}
	return true, nil
}
