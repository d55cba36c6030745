package watchlist

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed listitems.schema.json
var listSchemaJSON string

var (
	listSchemaOnce sync.Once
	listSchema     *gojsonschema.Schema
	listSchemaErr  error
)

func compiledListSchema() (*gojsonschema.Schema, error) {
	listSchemaOnce.Do(func() {
		listSchema, listSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(listSchemaJSON))
	})
	return listSchema, listSchemaErr
}

// Export returns the stored list as indented JSON.
func (r *Repository) Export() ([]byte, error) {
	data, err := json.MarshalIndent(r.List(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode list: %w", err)
	}
	return data, nil
}

// Import loads a list previously produced by Export. The payload must
// satisfy the list schema and every entry's content must carry the same
// id as the entry itself. With replace the stored list is discarded;
// otherwise entries for content already on the list are skipped. Entries
// whose id is missing or already taken get a fresh one. It returns the
// number of entries added.
func (r *Repository) Import(data []byte, replace bool) (int, error) {
	if err := ValidateExport(data); err != nil {
		return 0, err
	}

	var incoming []domain.ListItem
	if err := json.Unmarshal(data, &incoming); err != nil {
		return 0, domain.Invalid("import", err.Error())
	}
	for i, item := range incoming {
		if item.Content.ID != item.ContentID {
			return 0, domain.Invalid(fmt.Sprintf("import[%d].content.id", i),
				fmt.Sprintf("%d does not match contentId %d", item.Content.ID, item.ContentID))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.List()
	if replace {
		items = []domain.ListItem{}
	}
	taken := make(map[string]bool, len(items)+len(incoming))
	for _, item := range items {
		taken[item.ID] = true
	}

	added := 0
	for _, item := range incoming {
		if indexOf(items, item.ContentID, item.ContentType) >= 0 {
			continue
		}
		if item.ID == "" || taken[item.ID] {
			item.ID = r.newID()
		}
		taken[item.ID] = true
		items = append(items, r.normalizeImported(item))
		added++
	}

	if added == 0 && !replace {
		return 0, nil
	}
	if err := r.save(items); err != nil {
		return added, err
	}
	r.logger.Info("imported list", "added", added, "replace", replace)
	return added, nil
}

// ValidateExport checks data against the list schema.
func ValidateExport(data []byte) error {
	schema, err := compiledListSchema()
	if err != nil {
		return fmt.Errorf("compile list schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return domain.Invalid("import", err.Error())
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return domain.Invalid("import", strings.Join(msgs, "; "))
	}
	return nil
}

// normalizeImported fills the fields an export may omit
func (r *Repository) normalizeImported(item domain.ListItem) domain.ListItem {
	if item.Status == "" {
		item.Status = domain.StatusNotStarted
	}
	if item.Priority == "" {
		item.Priority = domain.PriorityMedium
	}
	if item.DateAdded.IsZero() {
		item.DateAdded = r.now()
	}
	if item.EstimatedRuntime == 0 {
		item.EstimatedRuntime = domain.EstimateRuntime(item.Content, item.ContentType)
	}
	item.CustomTags = normalizeTags(item.CustomTags)
	if !item.IsLiked {
		item.LikedAt = nil
	}
	return item
}
