package usecase

import (
	"context"
	"sort"

	"github.com/bnema/dumbtip/internal/application/port"
	"github.com/bnema/dumbtip/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
type GetConfigSchemaInput struct {
	// Section limits the result to one section; empty means all.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKeyInfo
	Sections []string
}

// Execute returns the configuration keys with their metadata, in
// provider order, and the distinct sections sorted by name.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	keys := make([]entity.ConfigKeyInfo, 0, len(all))
	seen := make(map[string]bool)
	var sections []string
	for _, k := range all {
		if input.Section != "" && k.Section != input.Section {
			continue
		}
		keys = append(keys, k)
		if !seen[k.Section] {
			seen[k.Section] = true
			sections = append(sections, k.Section)
		}
	}
	sort.Strings(sections)

	return &GetConfigSchemaOutput{
		Keys:     keys,
		Sections: sections,
	}, nil
}
